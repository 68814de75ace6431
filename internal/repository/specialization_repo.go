package repository

import (
	"context"

	"gorm.io/gorm"

	"campusplan/backend/internal/model"
)

// SpecializationRepository is the specialization data-access interface.
type SpecializationRepository interface {
	Create(ctx context.Context, spec *model.Specialization) error
	GetByID(ctx context.Context, id int) (*model.Specialization, error)
	List(ctx context.Context) ([]model.Specialization, error)
	Update(ctx context.Context, spec *model.Specialization) error
	Delete(ctx context.Context, id int) error
}

type specializationRepo struct {
	db *gorm.DB
}

// NewSpecializationRepo creates a SpecializationRepository.
func NewSpecializationRepo(db *gorm.DB) SpecializationRepository {
	return &specializationRepo{db: db}
}

func (r *specializationRepo) Create(ctx context.Context, spec *model.Specialization) error {
	return r.db.WithContext(ctx).Create(spec).Error
}

func (r *specializationRepo) GetByID(ctx context.Context, id int) (*model.Specialization, error) {
	var spec model.Specialization
	if err := r.db.WithContext(ctx).First(&spec, id).Error; err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *specializationRepo) List(ctx context.Context) ([]model.Specialization, error) {
	var specs []model.Specialization
	err := r.db.WithContext(ctx).Order("name ASC").Find(&specs).Error
	return specs, err
}

func (r *specializationRepo) Update(ctx context.Context, spec *model.Specialization) error {
	return r.db.WithContext(ctx).Save(spec).Error
}

func (r *specializationRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Specialization{}, id).Error
}
