package repository

import (
	"context"

	"gorm.io/gorm"

	"campusplan/backend/internal/model"
)

// LecturerRepository is the lecturer data-access interface.
type LecturerRepository interface {
	Create(ctx context.Context, lecturer *model.Lecturer) error
	GetByID(ctx context.Context, id int) (*model.Lecturer, error)
	List(ctx context.Context) ([]model.Lecturer, error)
	Update(ctx context.Context, lecturer *model.Lecturer) error
	Delete(ctx context.Context, id int) error
}

type lecturerRepo struct {
	db *gorm.DB
}

// NewLecturerRepo creates a LecturerRepository.
func NewLecturerRepo(db *gorm.DB) LecturerRepository {
	return &lecturerRepo{db: db}
}

func (r *lecturerRepo) Create(ctx context.Context, lecturer *model.Lecturer) error {
	return r.db.WithContext(ctx).Create(lecturer).Error
}

func (r *lecturerRepo) GetByID(ctx context.Context, id int) (*model.Lecturer, error) {
	var lecturer model.Lecturer
	if err := r.db.WithContext(ctx).First(&lecturer, id).Error; err != nil {
		return nil, err
	}
	return &lecturer, nil
}

func (r *lecturerRepo) List(ctx context.Context) ([]model.Lecturer, error) {
	var lecturers []model.Lecturer
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&lecturers).Error
	return lecturers, err
}

func (r *lecturerRepo) Update(ctx context.Context, lecturer *model.Lecturer) error {
	return r.db.WithContext(ctx).Save(lecturer).Error
}

func (r *lecturerRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Lecturer{}, id).Error
}
