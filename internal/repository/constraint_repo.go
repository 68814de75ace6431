package repository

import (
	"context"

	"gorm.io/gorm"

	"campusplan/backend/internal/model"
)

// ConstraintRepository is the scheduler-constraint data-access interface.
type ConstraintRepository interface {
	Create(ctx context.Context, constraint *model.SchedulerConstraint) error
	GetByID(ctx context.Context, id int) (*model.SchedulerConstraint, error)
	List(ctx context.Context) ([]model.SchedulerConstraint, error)
	Update(ctx context.Context, constraint *model.SchedulerConstraint) error
	Delete(ctx context.Context, id int) error
}

type constraintRepo struct {
	db *gorm.DB
}

// NewConstraintRepo creates a ConstraintRepository.
func NewConstraintRepo(db *gorm.DB) ConstraintRepository {
	return &constraintRepo{db: db}
}

func (r *constraintRepo) Create(ctx context.Context, constraint *model.SchedulerConstraint) error {
	return r.db.WithContext(ctx).Create(constraint).Error
}

func (r *constraintRepo) GetByID(ctx context.Context, id int) (*model.SchedulerConstraint, error) {
	var constraint model.SchedulerConstraint
	if err := r.db.WithContext(ctx).First(&constraint, id).Error; err != nil {
		return nil, err
	}
	return &constraint, nil
}

func (r *constraintRepo) List(ctx context.Context) ([]model.SchedulerConstraint, error) {
	var constraints []model.SchedulerConstraint
	err := r.db.WithContext(ctx).Order("id ASC").Find(&constraints).Error
	return constraints, err
}

func (r *constraintRepo) Update(ctx context.Context, constraint *model.SchedulerConstraint) error {
	return r.db.WithContext(ctx).Save(constraint).Error
}

func (r *constraintRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.SchedulerConstraint{}, id).Error
}
