package repository

import (
	"context"

	"gorm.io/gorm"

	"campusplan/backend/internal/model"
)

// ProgramRepository is the study-program data-access interface.
type ProgramRepository interface {
	Create(ctx context.Context, program *model.StudyProgram) error
	GetByID(ctx context.Context, id int) (*model.StudyProgram, error)
	List(ctx context.Context) ([]model.StudyProgram, error)
	Update(ctx context.Context, program *model.StudyProgram) error
	Delete(ctx context.Context, id int) error
}

type programRepo struct {
	db *gorm.DB
}

// NewProgramRepo creates a ProgramRepository.
func NewProgramRepo(db *gorm.DB) ProgramRepository {
	return &programRepo{db: db}
}

func (r *programRepo) Create(ctx context.Context, program *model.StudyProgram) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepo) GetByID(ctx context.Context, id int) (*model.StudyProgram, error) {
	var program model.StudyProgram
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepo) List(ctx context.Context) ([]model.StudyProgram, error) {
	var programs []model.StudyProgram
	err := r.db.WithContext(ctx).Order("name ASC").Find(&programs).Error
	return programs, err
}

func (r *programRepo) Update(ctx context.Context, program *model.StudyProgram) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.StudyProgram{}, id).Error
}
