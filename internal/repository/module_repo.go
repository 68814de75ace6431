package repository

import (
	"context"

	"gorm.io/gorm"

	"campusplan/backend/internal/model"
)

// ModuleRepository is the module data-access interface. Modules are keyed
// by module code, not a numeric id.
type ModuleRepository interface {
	Create(ctx context.Context, module *model.Module) error
	GetByCode(ctx context.Context, code string) (*model.Module, error)
	List(ctx context.Context) ([]model.Module, error)
	Update(ctx context.Context, module *model.Module) error
	Delete(ctx context.Context, code string) error
}

type moduleRepo struct {
	db *gorm.DB
}

// NewModuleRepo creates a ModuleRepository.
func NewModuleRepo(db *gorm.DB) ModuleRepository {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) Create(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *moduleRepo) GetByCode(ctx context.Context, code string) (*model.Module, error) {
	var module model.Module
	err := r.db.WithContext(ctx).
		Where("module_code = ?", code).
		First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) List(ctx context.Context) ([]model.Module, error) {
	var modules []model.Module
	err := r.db.WithContext(ctx).Order("module_code ASC").Find(&modules).Error
	return modules, err
}

func (r *moduleRepo) Update(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Save(module).Error
}

func (r *moduleRepo) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Where("module_code = ?", code).
		Delete(&model.Module{}).Error
}
