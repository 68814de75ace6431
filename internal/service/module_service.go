package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/model"
	"campusplan/backend/internal/repository"
)

// ── module business errors ──

var (
	ErrModuleNotFound = errors.New("module not found")
	ErrModuleExists   = errors.New("a module with this code already exists")
)

// ModuleService is the teaching-module business interface. Modules are
// addressed by module code rather than numeric id.
type ModuleService interface {
	Create(ctx context.Context, req *dto.ModuleRequest) (*model.Module, error)
	GetByCode(ctx context.Context, code string) (*model.Module, error)
	List(ctx context.Context) ([]model.Module, error)
	Update(ctx context.Context, code string, req *dto.ModuleRequest) (*model.Module, error)
	Delete(ctx context.Context, code string) error
}

type moduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewModuleService creates a ModuleService instance.
func NewModuleService(repo *repository.Repository, logger *zap.Logger) ModuleService {
	return &moduleService{repo: repo, logger: logger}
}

func (s *moduleService) Create(ctx context.Context, req *dto.ModuleRequest) (*model.Module, error) {
	if _, err := s.repo.Module.GetByCode(ctx, req.ModuleCode); err == nil {
		return nil, ErrModuleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load module failed", zap.String("code", req.ModuleCode), zap.Error(err))
		return nil, err
	}

	semester := req.Semester
	if semester == 0 {
		semester = 1
	}
	module := &model.Module{
		ModuleCode:     req.ModuleCode,
		Name:           req.Name,
		ECTS:           req.ECTS,
		RoomType:       req.RoomType,
		AssessmentType: req.AssessmentType,
		Semester:       semester,
		Category:       req.Category,
		ProgramID:      req.ProgramID,
	}
	if err := s.repo.Module.Create(ctx, module); err != nil {
		s.logger.Error("create module failed", zap.Error(err))
		return nil, err
	}
	return module, nil
}

func (s *moduleService) GetByCode(ctx context.Context, code string) (*model.Module, error) {
	module, err := s.repo.Module.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		s.logger.Error("load module failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return module, nil
}

func (s *moduleService) List(ctx context.Context) ([]model.Module, error) {
	modules, err := s.repo.Module.List(ctx)
	if err != nil {
		s.logger.Error("list modules failed", zap.Error(err))
		return nil, err
	}
	return modules, nil
}

func (s *moduleService) Update(ctx context.Context, code string, req *dto.ModuleRequest) (*model.Module, error) {
	module, err := s.repo.Module.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		s.logger.Error("load module failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	module.Name = req.Name
	module.ECTS = req.ECTS
	module.RoomType = req.RoomType
	module.AssessmentType = req.AssessmentType
	if req.Semester != 0 {
		module.Semester = req.Semester
	}
	module.Category = req.Category
	module.ProgramID = req.ProgramID

	if err := s.repo.Module.Update(ctx, module); err != nil {
		s.logger.Error("update module failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return module, nil
}

func (s *moduleService) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.Module.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModuleNotFound
		}
		s.logger.Error("load module failed", zap.String("code", code), zap.Error(err))
		return err
	}
	if err := s.repo.Module.Delete(ctx, code); err != nil {
		s.logger.Error("delete module failed", zap.String("code", code), zap.Error(err))
		return err
	}
	return nil
}
