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

// ── study-program module business errors ──

var (
	ErrProgramNotFound        = errors.New("study program not found")
	ErrSpecializationNotFound = errors.New("specialization not found")
)

// ProgramService covers study programs and their specializations.
type ProgramService interface {
	Create(ctx context.Context, req *dto.ProgramRequest) (*model.StudyProgram, error)
	GetByID(ctx context.Context, id int) (*model.StudyProgram, error)
	List(ctx context.Context) ([]model.StudyProgram, error)
	Update(ctx context.Context, id int, req *dto.ProgramRequest) (*model.StudyProgram, error)
	Delete(ctx context.Context, id int) error

	CreateSpecialization(ctx context.Context, req *dto.SpecializationRequest) (*model.Specialization, error)
	GetSpecialization(ctx context.Context, id int) (*model.Specialization, error)
	ListSpecializations(ctx context.Context) ([]model.Specialization, error)
	UpdateSpecialization(ctx context.Context, id int, req *dto.SpecializationRequest) (*model.Specialization, error)
	DeleteSpecialization(ctx context.Context, id int) error
}

type programService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProgramService creates a ProgramService instance.
func NewProgramService(repo *repository.Repository, logger *zap.Logger) ProgramService {
	return &programService{repo: repo, logger: logger}
}

// ────────────────────── study programs ──────────────────────

func (s *programService) Create(ctx context.Context, req *dto.ProgramRequest) (*model.StudyProgram, error) {
	status := true
	if req.Status != nil {
		status = *req.Status
	}
	level := req.Level
	if level == "" {
		level = "Bachelor"
	}
	program := &model.StudyProgram{
		Name:       req.Name,
		Acronym:    req.Acronym,
		Status:     status,
		StartDate:  req.StartDate,
		TotalECTS:  req.TotalECTS,
		Location:   req.Location,
		Level:      level,
		DegreeType: req.DegreeType,
	}
	if err := s.repo.Program.Create(ctx, program); err != nil {
		s.logger.Error("create study program failed", zap.Error(err))
		return nil, err
	}
	return program, nil
}

func (s *programService) GetByID(ctx context.Context, id int) (*model.StudyProgram, error) {
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		s.logger.Error("load study program failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return program, nil
}

func (s *programService) List(ctx context.Context) ([]model.StudyProgram, error) {
	programs, err := s.repo.Program.List(ctx)
	if err != nil {
		s.logger.Error("list study programs failed", zap.Error(err))
		return nil, err
	}
	return programs, nil
}

func (s *programService) Update(ctx context.Context, id int, req *dto.ProgramRequest) (*model.StudyProgram, error) {
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		s.logger.Error("load study program failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	program.Name = req.Name
	program.Acronym = req.Acronym
	if req.Status != nil {
		program.Status = *req.Status
	}
	program.StartDate = req.StartDate
	program.TotalECTS = req.TotalECTS
	program.Location = req.Location
	if req.Level != "" {
		program.Level = req.Level
	}
	program.DegreeType = req.DegreeType

	if err := s.repo.Program.Update(ctx, program); err != nil {
		s.logger.Error("update study program failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return program, nil
}

func (s *programService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Program.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProgramNotFound
		}
		s.logger.Error("load study program failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Program.Delete(ctx, id); err != nil {
		s.logger.Error("delete study program failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── specializations ──────────────────────

func (s *programService) CreateSpecialization(ctx context.Context, req *dto.SpecializationRequest) (*model.Specialization, error) {
	status := true
	if req.Status != nil {
		status = *req.Status
	}
	spec := &model.Specialization{
		ProgramID: req.ProgramID,
		Name:      req.Name,
		Acronym:   req.Acronym,
		StartDate: req.StartDate,
		Status:    status,
	}
	if err := s.repo.Specialization.Create(ctx, spec); err != nil {
		s.logger.Error("create specialization failed", zap.Error(err))
		return nil, err
	}
	return spec, nil
}

func (s *programService) GetSpecialization(ctx context.Context, id int) (*model.Specialization, error) {
	spec, err := s.repo.Specialization.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecializationNotFound
		}
		s.logger.Error("load specialization failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return spec, nil
}

func (s *programService) ListSpecializations(ctx context.Context) ([]model.Specialization, error) {
	specs, err := s.repo.Specialization.List(ctx)
	if err != nil {
		s.logger.Error("list specializations failed", zap.Error(err))
		return nil, err
	}
	return specs, nil
}

func (s *programService) UpdateSpecialization(ctx context.Context, id int, req *dto.SpecializationRequest) (*model.Specialization, error) {
	spec, err := s.repo.Specialization.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecializationNotFound
		}
		s.logger.Error("load specialization failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	spec.ProgramID = req.ProgramID
	spec.Name = req.Name
	spec.Acronym = req.Acronym
	spec.StartDate = req.StartDate
	if req.Status != nil {
		spec.Status = *req.Status
	}

	if err := s.repo.Specialization.Update(ctx, spec); err != nil {
		s.logger.Error("update specialization failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return spec, nil
}

func (s *programService) DeleteSpecialization(ctx context.Context, id int) error {
	if _, err := s.repo.Specialization.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpecializationNotFound
		}
		s.logger.Error("load specialization failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Specialization.Delete(ctx, id); err != nil {
		s.logger.Error("delete specialization failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
