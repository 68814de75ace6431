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

// ── lecturer module business errors ──

var ErrLecturerNotFound = errors.New("lecturer not found")

// LecturerService is the lecturer business interface.
type LecturerService interface {
	Create(ctx context.Context, req *dto.LecturerRequest) (*model.Lecturer, error)
	GetByID(ctx context.Context, id int) (*model.Lecturer, error)
	List(ctx context.Context) ([]model.Lecturer, error)
	Update(ctx context.Context, id int, req *dto.LecturerRequest) (*model.Lecturer, error)
	Delete(ctx context.Context, id int) error
}

type lecturerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLecturerService creates a LecturerService instance.
func NewLecturerService(repo *repository.Repository, logger *zap.Logger) LecturerService {
	return &lecturerService{repo: repo, logger: logger}
}

func (s *lecturerService) Create(ctx context.Context, req *dto.LecturerRequest) (*model.Lecturer, error) {
	lecturer := &model.Lecturer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Title:          req.Title,
		EmploymentType: req.EmploymentType,
		PersonalEmail:  req.PersonalEmail,
		MDHEmail:       req.MDHEmail,
		Phone:          req.Phone,
		Location:       req.Location,
		TeachingLoad:   req.TeachingLoad,
	}
	if err := s.repo.Lecturer.Create(ctx, lecturer); err != nil {
		s.logger.Error("create lecturer failed", zap.Error(err))
		return nil, err
	}
	return lecturer, nil
}

func (s *lecturerService) GetByID(ctx context.Context, id int) (*model.Lecturer, error) {
	lecturer, err := s.repo.Lecturer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLecturerNotFound
		}
		s.logger.Error("load lecturer failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return lecturer, nil
}

func (s *lecturerService) List(ctx context.Context) ([]model.Lecturer, error) {
	lecturers, err := s.repo.Lecturer.List(ctx)
	if err != nil {
		s.logger.Error("list lecturers failed", zap.Error(err))
		return nil, err
	}
	return lecturers, nil
}

func (s *lecturerService) Update(ctx context.Context, id int, req *dto.LecturerRequest) (*model.Lecturer, error) {
	lecturer, err := s.repo.Lecturer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLecturerNotFound
		}
		s.logger.Error("load lecturer failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	lecturer.FirstName = req.FirstName
	lecturer.LastName = req.LastName
	lecturer.Title = req.Title
	lecturer.EmploymentType = req.EmploymentType
	lecturer.PersonalEmail = req.PersonalEmail
	lecturer.MDHEmail = req.MDHEmail
	lecturer.Phone = req.Phone
	lecturer.Location = req.Location
	lecturer.TeachingLoad = req.TeachingLoad

	if err := s.repo.Lecturer.Update(ctx, lecturer); err != nil {
		s.logger.Error("update lecturer failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return lecturer, nil
}

func (s *lecturerService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Lecturer.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLecturerNotFound
		}
		s.logger.Error("load lecturer failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Lecturer.Delete(ctx, id); err != nil {
		s.logger.Error("delete lecturer failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
