package service

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/model"
	"campusplan/backend/internal/repository"
	"campusplan/backend/internal/rulebuilder"
)

// ── availability module business errors ──

var (
	ErrAvailabilityNotFound = errors.New("no availability schedule for this lecturer")
	ErrScheduleInvalid      = errors.New("schedule keys must be weekday names")
	ErrICSInvalid           = errors.New("invalid ICS calendar")
	ErrICSEmpty             = errors.New("the calendar contains no usable events")
)

// AvailabilityService manages lecturer availability schedules, populated
// by importing iCalendar feeds of blocked time.
type AvailabilityService interface {
	GetByLecturer(ctx context.Context, lecturerID int) (*dto.AvailabilityResponse, error)
	Update(ctx context.Context, lecturerID int, schedule model.JSONMap) (*dto.AvailabilityResponse, error)
	ImportICS(ctx context.Context, lecturerID int, reader io.Reader) (*dto.AvailabilityImportResponse, error)
	Delete(ctx context.Context, lecturerID int) error
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService instance.
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func (s *availabilityService) GetByLecturer(ctx context.Context, lecturerID int) (*dto.AvailabilityResponse, error) {
	availability, err := s.repo.Availability.GetByLecturer(ctx, lecturerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("load availability failed", zap.Int("lecturer_id", lecturerID), zap.Error(err))
		return nil, err
	}
	resp := dto.ToAvailabilityResponse(availability)
	return &resp, nil
}

// Update replaces the lecturer's schedule with a grid edited directly in
// the admin UI. Every key must be a weekday name.
func (s *availabilityService) Update(ctx context.Context, lecturerID int, schedule model.JSONMap) (*dto.AvailabilityResponse, error) {
	if _, err := s.repo.Lecturer.GetByID(ctx, lecturerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLecturerNotFound
		}
		s.logger.Error("load lecturer failed", zap.Int("id", lecturerID), zap.Error(err))
		return nil, err
	}

	for day := range schedule {
		if !rulebuilder.ValidDay(day) {
			return nil, ErrScheduleInvalid
		}
	}

	availability := &model.LecturerAvailability{
		LecturerID:   lecturerID,
		ScheduleData: schedule,
	}
	if err := s.repo.Availability.Upsert(ctx, availability); err != nil {
		s.logger.Error("store availability failed", zap.Int("lecturer_id", lecturerID), zap.Error(err))
		return nil, err
	}

	resp := dto.ToAvailabilityResponse(availability)
	return &resp, nil
}

// ImportICS replaces the lecturer's schedule with the blocked-time grid
// parsed from the uploaded calendar.
func (s *availabilityService) ImportICS(ctx context.Context, lecturerID int, reader io.Reader) (*dto.AvailabilityImportResponse, error) {
	if _, err := s.repo.Lecturer.GetByID(ctx, lecturerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLecturerNotFound
		}
		s.logger.Error("load lecturer failed", zap.Int("id", lecturerID), zap.Error(err))
		return nil, err
	}

	schedule, parsed, err := ParseAvailabilityICS(reader)
	if err != nil {
		return nil, err
	}
	if parsed == 0 {
		return nil, ErrICSEmpty
	}

	availability := &model.LecturerAvailability{
		LecturerID:   lecturerID,
		ScheduleData: schedule,
	}
	if err := s.repo.Availability.Upsert(ctx, availability); err != nil {
		s.logger.Error("store availability failed", zap.Int("lecturer_id", lecturerID), zap.Error(err))
		return nil, err
	}

	return &dto.AvailabilityImportResponse{
		LecturerID:   lecturerID,
		EventsParsed: parsed,
		ScheduleData: schedule,
	}, nil
}

func (s *availabilityService) Delete(ctx context.Context, lecturerID int) error {
	if _, err := s.repo.Availability.GetByLecturer(ctx, lecturerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAvailabilityNotFound
		}
		s.logger.Error("load availability failed", zap.Int("lecturer_id", lecturerID), zap.Error(err))
		return err
	}
	if err := s.repo.Availability.Delete(ctx, lecturerID); err != nil {
		s.logger.Error("delete availability failed", zap.Int("lecturer_id", lecturerID), zap.Error(err))
		return err
	}
	return nil
}
