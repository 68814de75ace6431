package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campusplan/backend/internal/model"
)

// AvailabilityRepository stores per-lecturer availability schedules.
type AvailabilityRepository interface {
	GetByLecturer(ctx context.Context, lecturerID int) (*model.LecturerAvailability, error)
	Upsert(ctx context.Context, availability *model.LecturerAvailability) error
	Delete(ctx context.Context, lecturerID int) error
}

type availabilityRepo struct {
	db *gorm.DB
}

// NewAvailabilityRepo creates an AvailabilityRepository.
func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) GetByLecturer(ctx context.Context, lecturerID int) (*model.LecturerAvailability, error) {
	var availability model.LecturerAvailability
	err := r.db.WithContext(ctx).Where("lecturer_id = ?", lecturerID).First(&availability).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// Upsert creates the availability row on first import and replaces the
// schedule on subsequent imports for the same lecturer.
func (r *availabilityRepo) Upsert(ctx context.Context, availability *model.LecturerAvailability) error {
	var existing model.LecturerAvailability
	err := r.db.WithContext(ctx).Where("lecturer_id = ?", availability.LecturerID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(availability).Error
	}
	if err != nil {
		return err
	}
	existing.ScheduleData = availability.ScheduleData
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*availability = existing
	return nil
}

func (r *availabilityRepo) Delete(ctx context.Context, lecturerID int) error {
	return r.db.WithContext(ctx).Where("lecturer_id = ?", lecturerID).Delete(&model.LecturerAvailability{}).Error
}
