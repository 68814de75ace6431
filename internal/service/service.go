package service

import (
	"go.uber.org/zap"

	"campusplan/backend/internal/repository"
)

// Service aggregates all business-layer entry points.
type Service struct {
	Lecturer     LecturerService
	Group        GroupService
	Module       ModuleService
	Room         RoomService
	Program      ProgramService
	Constraint   ConstraintService
	Availability AvailabilityService
	Export       ExportService
}

// NewService creates the Service aggregate.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Lecturer:     NewLecturerService(repo, logger),
		Group:        NewGroupService(repo, logger),
		Module:       NewModuleService(repo, logger),
		Room:         NewRoomService(repo, logger),
		Program:      NewProgramService(repo, logger),
		Constraint:   NewConstraintService(repo, logger),
		Availability: NewAvailabilityService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
