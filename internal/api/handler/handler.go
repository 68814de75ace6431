package handler

import "campusplan/backend/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Lecturer     *LecturerHandler
	Group        *GroupHandler
	Module       *ModuleHandler
	Room         *RoomHandler
	Program      *ProgramHandler
	Constraint   *ConstraintHandler
	Availability *AvailabilityHandler
	Export       *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Lecturer:     NewLecturerHandler(svc.Lecturer),
		Group:        NewGroupHandler(svc.Group),
		Module:       NewModuleHandler(svc.Module),
		Room:         NewRoomHandler(svc.Room),
		Program:      NewProgramHandler(svc.Program),
		Constraint:   NewConstraintHandler(svc.Constraint),
		Availability: NewAvailabilityHandler(svc.Availability),
		Export:       NewExportHandler(svc.Export),
	}
}
