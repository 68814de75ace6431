package repository

import "gorm.io/gorm"

// Repository aggregates all the data-access interfaces.
type Repository struct {
	Lecturer       LecturerRepository
	Group          GroupRepository
	Module         ModuleRepository
	Room           RoomRepository
	Program        ProgramRepository
	Specialization SpecializationRepository
	Constraint     ConstraintRepository
	Availability   AvailabilityRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Lecturer:       NewLecturerRepo(db),
		Group:          NewGroupRepo(db),
		Module:         NewModuleRepo(db),
		Room:           NewRoomRepo(db),
		Program:        NewProgramRepo(db),
		Specialization: NewSpecializationRepo(db),
		Constraint:     NewConstraintRepo(db),
		Availability:   NewAvailabilityRepo(db),
	}
}
