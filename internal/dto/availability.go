package dto

import "campusplan/backend/internal/model"

// AvailabilityResponse mirrors a stored lecturer availability schedule.
type AvailabilityResponse struct {
	ID           int           `json:"id"`
	LecturerID   int           `json:"lecturer_id"`
	ScheduleData model.JSONMap `json:"schedule_data"`
}

// AvailabilityUpdateRequest replaces a lecturer's schedule grid with a
// client-edited one.
type AvailabilityUpdateRequest struct {
	ScheduleData model.JSONMap `json:"schedule_data" binding:"required"`
}

// AvailabilityImportResponse reports the outcome of an ICS import.
type AvailabilityImportResponse struct {
	LecturerID   int           `json:"lecturer_id"`
	EventsParsed int           `json:"events_parsed"`
	ScheduleData model.JSONMap `json:"schedule_data"`
}

// ToAvailabilityResponse converts a model into its wire form.
func ToAvailabilityResponse(a *model.LecturerAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:           a.ID,
		LecturerID:   a.LecturerID,
		ScheduleData: a.ScheduleData,
	}
}
