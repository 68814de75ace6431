package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/service"
	"campusplan/backend/pkg/response"
)

// AvailabilityHandler serves lecturer availability schedules.
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// Get GET /availabilities/:lecturer_id
func (h *AvailabilityHandler) Get(c *gin.Context) {
	lecturerID, ok := intParam(c, "lecturer_id")
	if !ok {
		return
	}
	availability, err := h.availabilitySvc.GetByLecturer(c.Request.Context(), lecturerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, availability)
}

// Update PUT /availabilities/:lecturer_id
func (h *AvailabilityHandler) Update(c *gin.Context) {
	lecturerID, ok := intParam(c, "lecturer_id")
	if !ok {
		return
	}
	var req dto.AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid availability payload")
		return
	}
	availability, err := h.availabilitySvc.Update(c.Request.Context(), lecturerID, req.ScheduleData)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, availability)
}

// Import POST /availabilities/:lecturer_id/import
//
// Accepts a multipart upload with the calendar under the "file" field, or
// a raw ICS body when no multipart form is present.
func (h *AvailabilityHandler) Import(c *gin.Context) {
	lecturerID, ok := intParam(c, "lecturer_id")
	if !ok {
		return
	}

	reader := c.Request.Body
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			response.BadRequest(c, "uploaded calendar could not be read")
			return
		}
		defer f.Close()
		reader = f
	}

	result, err := h.availabilitySvc.ImportICS(c.Request.Context(), lecturerID, reader)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete DELETE /availabilities/:lecturer_id
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	lecturerID, ok := intParam(c, "lecturer_id")
	if !ok {
		return
	}
	if err := h.availabilitySvc.Delete(c.Request.Context(), lecturerID); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *AvailabilityHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAvailabilityNotFound):
		response.NotFound(c, "No availability schedule for this lecturer")
	case errors.Is(err, service.ErrLecturerNotFound):
		response.NotFound(c, "Lecturer not found")
	case errors.Is(err, service.ErrScheduleInvalid):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrICSEmpty), errors.Is(err, service.ErrICSInvalid):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
