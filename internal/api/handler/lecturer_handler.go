package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/service"
	"campusplan/backend/pkg/response"
)

// LecturerHandler serves the lecturer endpoints.
type LecturerHandler struct {
	lecturerSvc service.LecturerService
}

// NewLecturerHandler creates a LecturerHandler.
func NewLecturerHandler(lecturerSvc service.LecturerService) *LecturerHandler {
	return &LecturerHandler{lecturerSvc: lecturerSvc}
}

// List GET /lecturers/
func (h *LecturerHandler) List(c *gin.Context) {
	lecturers, err := h.lecturerSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, lecturers)
}

// Get GET /lecturers/:id
func (h *LecturerHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	lecturer, err := h.lecturerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, lecturer)
}

// Create POST /lecturers/
func (h *LecturerHandler) Create(c *gin.Context) {
	var req dto.LecturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid lecturer payload")
		return
	}
	lecturer, err := h.lecturerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, lecturer)
}

// Update PUT /lecturers/:id
func (h *LecturerHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.LecturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid lecturer payload")
		return
	}
	lecturer, err := h.lecturerSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, lecturer)
}

// Delete DELETE /lecturers/:id
func (h *LecturerHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.lecturerSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *LecturerHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrLecturerNotFound) {
		response.NotFound(c, "Lecturer not found")
		return
	}
	response.InternalError(c)
}
