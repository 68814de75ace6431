package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/service"
	"campusplan/backend/pkg/response"
)

// ProgramHandler serves study programs and their specializations.
type ProgramHandler struct {
	programSvc service.ProgramService
}

// NewProgramHandler creates a ProgramHandler.
func NewProgramHandler(programSvc service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programSvc: programSvc}
}

// ────────────────────── study programs ──────────────────────

// List GET /study-programs/
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, programs)
}

// Get GET /study-programs/:id
func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	program, err := h.programSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, program)
}

// Create POST /study-programs/
func (h *ProgramHandler) Create(c *gin.Context) {
	var req dto.ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid study program payload")
		return
	}
	program, err := h.programSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, program)
}

// Update PUT /study-programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid study program payload")
		return
	}
	program, err := h.programSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, program)
}

// Delete DELETE /study-programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.programSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

// ────────────────────── specializations ──────────────────────

// ListSpecializations GET /specializations/
func (h *ProgramHandler) ListSpecializations(c *gin.Context) {
	specs, err := h.programSvc.ListSpecializations(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, specs)
}

// GetSpecialization GET /specializations/:id
func (h *ProgramHandler) GetSpecialization(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	spec, err := h.programSvc.GetSpecialization(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, spec)
}

// CreateSpecialization POST /specializations/
func (h *ProgramHandler) CreateSpecialization(c *gin.Context) {
	var req dto.SpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid specialization payload")
		return
	}
	spec, err := h.programSvc.CreateSpecialization(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, spec)
}

// UpdateSpecialization PUT /specializations/:id
func (h *ProgramHandler) UpdateSpecialization(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.SpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid specialization payload")
		return
	}
	spec, err := h.programSvc.UpdateSpecialization(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, spec)
}

// DeleteSpecialization DELETE /specializations/:id
func (h *ProgramHandler) DeleteSpecialization(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.programSvc.DeleteSpecialization(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *ProgramHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, "Study program not found")
	case errors.Is(err, service.ErrSpecializationNotFound):
		response.NotFound(c, "Specialization not found")
	default:
		response.InternalError(c)
	}
}
