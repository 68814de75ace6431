package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/rulebuilder"
	"campusplan/backend/internal/service"
	"campusplan/backend/pkg/response"
)

// ConstraintHandler serves scheduler constraints and the rule-builder
// support endpoints (targets, categories, preview).
type ConstraintHandler struct {
	constraintSvc service.ConstraintService
}

// NewConstraintHandler creates a ConstraintHandler.
func NewConstraintHandler(constraintSvc service.ConstraintService) *ConstraintHandler {
	return &ConstraintHandler{constraintSvc: constraintSvc}
}

// List GET /scheduler-constraints/
func (h *ConstraintHandler) List(c *gin.Context) {
	constraints, err := h.constraintSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, constraints)
}

// Get GET /scheduler-constraints/:id
func (h *ConstraintHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	constraint, err := h.constraintSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, constraint)
}

// Create POST /scheduler-constraints/
func (h *ConstraintHandler) Create(c *gin.Context) {
	var req dto.ConstraintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid constraint payload")
		return
	}
	constraint, err := h.constraintSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, constraint)
}

// Update PUT /scheduler-constraints/:id
func (h *ConstraintHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.ConstraintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid constraint payload")
		return
	}
	constraint, err := h.constraintSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, constraint)
}

// Delete DELETE /scheduler-constraints/:id?confirm=DELETE
//
// The confirm query parameter must carry the literal phrase DELETE; the
// service rejects anything else.
func (h *ConstraintHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.constraintSvc.Delete(c.Request.Context(), id, c.Query("confirm")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

// Targets GET /scheduler-constraints/targets?scope=Lecturer
func (h *ConstraintHandler) Targets(c *gin.Context) {
	scope := c.Query("scope")
	if scope == "" {
		response.BadRequest(c, "scope query parameter is required")
		return
	}
	targets, err := h.constraintSvc.Targets(c.Request.Context(), scope)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, targets)
}

// Categories GET /scheduler-constraints/categories?scope=Lecturer
func (h *ConstraintHandler) Categories(c *gin.Context) {
	scope := c.Query("scope")
	if scope == "" {
		response.BadRequest(c, "scope query parameter is required")
		return
	}
	response.OK(c, h.constraintSvc.Categories(scope))
}

// Preview POST /scheduler-constraints/preview
func (h *ConstraintHandler) Preview(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid preview payload")
		return
	}
	preview, err := h.constraintSvc.Preview(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, preview)
}

func (h *ConstraintHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrConstraintNotFound):
		response.NotFound(c, "Scheduler constraint not found")
	case errors.Is(err, service.ErrDeleteNotConfirmed),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, rulebuilder.ErrNameRequired),
		errors.Is(err, rulebuilder.ErrCustomTextMissing),
		errors.Is(err, rulebuilder.ErrInvalidScope),
		errors.Is(err, rulebuilder.ErrCategoryNotInScope),
		errors.Is(err, rulebuilder.ErrTargetNotInScope):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
