package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/service"
	"campusplan/backend/pkg/response"
)

// ModuleHandler serves the teaching-module endpoints. Modules are
// addressed by module code.
type ModuleHandler struct {
	moduleSvc service.ModuleService
}

// NewModuleHandler creates a ModuleHandler.
func NewModuleHandler(moduleSvc service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleSvc: moduleSvc}
}

// List GET /modules/
func (h *ModuleHandler) List(c *gin.Context) {
	modules, err := h.moduleSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, modules)
}

// Get GET /modules/:code
func (h *ModuleHandler) Get(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "module code must not be empty")
		return
	}
	module, err := h.moduleSvc.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, module)
}

// Create POST /modules/
func (h *ModuleHandler) Create(c *gin.Context) {
	var req dto.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid module payload")
		return
	}
	module, err := h.moduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, module)
}

// Update PUT /modules/:code
func (h *ModuleHandler) Update(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "module code must not be empty")
		return
	}
	var req dto.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid module payload")
		return
	}
	module, err := h.moduleSvc.Update(c.Request.Context(), code, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, module)
}

// Delete DELETE /modules/:code
func (h *ModuleHandler) Delete(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "module code must not be empty")
		return
	}
	if err := h.moduleSvc.Delete(c.Request.Context(), code); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *ModuleHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrModuleNotFound):
		response.NotFound(c, "Module not found")
	case errors.Is(err, service.ErrModuleExists):
		response.Conflict(c, "A module with this code already exists")
	default:
		response.InternalError(c)
	}
}
