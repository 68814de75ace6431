package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/service"
	"campusplan/backend/pkg/response"
)

// GroupHandler serves the student-group endpoints.
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// List GET /groups/
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, groups)
}

// Get GET /groups/:id
func (h *GroupHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	group, err := h.groupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, group)
}

// Create POST /groups/
func (h *GroupHandler) Create(c *gin.Context) {
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid group payload")
		return
	}
	group, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, group)
}

// Update PUT /groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid group payload")
		return
	}
	group, err := h.groupSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, group)
}

// Delete DELETE /groups/:id
func (h *GroupHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.groupSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *GroupHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrGroupNotFound) {
		response.NotFound(c, "Group not found")
		return
	}
	response.InternalError(c)
}
