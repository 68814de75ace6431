package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every failed request. Clients surface
// the detail string directly, so it must be human-readable.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// ── success responses ──

// OK writes the payload as-is with 200. Collection endpoints pass slices,
// detail endpoints pass a single object.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the payload as-is with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── error responses ──

// Error writes an error body with the given status.
func Error(c *gin.Context, httpStatus int, detail string) {
	c.JSON(httpStatus, ErrorBody{Detail: detail})
}

// BadRequest 400
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// NotFound 404
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// Conflict 409
func Conflict(c *gin.Context, detail string) {
	Error(c, http.StatusConflict, detail)
}

// InternalError 500 with a generic detail; the real error goes to the log.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}
