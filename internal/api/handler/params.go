package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusplan/backend/pkg/response"
)

// intParam pulls a positive integer path parameter, writing a 400 with
// the offending name when it is missing or malformed.
func intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
