package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusplan/backend/pkg/response"
)

// BodyLimit caps the request body size. ICS uploads are the largest
// legitimate payloads, so the cap is configured, not hard-coded.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
		}
	}
}
