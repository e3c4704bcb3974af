package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/transport/http/response"
)

// MaxBodyBytes caps request body size before any handler reads it.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			response.Fail(c, http.StatusRequestEntityTooLarge, "Request body too large")
		}
	}
}
