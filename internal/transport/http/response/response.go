// Package response renders the uniform JSON envelope: every reply carries a
// success flag, failures carry a message, successes merge their payload keys
// into the top level ({success, message, user, token, ...}).
package response

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/domain/apperr"
)

const genericInternal = "Internal server error"

// OK writes a success envelope. payload keys are merged beside "success".
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes {success:false, message}.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// Error is the single error-to-status mapping point. Application errors keep
// their message; anything else (including wrapped internals) becomes a
// generic 500 so store details never reach the client. The cause is attached
// to the gin context for the access log.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	status := apperr.Status(err)
	msg := err.Error()
	if status == 500 {
		msg = genericInternal
	}
	Fail(c, status, msg)
}
