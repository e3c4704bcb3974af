package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/core/auth"
	"taskboard/internal/transport/http/response"
)

// CtxUserID is the gin context key holding the authenticated caller's id.
const CtxUserID = "userId"

// AuthJWT guards a route group. Absent, malformed, expired or tampered
// tokens all end the request with 401; on success the caller id is placed in
// the context for handlers.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Not authorized, no token provided")
			c.Abort()
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Not authorized, token failed")
			c.Abort()
			return
		}
		c.Set(CtxUserID, claims.UID)
		c.Next()
	}
}
