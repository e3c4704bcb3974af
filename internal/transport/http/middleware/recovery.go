package middleware

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/transport/http/response"
)

// Recovery logs the panic with stack via ginzap and still answers with the
// standard envelope instead of an empty 500.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, err any) {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
	})
}
