package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/transport/http/response"
)

func Health(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Welcome answers the bare root with the API's front door: name, version and
// where the route groups live. No success flag; this is not an envelope reply.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Task Management API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"auth":   "/api/auth",
			"users":  "/api/users",
			"tasks":  "/api/tasks",
			"health": "/api/health",
		},
	})
}
