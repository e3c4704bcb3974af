package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/service"
	"taskboard/internal/transport/http/middleware"
	"taskboard/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Mount registers the profile routes; the group must carry AuthJWT.
func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/profile", h.Profile)
	g.PUT("/profile", h.UpdateProfile)
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.svc.Profile(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"user": viewUser(u)})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	// only name is accepted; an email in the body is ignored on purpose,
	// and a missing body leaves the profile as it is
	var in struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserID), in.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    viewUser(u),
	})
}
