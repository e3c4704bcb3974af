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

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Mount registers the task CRUD routes; the group must carry AuthJWT.
func (h *TaskHandler) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *TaskHandler) List(c *gin.Context) {
	owner := c.GetString(middleware.CtxUserID)
	tasks, err := h.svc.List(c.Request.Context(), owner, c.Query("q"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *TaskHandler) Create(c *gin.Context) {
	var in struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	owner := c.GetString(middleware.CtxUserID)
	t, err := h.svc.Create(c.Request.Context(), owner, in.Title, in.Description, in.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    t,
	})
}

func (h *TaskHandler) Update(c *gin.Context) {
	// pointers so an absent field is distinguishable from an empty one
	var in struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}
	// a missing body is an empty patch, only updatedAt moves
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	owner := c.GetString(middleware.CtxUserID)
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), owner, service.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    t,
	})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	owner := c.GetString(middleware.CtxUserID)
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id, owner); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"taskId":  id,
	})
}
