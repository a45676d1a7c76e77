package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-productivity-backend/internal/model"
	"github.com/roksva123/go-productivity-backend/internal/utils"
)

type TaskLister interface {
	GetListTasks(ctx context.Context, listID string) ([]model.ClickUpTask, error)
}

// ClickUpHandler serves the read path over a ClickUp list.
type ClickUpHandler struct {
	Tasks         TaskLister
	DefaultListID string
	log           *slog.Logger
}

func NewClickUpHandler(tasks TaskLister, defaultListID string, logger *slog.Logger) *ClickUpHandler {
	return &ClickUpHandler{Tasks: tasks, DefaultListID: defaultListID, log: logger}
}

func (h *ClickUpHandler) listID(c *gin.Context) string {
	if id := c.Query("list_id"); id != "" {
		return id
	}
	return h.DefaultListID
}

func (h *ClickUpHandler) fetch(c *gin.Context) (string, []model.ClickUpTask, bool) {
	listID := h.listID(c)
	if listID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list_id is required"})
		return "", nil, false
	}
	tasks, err := h.Tasks.GetListTasks(c.Request.Context(), listID)
	if err != nil {
		h.log.Error("fetch clickup tasks", slog.String("list_id", listID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return "", nil, false
	}
	return listID, tasks, true
}

// ListTasks returns the list's tasks as TaskItems ordered by time of day.
func (h *ClickUpHandler) ListTasks(c *gin.Context) {
	listID, raw, ok := h.fetch(c)
	if !ok {
		return
	}
	items := utils.SortByTimeOfDay(utils.MapTasksToItems(raw))
	c.JSON(http.StatusOK, model.TaskListResponse{ListID: listID, Tasks: items})
}

func (h *ClickUpHandler) Stats(c *gin.Context) {
	_, raw, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, utils.SummarizeCompletion(raw))
}
