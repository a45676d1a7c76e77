package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

type DashboardBuilder interface {
	Build(ctx context.Context, listID, day string) (*model.DashboardResponse, error)
}

type DashboardHandler struct {
	Dashboard     DashboardBuilder
	DefaultListID string
	log           *slog.Logger
}

func NewDashboardHandler(dashboard DashboardBuilder, defaultListID string, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard, DefaultListID: defaultListID, log: logger}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}
	listID := c.DefaultQuery("list_id", h.DefaultListID)
	if listID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list_id is required"})
		return
	}

	out, err := h.Dashboard.Build(c.Request.Context(), listID, day)
	if err != nil {
		h.log.Error("build dashboard", slog.String("day", day), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
