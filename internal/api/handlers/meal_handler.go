package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-productivity-backend/internal/model"
	"github.com/roksva123/go-productivity-backend/internal/service"
)

const dayLayout = "2006-01-02"

type MealPlanner interface {
	GetMealPlan(ctx context.Context, day string) ([]model.MealPlanEntry, error)
}

type MealHandler struct {
	Meals MealPlanner
	log   *slog.Logger
}

func NewMealHandler(meals MealPlanner, logger *slog.Logger) *MealHandler {
	return &MealHandler{Meals: meals, log: logger}
}

func (h *MealHandler) GetMealPlan(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}
	meals, err := h.Meals.GetMealPlan(c.Request.Context(), day)
	if err != nil {
		h.log.Error("fetch meal plan", slog.String("day", day), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.BuildMealPlanResponse(day, meals))
}

// parseDay reads ?day=YYYY-MM-DD, defaulting to today.
func parseDay(c *gin.Context) (string, bool) {
	day := c.Query("day")
	if day == "" {
		return time.Now().Format(dayLayout), true
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be YYYY-MM-DD"})
		return "", false
	}
	return day, true
}
