package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/roksva123/go-productivity-backend/internal/model"
	"github.com/roksva123/go-productivity-backend/internal/utils"
)

type TaskLister interface {
	GetListTasks(ctx context.Context, listID string) ([]model.ClickUpTask, error)
}

type MealPlanner interface {
	GetMealPlan(ctx context.Context, day string) ([]model.MealPlanEntry, error)
}

// DashboardService combines the ClickUp list and the Grocy meal plan of a day.
// Meals may be nil when Grocy is not configured.
type DashboardService struct {
	Tasks TaskLister
	Meals MealPlanner
}

func NewDashboardService(tasks TaskLister, meals MealPlanner) *DashboardService {
	return &DashboardService{Tasks: tasks, Meals: meals}
}

func (s *DashboardService) Build(ctx context.Context, listID, day string) (*model.DashboardResponse, error) {
	var (
		rawTasks []model.ClickUpTask
		meals    []model.MealPlanEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawTasks, err = s.Tasks.GetListTasks(gctx, listID)
		return errors.Wrap(err, "dashboard tasks")
	})
	if s.Meals != nil {
		g.Go(func() error {
			var err error
			meals, err = s.Meals.GetMealPlan(gctx, day)
			return errors.Wrap(err, "dashboard meals")
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &model.DashboardResponse{
		Day:   day,
		Tasks: utils.SortByTimeOfDay(utils.MapTasksToItems(rawTasks)),
		Stats: utils.SummarizeCompletion(rawTasks),
	}
	if s.Meals != nil {
		out.Meals = BuildMealPlanResponse(day, meals)
	}
	return out, nil
}

// BuildMealPlanResponse attaches the share of meals marked done.
func BuildMealPlanResponse(day string, meals []model.MealPlanEntry) *model.MealPlanResponse {
	if meals == nil {
		meals = []model.MealPlanEntry{}
	}
	done := 0
	for _, m := range meals {
		if m.Done {
			done++
		}
	}
	return &model.MealPlanResponse{
		Day:            day,
		Meals:          meals,
		CompletionRate: utils.CalculateCompletionRate(done, len(meals)),
	}
}
