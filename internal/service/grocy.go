package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

type GrocyService struct {
	api *apiClient
}

func NewGrocyService(baseURL, apiKey string, client *retryablehttp.Client) *GrocyService {
	return &GrocyService{
		api: newAPIClient("grocy", baseURL, client, func(req *retryablehttp.Request) {
			req.Header.Set("GROCY-API-KEY", apiKey)
		}),
	}
}

// GetMealPlan returns the meal plan rows of day (YYYY-MM-DD) with recipe
// names resolved.
func (s *GrocyService) GetMealPlan(ctx context.Context, day string) ([]model.MealPlanEntry, error) {
	q := url.Values{}
	q.Set("query[]", "day="+day)

	var plan []model.GrocyMealPlan
	if err := s.api.doRequest(ctx, http.MethodGet, "/api/objects/meal_plan?"+q.Encode(), nil, &plan); err != nil {
		return nil, errors.Wrapf(err, "fetch meal plan for %s", day)
	}

	names := map[model.FlexInt]string{}
	if needsRecipes(plan) {
		var recipes []model.GrocyRecipe
		if err := s.api.doRequest(ctx, http.MethodGet, "/api/objects/recipes", nil, &recipes); err != nil {
			return nil, errors.Wrap(err, "fetch recipes")
		}
		for _, r := range recipes {
			names[r.ID] = r.Name
		}
	}

	out := make([]model.MealPlanEntry, 0, len(plan))
	for _, p := range plan {
		entry := model.MealPlanEntry{
			ID:   int(p.ID),
			Day:  p.Day,
			Type: p.Type,
			Note: strings.TrimSpace(p.Note),
			Done: p.Done == 1,
		}
		if p.RecipeID != nil {
			if name, ok := names[*p.RecipeID]; ok {
				entry.RecipeName = &name
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func needsRecipes(plan []model.GrocyMealPlan) bool {
	for _, p := range plan {
		if p.RecipeID != nil {
			return true
		}
	}
	return false
}
