package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes numbers that older Grocy releases serialize as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		var fl float64
		if jerr := json.Unmarshal([]byte(s), &fl); jerr != nil {
			return err
		}
		n = int(fl)
	}
	*f = FlexInt(n)
	return nil
}

// GrocyMealPlan is a row of Grocy's meal_plan object. done is 0/1.
type GrocyMealPlan struct {
	ID       FlexInt  `json:"id"`
	Day      string   `json:"day"`
	Type     string   `json:"type"`
	RecipeID *FlexInt `json:"recipe_id"`
	Note     string   `json:"note"`
	Done     FlexInt  `json:"done"`
}

type GrocyRecipe struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
}

// MealPlanEntry is the meal plan row served to the frontend.
type MealPlanEntry struct {
	ID         int     `json:"id"`
	Day        string  `json:"day"`
	Type       string  `json:"type"`
	RecipeName *string `json:"recipeName"`
	Note       string  `json:"note"`
	Done       bool    `json:"done"`
}

type MealPlanResponse struct {
	Day            string          `json:"day"`
	Meals          []MealPlanEntry `json:"meals"`
	CompletionRate int             `json:"completion_rate"`
}
