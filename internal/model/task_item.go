package model

type TaskItemStatus struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	Color  string `json:"color"`
}

type TimeOfDay struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TaskItem is the frontend projection of a ClickUp task. It is recomputed on
// every read and has no identity of its own.
type TaskItem struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ParentName   *string        `json:"parentName"`
	ListID       string         `json:"listId"`
	Status       TaskItemStatus `json:"status"`
	StartDate    *string        `json:"startDate"`
	HasStartTime bool           `json:"hasStartTime"`
	DueDate      *string        `json:"dueDate"`
	HasDueTime   bool           `json:"hasDueTime"`
	Tags         []string       `json:"tags"`
	TimeOfDay    *TimeOfDay     `json:"timeOfDay"`
	URL          string         `json:"url"`
}

type CompletionSummary struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	Affirmative int `json:"affirmative"`
	Rate        int `json:"rate"`
}

type TaskListResponse struct {
	ListID string     `json:"list_id"`
	Tasks  []TaskItem `json:"tasks"`
}

type DashboardResponse struct {
	Day   string            `json:"day"`
	Tasks []TaskItem        `json:"tasks"`
	Stats CompletionSummary `json:"stats"`
	Meals *MealPlanResponse `json:"meals"`
}
