package model

// ClickUpStatus is the status block embedded in every ClickUp task.
type ClickUpStatus struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Color  string `json:"color"`
}

type ClickUpListRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ClickUpTag struct {
	Name string `json:"name"`
}

type ClickUpUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Color    string `json:"color"`
}

type ClickUpFieldOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	OrderIndex int    `json:"orderindex"`
}

type ClickUpTypeConfig struct {
	Options []ClickUpFieldOption `json:"options,omitempty"`
}

// ClickUpCustomField carries a drop-down selection as the option's orderindex,
// which ClickUp encodes as a number or a numeric string.
type ClickUpCustomField struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Value      interface{}       `json:"value,omitempty"`
	TypeConfig ClickUpTypeConfig `json:"type_config"`
}

// ClickUpTask is the raw task record returned by the ClickUp v2 API.
// Every field may be missing; dates are epoch milliseconds as strings.
type ClickUpTask struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	Parent        *string              `json:"parent"`
	List          *ClickUpListRef      `json:"list"`
	Status        *ClickUpStatus       `json:"status"`
	StartDate     *string              `json:"start_date"`
	DueDate       *string              `json:"due_date"`
	StartDateTime *bool                `json:"start_date_time"`
	DueDateTime   *bool                `json:"due_date_time"`
	Tags          []ClickUpTag         `json:"tags"`
	CustomFields  []ClickUpCustomField `json:"custom_fields"`
	Assignees     []ClickUpUser        `json:"assignees"`
	URL           string               `json:"url"`
}

type ClickUpTasksPage struct {
	Tasks    []ClickUpTask `json:"tasks"`
	LastPage bool          `json:"last_page"`
}

// ClickUpTaskRequest is the body for create/update task calls.
type ClickUpTaskRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status,omitempty"`
	DueDate       *int64 `json:"due_date,omitempty"`
	DueDateTime   bool   `json:"due_date_time,omitempty"`
	StartDate     *int64 `json:"start_date,omitempty"`
	StartDateTime bool   `json:"start_date_time,omitempty"`
	Priority      *int   `json:"priority,omitempty"`
}
