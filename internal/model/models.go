package model

import "time"

// ResponseApi is the {message, data} envelope of the login and webhook
// handlers. Read endpoints answer with their payload directly.
type ResponseApi struct {
	ApiMessage string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// TaskLink maps a Wrike task onto the ClickUp task mirroring it.
type TaskLink struct {
	WrikeID   string    `json:"wrike_id"`
	ClickUpID string    `json:"clickup_id"`
	UpdatedAt time.Time `json:"updated_at"`
}
