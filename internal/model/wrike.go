package model

// Wrike webhook event types the router acts on.
const (
	EventTaskStatusChanged       = "TaskStatusChanged"
	EventTaskResponsiblesAdded   = "TaskResponsiblesAdded"
	EventTaskResponsiblesRemoved = "TaskResponsiblesRemoved"
	EventTaskDeleted             = "TaskDeleted"
)

// WebhookEvent is one entry of a Wrike webhook delivery. Fields the router
// does not consume (webhookId, eventAuthorId, lastUpdatedDate, ...) are dropped.
type WebhookEvent struct {
	EventType           string   `json:"eventType"`
	TaskID              string   `json:"taskId"`
	AddedResponsibles   []string `json:"addedResponsibles,omitempty"`
	RemovedResponsibles []string `json:"removedResponsibles,omitempty"`
}

type WrikeDates struct {
	Type  string `json:"type"`
	Start string `json:"start,omitempty"`
	Due   string `json:"due,omitempty"`
}

type WrikeTask struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Importance     string     `json:"importance"`
	ResponsibleIDs []string   `json:"responsibleIds"`
	Permalink      string     `json:"permalink"`
	Dates          WrikeDates `json:"dates"`
}

// HasResponsible reports whether userID is among the task's assignees.
func (t WrikeTask) HasResponsible(userID string) bool {
	for _, id := range t.ResponsibleIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// WrikeTaskResponse is the list-shaped envelope Wrike returns even for a
// single task lookup.
type WrikeTaskResponse struct {
	Kind string      `json:"kind"`
	Data []WrikeTask `json:"data"`
}

type WrikeContact struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Me        bool   `json:"me"`
}

type WrikeContactsResponse struct {
	Kind string         `json:"kind"`
	Data []WrikeContact `json:"data"`
}

// WebhookReport summarizes what the router did with one delivery.
type WebhookReport struct {
	BatchID  string `json:"batch_id"`
	Received int    `json:"received"`
	Synced   int    `json:"synced"`
	Deleted  int    `json:"deleted"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}
