package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

const (
	unknownStatus      = "unknown"
	unknownStatusColor = "#808080"
	timeOfDayFieldName = "time of day"

	// isoLayout matches JavaScript's Date.toISOString output.
	isoLayout = "2006-01-02T15:04:05.000Z"
)

// MapTaskToItem converts a raw ClickUp task into a TaskItem. Missing fields
// get explicit defaults so the result is always fully populated.
func MapTaskToItem(raw model.ClickUpTask, parentNames map[string]string) model.TaskItem {
	item := model.TaskItem{
		ID:           raw.ID,
		Name:         raw.Name,
		Status:       mapStatus(raw.Status),
		StartDate:    msStringToISO(raw.StartDate),
		HasStartTime: raw.StartDateTime != nil && *raw.StartDateTime,
		DueDate:      msStringToISO(raw.DueDate),
		HasDueTime:   raw.DueDateTime != nil && *raw.DueDateTime,
		Tags:         tagNames(raw.Tags),
		TimeOfDay:    ExtractTimeOfDay(raw.CustomFields),
		URL:          raw.URL,
	}

	if raw.List != nil {
		item.ListID = raw.List.ID
	}

	if raw.Parent != nil && *raw.Parent != "" {
		if name, ok := parentNames[*raw.Parent]; ok {
			item.ParentName = &name
		}
	}

	return item
}

// MapTasksToItems maps a batch, resolving parent names from the batch itself.
func MapTasksToItems(raw []model.ClickUpTask) []model.TaskItem {
	parents := ParentNameLookup(raw)
	out := make([]model.TaskItem, 0, len(raw))
	for _, t := range raw {
		out = append(out, MapTaskToItem(t, parents))
	}
	return out
}

// ParentNameLookup indexes task names by id.
func ParentNameLookup(tasks []model.ClickUpTask) map[string]string {
	names := make(map[string]string, len(tasks))
	for _, t := range tasks {
		if t.ID != "" {
			names[t.ID] = t.Name
		}
	}
	return names
}

// ExtractTimeOfDay returns the selected option of the "Time of Day" drop-down,
// or nil when the field is missing, unset or points at no known option.
func ExtractTimeOfDay(fields []model.ClickUpCustomField) *model.TimeOfDay {
	for _, f := range fields {
		if !strings.EqualFold(strings.TrimSpace(f.Name), timeOfDayFieldName) {
			continue
		}
		selected, ok := optionIndex(f.Value)
		if !ok {
			return nil
		}
		for _, opt := range f.TypeConfig.Options {
			if opt.OrderIndex == selected {
				return &model.TimeOfDay{Name: opt.Name, Color: opt.Color}
			}
		}
		return nil
	}
	return nil
}

func mapStatus(st *model.ClickUpStatus) model.TaskItemStatus {
	if st == nil {
		return model.TaskItemStatus{Status: unknownStatus, Type: unknownStatus, Color: unknownStatusColor}
	}
	return model.TaskItemStatus{Status: st.Status, Type: st.Type, Color: st.Color}
}

func tagNames(tags []model.ClickUpTag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Name)
	}
	return out
}

// msStringToISO parses epoch milliseconds; anything unparsable maps to nil.
func msStringToISO(v *string) *string {
	if v == nil {
		return nil
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(*v), 10, 64)
	if err != nil {
		return nil
	}
	iso := time.UnixMilli(ms).UTC().Format(isoLayout)
	return &iso
}

func optionIndex(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return i, true
		}
	}
	return 0, false
}
