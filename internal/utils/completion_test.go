package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

func taskWithStatus(id, label, typ string) model.ClickUpTask {
	return model.ClickUpTask{ID: id, Status: &model.ClickUpStatus{Status: label, Type: typ}}
}

func TestIsTaskCompleted(t *testing.T) {
	tests := []struct {
		name string
		task model.ClickUpTask
		want bool
	}{
		{"done type", taskWithStatus("1", "shipped", "done"), true},
		{"closed type", taskWithStatus("2", "complete", "closed"), true},
		{"open type with complete label", taskWithStatus("3", "complete", "open"), false},
		{"custom type", taskWithStatus("4", "in progress", "custom"), false},
		{"no status", model.ClickUpTask{ID: "5"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTaskCompleted(tt.task))
		})
	}
}

func TestCalculateCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CalculateCompletionRate(0, 0))
	assert.Equal(t, 0, CalculateCompletionRate(5, 0))
	assert.Equal(t, 100, CalculateCompletionRate(4, 4))
	assert.Equal(t, 33, CalculateCompletionRate(1, 3))
	assert.Equal(t, 67, CalculateCompletionRate(2, 3))
	assert.Equal(t, 50, CalculateCompletionRate(1, 2))
	assert.Equal(t, 13, CalculateCompletionRate(1, 8))
}

func TestFilterExcludedStatuses(t *testing.T) {
	tasks := []model.ClickUpTask{
		taskWithStatus("1", "In Progress", "custom"),
		taskWithStatus("2", "complete", "closed"),
		{ID: "3"},
		taskWithStatus("4", "to do", "open"),
	}

	once := FilterExcludedStatuses(tasks)
	twice := FilterExcludedStatuses(once)

	ids := make([]string, 0, len(once))
	for _, task := range once {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"2", "3", "4"}, ids)
	assert.Equal(t, once, twice)
	assert.Len(t, tasks, 4)
}

func TestCountAffirmativeCompletions(t *testing.T) {
	tasks := []model.ClickUpTask{
		taskWithStatus("1", "Complete", "closed"),
		taskWithStatus("2", "completed", "done"),
		taskWithStatus("3", "WENT", "custom"),
		taskWithStatus("4", "attended", "custom"),
		taskWithStatus("5", "skipped", "custom"),
		{ID: "6"},
	}

	assert.Equal(t, 4, CountAffirmativeCompletions(tasks))
	assert.Equal(t, 0, CountAffirmativeCompletions(nil))
}

func TestSummarizeCompletion(t *testing.T) {
	tasks := []model.ClickUpTask{
		taskWithStatus("1", "complete", "closed"),
		taskWithStatus("2", "in progress", "custom"),
		taskWithStatus("3", "to do", "open"),
		taskWithStatus("4", "went", "done"),
	}

	got := SummarizeCompletion(tasks)

	assert.Equal(t, model.CompletionSummary{Total: 3, Completed: 2, Affirmative: 2, Rate: 67}, got)
}
