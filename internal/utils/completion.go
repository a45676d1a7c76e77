package utils

import (
	"math"
	"strings"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

var (
	excludedStatuses = map[string]struct{}{
		"in progress": {},
	}
	affirmativeStatuses = map[string]struct{}{
		"complete":  {},
		"completed": {},
		"went":      {},
		"attended":  {},
	}
	completedStatusTypes = map[string]struct{}{
		"done":   {},
		"closed": {},
	}
)

// FilterExcludedStatuses drops tasks whose status label is excluded from
// completion stats. Tasks without a status are kept.
func FilterExcludedStatuses(tasks []model.ClickUpTask) []model.ClickUpTask {
	out := make([]model.ClickUpTask, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != nil {
			if _, skip := excludedStatuses[strings.ToLower(t.Status.Status)]; skip {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func CountAffirmativeCompletions(tasks []model.ClickUpTask) int {
	n := 0
	for _, t := range tasks {
		if t.Status == nil {
			continue
		}
		if _, ok := affirmativeStatuses[strings.ToLower(t.Status.Status)]; ok {
			n++
		}
	}
	return n
}

// CalculateCompletionRate returns a whole percentage, 0 for an empty total.
func CalculateCompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// IsTaskCompleted looks at the status type, not the label.
func IsTaskCompleted(task model.ClickUpTask) bool {
	if task.Status == nil {
		return false
	}
	_, ok := completedStatusTypes[task.Status.Type]
	return ok
}

func SummarizeCompletion(tasks []model.ClickUpTask) model.CompletionSummary {
	considered := FilterExcludedStatuses(tasks)
	completed := 0
	for _, t := range considered {
		if IsTaskCompleted(t) {
			completed++
		}
	}
	return model.CompletionSummary{
		Total:       len(considered),
		Completed:   completed,
		Affirmative: CountAffirmativeCompletions(considered),
		Rate:        CalculateCompletionRate(completed, len(considered)),
	}
}
