package utils

import (
	"sort"
	"strings"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

// UnrankedTimeOfDay sorts after every known bucket.
const UnrankedTimeOfDay = 99

var timeOfDayRanks = map[string]int{
	"early morning": 0,
	"morning":       1,
	"mid day":       2,
	"afternoon":     3,
	"evening":       4,
	"before bed":    5,
}

// TimeOfDayRank is case-insensitive; unknown or nil buckets get UnrankedTimeOfDay.
func TimeOfDayRank(tod *model.TimeOfDay) int {
	if tod == nil {
		return UnrankedTimeOfDay
	}
	if rank, ok := timeOfDayRanks[strings.ToLower(strings.TrimSpace(tod.Name))]; ok {
		return rank
	}
	return UnrankedTimeOfDay
}

// SortByTimeOfDay returns a stably sorted copy; items is left untouched.
func SortByTimeOfDay(items []model.TaskItem) []model.TaskItem {
	out := make([]model.TaskItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return TimeOfDayRank(out[i].TimeOfDay) < TimeOfDayRank(out[j].TimeOfDay)
	})
	return out
}
