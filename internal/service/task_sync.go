package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

const wrikeStatusCompleted = "Completed"

// TaskLinkStore persists which ClickUp task mirrors which Wrike task.
type TaskLinkStore interface {
	GetTaskLink(ctx context.Context, wrikeID string) (*model.TaskLink, error)
	SaveTaskLink(ctx context.Context, wrikeID, clickupID string) error
	DeleteTaskLink(ctx context.Context, wrikeID string) error
}

// ClickUpTaskWriter is the subset of ClickUpService the mirror needs.
type ClickUpTaskWriter interface {
	CreateTask(ctx context.Context, listID string, req model.ClickUpTaskRequest) (*model.ClickUpTask, error)
	UpdateTask(ctx context.Context, taskID string, req model.ClickUpTaskRequest) (*model.ClickUpTask, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskSyncService mirrors Wrike tasks into one ClickUp list.
type TaskSyncService struct {
	ClickUp    ClickUpTaskWriter
	Links      TaskLinkStore
	ListID     string
	DoneStatus string
	log        *slog.Logger
}

func NewTaskSyncService(clickup ClickUpTaskWriter, links TaskLinkStore, listID, doneStatus string, logger *slog.Logger) *TaskSyncService {
	return &TaskSyncService{
		ClickUp:    clickup,
		Links:      links,
		ListID:     listID,
		DoneStatus: doneStatus,
		log:        logger,
	}
}

// SyncTaskToDestination creates or updates the ClickUp mirror of task and
// returns the ClickUp task id.
func (s *TaskSyncService) SyncTaskToDestination(ctx context.Context, task model.WrikeTask) (string, error) {
	link, err := s.Links.GetTaskLink(ctx, task.ID)
	if err != nil {
		return "", err
	}

	req := s.buildRequest(task)

	if link != nil {
		_, err := s.ClickUp.UpdateTask(ctx, link.ClickUpID, req)
		if err == nil {
			s.log.Debug("clickup task updated",
				slog.String("wrike_id", task.ID), slog.String("clickup_id", link.ClickUpID))
			return link.ClickUpID, nil
		}
		if !errors.Is(err, ErrTaskNotFound) {
			return "", err
		}
		s.log.Info("clickup mirror gone, recreating",
			slog.String("wrike_id", task.ID), slog.String("clickup_id", link.ClickUpID))
	}

	if strings.TrimSpace(s.ListID) == "" {
		return "", errors.New("clickup list id not configured")
	}
	created, err := s.ClickUp.CreateTask(ctx, s.ListID, req)
	if err != nil {
		return "", err
	}
	if err := s.Links.SaveTaskLink(ctx, task.ID, created.ID); err != nil {
		// The next sync cannot find this task and creates another one.
		s.log.Error("clickup task created without link",
			slog.String("wrike_id", task.ID),
			slog.String("clickup_id", created.ID),
			slog.String("error", err.Error()))
		return created.ID, errors.Wrapf(err, "link clickup task %s", created.ID)
	}
	s.log.Info("clickup task created",
		slog.String("wrike_id", task.ID), slog.String("clickup_id", created.ID))
	return created.ID, nil
}

// DeleteTaskFromDestination removes the mirror of a Wrike task. A task that
// was never mirrored is a no-op.
func (s *TaskSyncService) DeleteTaskFromDestination(ctx context.Context, sourceTaskID string) error {
	link, err := s.Links.GetTaskLink(ctx, sourceTaskID)
	if err != nil {
		return err
	}
	if link == nil {
		s.log.Debug("no clickup mirror to delete", slog.String("wrike_id", sourceTaskID))
		return nil
	}
	if err := s.ClickUp.DeleteTask(ctx, link.ClickUpID); err != nil {
		return err
	}
	if err := s.Links.DeleteTaskLink(ctx, sourceTaskID); err != nil {
		return err
	}
	s.log.Info("clickup task deleted",
		slog.String("wrike_id", sourceTaskID), slog.String("clickup_id", link.ClickUpID))
	return nil
}

func (s *TaskSyncService) buildRequest(task model.WrikeTask) model.ClickUpTaskRequest {
	req := model.ClickUpTaskRequest{
		Name:        task.Title,
		Description: buildDescription(task),
	}
	if ms, hasTime, ok := parseWrikeDate(task.Dates.Due); ok {
		req.DueDate = &ms
		req.DueDateTime = hasTime
	}
	if ms, hasTime, ok := parseWrikeDate(task.Dates.Start); ok {
		req.StartDate = &ms
		req.StartDateTime = hasTime
	}
	if task.Status == wrikeStatusCompleted && s.DoneStatus != "" {
		req.Status = s.DoneStatus
	}
	return req
}

func buildDescription(task model.WrikeTask) string {
	parts := make([]string, 0, 2)
	if task.Permalink != "" {
		parts = append(parts, task.Permalink)
	}
	if d := strings.TrimSpace(task.Description); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, "\n\n")
}

// parseWrikeDate handles Wrike's zone-less "2006-01-02T15:04:05" and plain
// dates. The bool reports whether a time of day was present.
func parseWrikeDate(v string) (int64, bool, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false, false
	}
	if t, err := time.Parse("2006-01-02T15:04:05", v); err == nil {
		return t.UnixMilli(), true, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UnixMilli(), false, true
	}
	return 0, false, false
}
