package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/metrics"
	"github.com/roksva123/go-productivity-backend/internal/model"
)

// SourceTaskClient fetches task details from the service emitting webhooks.
type SourceTaskClient interface {
	GetTask(ctx context.Context, id string) (*model.WrikeTaskResponse, error)
}

// DestinationSyncClient mirrors source tasks into the destination service.
type DestinationSyncClient interface {
	SyncTaskToDestination(ctx context.Context, task model.WrikeTask) (string, error)
	DeleteTaskFromDestination(ctx context.Context, sourceTaskID string) error
}

type routeOutcome string

const (
	outcomeSynced  routeOutcome = "synced"
	outcomeDeleted routeOutcome = "deleted"
	outcomeSkipped routeOutcome = "skipped"
	outcomeFailed  routeOutcome = "failed"
)

// WebhookRouter decides per Wrike event whether to sync, delete or ignore
// the task in ClickUp, based on whether the watched user is affected.
type WebhookRouter struct {
	source        SourceTaskClient
	dest          DestinationSyncClient
	currentUserID string
	log           *slog.Logger
}

// NewWebhookRouter wires the router. An empty currentUserID disables all
// processing: every event is skipped.
func NewWebhookRouter(source SourceTaskClient, dest DestinationSyncClient, currentUserID string, logger *slog.Logger) *WebhookRouter {
	return &WebhookRouter{
		source:        source,
		dest:          dest,
		currentUserID: currentUserID,
		log:           logger,
	}
}

// HandleEvents processes events in order. A failing event is logged and
// counted; it never stops the remaining events.
func (r *WebhookRouter) HandleEvents(ctx context.Context, events []model.WebhookEvent) model.WebhookReport {
	report := model.WebhookReport{
		BatchID:  uuid.NewString(),
		Received: len(events),
	}
	log := r.log.With(slog.String("batch_id", report.BatchID))

	for i, ev := range events {
		outcome, err := r.handleEventIsolated(ctx, ev)
		if err != nil {
			log.Error("webhook event failed",
				slog.Int("index", i),
				slog.String("event_type", ev.EventType),
				slog.String("task_id", ev.TaskID),
				slog.String("error", err.Error()))
		}
		metrics.WebhookEvents.WithLabelValues(eventTypeLabel(ev.EventType), string(outcome)).Inc()

		switch outcome {
		case outcomeSynced:
			report.Synced++
		case outcomeDeleted:
			report.Deleted++
		case outcomeFailed:
			report.Failed++
		default:
			report.Skipped++
		}
	}

	log.Info("webhook batch processed",
		slog.Int("received", report.Received),
		slog.Int("synced", report.Synced),
		slog.Int("deleted", report.Deleted),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed))
	return report
}

func (r *WebhookRouter) handleEventIsolated(ctx context.Context, ev model.WebhookEvent) (outcome routeOutcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = outcomeFailed
			err = fmt.Errorf("panic while handling event: %v", rec)
		}
	}()
	return r.handleEvent(ctx, ev)
}

func (r *WebhookRouter) handleEvent(ctx context.Context, ev model.WebhookEvent) (routeOutcome, error) {
	if r.currentUserID == "" {
		return outcomeSkipped, nil
	}
	if strings.TrimSpace(ev.TaskID) == "" {
		r.log.Warn("webhook event without task id", slog.String("event_type", ev.EventType))
		return outcomeSkipped, nil
	}

	switch ev.EventType {
	case model.EventTaskStatusChanged:
		task, found, err := r.fetchTask(ctx, ev.TaskID)
		if err != nil || !found {
			return skippedOrFailed(err)
		}
		if !task.HasResponsible(r.currentUserID) {
			return outcomeSkipped, nil
		}
		return r.sync(ctx, *task)

	case model.EventTaskResponsiblesAdded:
		if !containsUser(ev.AddedResponsibles, r.currentUserID) {
			return outcomeSkipped, nil
		}
		task, found, err := r.fetchTask(ctx, ev.TaskID)
		if err != nil || !found {
			return skippedOrFailed(err)
		}
		return r.sync(ctx, *task)

	case model.EventTaskResponsiblesRemoved:
		if !containsUser(ev.RemovedResponsibles, r.currentUserID) {
			return outcomeSkipped, nil
		}
		return r.remove(ctx, ev.TaskID)

	case model.EventTaskDeleted:
		return r.remove(ctx, ev.TaskID)

	default:
		return outcomeSkipped, nil
	}
}

// fetchTask reports found=false for a 404 or an empty envelope.
func (r *WebhookRouter) fetchTask(ctx context.Context, id string) (*model.WrikeTask, bool, error) {
	resp, err := r.source.GetTask(ctx, id)
	if errors.Is(err, ErrTaskNotFound) {
		r.log.Info("source task not found, skipping", slog.String("task_id", id))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if resp == nil || len(resp.Data) == 0 {
		r.log.Info("source task not found, skipping", slog.String("task_id", id))
		return nil, false, nil
	}
	return &resp.Data[0], true, nil
}

func (r *WebhookRouter) sync(ctx context.Context, task model.WrikeTask) (routeOutcome, error) {
	destID, err := r.dest.SyncTaskToDestination(ctx, task)
	if err != nil {
		return outcomeFailed, errors.Wrapf(err, "sync task %s", task.ID)
	}
	r.log.Debug("task synced", slog.String("task_id", task.ID), slog.String("destination_id", destID))
	return outcomeSynced, nil
}

func (r *WebhookRouter) remove(ctx context.Context, taskID string) (routeOutcome, error) {
	if err := r.dest.DeleteTaskFromDestination(ctx, taskID); err != nil {
		return outcomeFailed, errors.Wrapf(err, "delete task %s", taskID)
	}
	return outcomeDeleted, nil
}

func skippedOrFailed(err error) (routeOutcome, error) {
	if err != nil {
		return outcomeFailed, err
	}
	return outcomeSkipped, nil
}

func containsUser(ids []string, userID string) bool {
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}

// eventTypeLabel keeps metric cardinality bounded.
func eventTypeLabel(eventType string) string {
	switch eventType {
	case model.EventTaskStatusChanged, model.EventTaskResponsiblesAdded,
		model.EventTaskResponsiblesRemoved, model.EventTaskDeleted:
		return eventType
	default:
		return "other"
	}
}
