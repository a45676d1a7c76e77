package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetTask(ctx context.Context, id string) (*model.WrikeTaskResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*model.WrikeTaskResponse)
	return resp, args.Error(1)
}

type mockDestination struct {
	mock.Mock
}

func (m *mockDestination) SyncTaskToDestination(ctx context.Context, task model.WrikeTask) (string, error) {
	args := m.Called(ctx, task)
	return args.String(0), args.Error(1)
}

func (m *mockDestination) DeleteTaskFromDestination(ctx context.Context, sourceTaskID string) error {
	args := m.Called(ctx, sourceTaskID)
	return args.Error(0)
}

type mockClickUpWriter struct {
	mock.Mock
}

func (m *mockClickUpWriter) CreateTask(ctx context.Context, listID string, req model.ClickUpTaskRequest) (*model.ClickUpTask, error) {
	args := m.Called(ctx, listID, req)
	task, _ := args.Get(0).(*model.ClickUpTask)
	return task, args.Error(1)
}

func (m *mockClickUpWriter) UpdateTask(ctx context.Context, taskID string, req model.ClickUpTaskRequest) (*model.ClickUpTask, error) {
	args := m.Called(ctx, taskID, req)
	task, _ := args.Get(0).(*model.ClickUpTask)
	return task, args.Error(1)
}

func (m *mockClickUpWriter) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type mockLinkStore struct {
	mock.Mock
}

func (m *mockLinkStore) GetTaskLink(ctx context.Context, wrikeID string) (*model.TaskLink, error) {
	args := m.Called(ctx, wrikeID)
	link, _ := args.Get(0).(*model.TaskLink)
	return link, args.Error(1)
}

func (m *mockLinkStore) SaveTaskLink(ctx context.Context, wrikeID, clickupID string) error {
	return m.Called(ctx, wrikeID, clickupID).Error(0)
}

func (m *mockLinkStore) DeleteTaskLink(ctx context.Context, wrikeID string) error {
	return m.Called(ctx, wrikeID).Error(0)
}
