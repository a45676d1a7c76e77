package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

// maxListPages bounds pagination in case ClickUp never reports last_page.
const maxListPages = 50

// ClickUpService talks to the ClickUp v2 API. It is both the read path for
// task lists and the write side of the Wrike mirror.
type ClickUpService struct {
	api *apiClient
}

// NewClickUpService creates a new service instance.
func NewClickUpService(baseURL, token string, client *retryablehttp.Client) *ClickUpService {
	return &ClickUpService{
		api: newAPIClient("clickup", baseURL, client, func(req *retryablehttp.Request) {
			// ClickUp personal tokens go in the header without a scheme.
			req.Header.Set("Authorization", token)
		}),
	}
}

// GetListTasks fetches every task of a list, subtasks and closed tasks included.
func (s *ClickUpService) GetListTasks(ctx context.Context, listID string) ([]model.ClickUpTask, error) {
	if strings.TrimSpace(listID) == "" {
		return nil, errors.New("clickup list id not configured")
	}

	var tasks []model.ClickUpTask
	for page := 0; page < maxListPages; page++ {
		q := url.Values{}
		q.Set("page", fmt.Sprint(page))
		q.Set("subtasks", "true")
		q.Set("include_closed", "true")

		var out model.ClickUpTasksPage
		path := fmt.Sprintf("/list/%s/task?%s", url.PathEscape(listID), q.Encode())
		if err := s.api.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
			return nil, errors.Wrapf(err, "list %s page %d", listID, page)
		}
		tasks = append(tasks, out.Tasks...)
		if out.LastPage || len(out.Tasks) == 0 {
			break
		}
	}
	return tasks, nil
}

func (s *ClickUpService) CreateTask(ctx context.Context, listID string, req model.ClickUpTaskRequest) (*model.ClickUpTask, error) {
	var out model.ClickUpTask
	path := fmt.Sprintf("/list/%s/task", url.PathEscape(listID))
	if err := s.api.doRequest(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, errors.Wrap(err, "create clickup task")
	}
	return &out, nil
}

// UpdateTask returns ErrTaskNotFound when the task was removed in ClickUp.
func (s *ClickUpService) UpdateTask(ctx context.Context, taskID string, req model.ClickUpTaskRequest) (*model.ClickUpTask, error) {
	var out model.ClickUpTask
	path := fmt.Sprintf("/task/%s", url.PathEscape(taskID))
	if err := s.api.doRequest(ctx, http.MethodPut, path, req, &out); err != nil {
		if IsNotFound(err) {
			return nil, errors.Wrapf(ErrTaskNotFound, "clickup task %s", taskID)
		}
		return nil, errors.Wrapf(err, "update clickup task %s", taskID)
	}
	return &out, nil
}

// DeleteTask treats an already deleted task as success.
func (s *ClickUpService) DeleteTask(ctx context.Context, taskID string) error {
	path := fmt.Sprintf("/task/%s", url.PathEscape(taskID))
	if err := s.api.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		if IsNotFound(err) {
			return nil
		}
		return errors.Wrapf(err, "delete clickup task %s", taskID)
	}
	return nil
}
