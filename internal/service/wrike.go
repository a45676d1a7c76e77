package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

// WrikeService is the webhook source: it resolves the integration account
// and fetches task details for incoming events.
type WrikeService struct {
	api *apiClient
}

func NewWrikeService(baseURL, token string, client *retryablehttp.Client) *WrikeService {
	return &WrikeService{
		api: newAPIClient("wrike", baseURL, client, func(req *retryablehttp.Request) {
			req.Header.Set("Authorization", "bearer "+token)
		}),
	}
}

// GetCurrentUserID returns the contact id of the token's owner.
func (s *WrikeService) GetCurrentUserID(ctx context.Context) (string, error) {
	var out model.WrikeContactsResponse
	if err := s.api.doRequest(ctx, http.MethodGet, "/contacts?me=true", nil, &out); err != nil {
		return "", errors.Wrap(err, "fetch wrike current user")
	}
	if len(out.Data) == 0 || out.Data[0].ID == "" {
		return "", errors.New("wrike returned no current user")
	}
	return out.Data[0].ID, nil
}

// GetTask returns the list-shaped envelope Wrike answers with. A 404 is
// reported as ErrTaskNotFound; callers treat an empty Data the same way.
func (s *WrikeService) GetTask(ctx context.Context, id string) (*model.WrikeTaskResponse, error) {
	var out model.WrikeTaskResponse
	path := fmt.Sprintf("/tasks/%s", url.PathEscape(id))
	if err := s.api.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, errors.Wrapf(ErrTaskNotFound, "wrike task %s", id)
		}
		return nil, errors.Wrapf(err, "fetch wrike task %s", id)
	}
	return &out, nil
}
