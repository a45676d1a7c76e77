package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/metrics"
)

// ErrTaskNotFound is returned when a source or destination task no longer exists.
var ErrTaskNotFound = errors.New("task not found")

// APIError is a non-2xx answer from a third-party API.
type APIError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api error %d: %s", e.Service, e.StatusCode, e.Body)
}

// IsNotFound reports whether err carries a 404 from a third-party API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type HTTPConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// NewRetryableClient builds the client shared by every third-party service.
// Retries happen on connection errors, 429 and 5xx with a fixed delay.
// POST is never retried.
func NewRetryableClient(cfg HTTPConfig, logger *slog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	client.RetryMax = cfg.MaxRetries
	client.CheckRetry = checkRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	delay := cfg.RetryDelay
	client.Backoff = func(_, _ time.Duration, _ int, _ *http.Response) time.Duration {
		return delay
	}
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}
	return client
}

type noRetryKey struct{}

// checkRetry is the default policy except for requests marked with
// noRetryKey: a create that timed out or answered 5xx may still have
// happened upstream.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Value(noRetryKey{}) != nil {
		return false, ctx.Err()
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// apiClient does JSON calls against one third-party base URL.
type apiClient struct {
	service string
	baseURL string
	client  *retryablehttp.Client
	auth    func(req *retryablehttp.Request)
}

func newAPIClient(service, baseURL string, client *retryablehttp.Client, auth func(req *retryablehttp.Request)) *apiClient {
	return &apiClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		auth:    auth,
	}
}

// doRequest sends body as JSON (when non-nil) and decodes the answer into out
// (when non-nil).
func (c *apiClient) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: encode request", c.service)
		}
		payload = bytes.NewReader(b)
	}

	if method == http.MethodPost {
		ctx = context.WithValue(ctx, noRetryKey{}, true)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", c.service)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		c.auth(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ThirdPartyRequests.WithLabelValues(c.service, "error").Inc()
		return errors.Wrapf(err, "%s: %s %s", c.service, method, path)
	}
	defer resp.Body.Close()

	metrics.ThirdPartyRequests.WithLabelValues(c.service, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s: read response", c.service)
	}
	if resp.StatusCode >= 400 {
		return &APIError{Service: c.service, StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "%s: decode response", c.service)
	}
	return nil
}
