package service

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

// ErrMalformedPayload is returned for bodies that are neither a JSON object
// nor a JSON array of objects.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// ParseWebhookPayload normalizes a Wrike delivery, which may be a single
// event or an array of events, into a slice. Array elements are decoded one
// by one so a bad element does not cost its siblings.
func ParseWebhookPayload(body []byte) ([]model.WebhookEvent, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.Wrap(ErrMalformedPayload, "empty body")
	}

	switch trimmed[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, errors.Wrap(ErrMalformedPayload, err.Error())
		}
		events := make([]model.WebhookEvent, len(raw))
		for i, item := range raw {
			// An undecodable element stays a zero event, which the router
			// skips for its missing task id.
			var event model.WebhookEvent
			if err := json.Unmarshal(item, &event); err == nil {
				events[i] = event
			}
		}
		return events, nil
	case '{':
		var event model.WebhookEvent
		if err := json.Unmarshal(trimmed, &event); err != nil {
			return nil, errors.Wrap(ErrMalformedPayload, err.Error())
		}
		return []model.WebhookEvent{event}, nil
	default:
		return nil, errors.Wrap(ErrMalformedPayload, "expected object or array")
	}
}
