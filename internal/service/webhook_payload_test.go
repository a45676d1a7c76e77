package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

func TestParseWebhookPayloadSingleObject(t *testing.T) {
	body := `{"webhookId":"WH1","eventAuthorId":"KU1","eventType":"TaskResponsiblesAdded","taskId":"T1","addedResponsibles":["KU2"],"lastUpdatedDate":"2026-01-01T00:00:00Z"}`

	events, err := ParseWebhookPayload([]byte(body))

	require.NoError(t, err)
	assert.Equal(t, []model.WebhookEvent{{
		EventType:         model.EventTaskResponsiblesAdded,
		TaskID:            "T1",
		AddedResponsibles: []string{"KU2"},
	}}, events)
}

func TestParseWebhookPayloadArray(t *testing.T) {
	body := "\n [{\"eventType\":\"TaskDeleted\",\"taskId\":\"T1\"},{\"eventType\":\"TaskDeleted\",\"taskId\":\"T2\"}]"

	events, err := ParseWebhookPayload([]byte(body))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "T1", events[0].TaskID)
	assert.Equal(t, "T2", events[1].TaskID)
}

func TestParseWebhookPayloadEmptyArray(t *testing.T) {
	events, err := ParseWebhookPayload([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseWebhookPayloadMalformed(t *testing.T) {
	for _, body := range []string{``, `   `, `"TaskDeleted"`, `42`, `null`, `{"taskId":`, `[{"taskId":"T1"}`} {
		_, err := ParseWebhookPayload([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedPayload, "body %q", body)
	}
}

func TestParseWebhookPayloadKeepsValidSiblings(t *testing.T) {
	body := `[{"eventType":"TaskDeleted","taskId":"T1"},{"eventType":"TaskDeleted","taskId":123},"junk",2,{"eventType":"TaskDeleted","taskId":"T4"}]`

	events, err := ParseWebhookPayload([]byte(body))

	require.NoError(t, err)
	require.Len(t, events, 5)
	assert.Equal(t, model.WebhookEvent{EventType: model.EventTaskDeleted, TaskID: "T1"}, events[0])
	assert.Equal(t, model.WebhookEvent{}, events[1])
	assert.Equal(t, model.WebhookEvent{}, events[2])
	assert.Equal(t, model.WebhookEvent{}, events[3])
	assert.Equal(t, model.WebhookEvent{EventType: model.EventTaskDeleted, TaskID: "T4"}, events[4])
}

func TestMixedBatchRoutesValidEvents(t *testing.T) {
	events, err := ParseWebhookPayload([]byte(`[{"eventType":"TaskDeleted","taskId":"T1"},{"eventType":"TaskDeleted","taskId":123}]`))
	require.NoError(t, err)

	dest := &mockDestination{}
	dest.On("DeleteTaskFromDestination", mock.Anything, "T1").Return(nil).Once()
	router := NewWebhookRouter(&mockSource{}, dest, "KU1", discardLogger())

	report := router.HandleEvents(context.Background(), events)

	assert.Equal(t, 2, report.Received)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, 1, report.Skipped)
	dest.AssertExpectations(t)
}
