package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "productivity"

var (
	// WebhookEvents counts router decisions per event type and outcome.
	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Wrike webhook events by type and routing outcome.",
	}, []string{"event_type", "outcome"})

	// ThirdPartyRequests counts outbound API calls by service and HTTP status.
	ThirdPartyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "third_party_requests_total",
		Help:      "Outbound requests to ClickUp, Wrike and Grocy by status code.",
	}, []string{"service", "status"})
)
