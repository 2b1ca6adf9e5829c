// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RelayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total number of relay requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	RelayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "relay_request_duration_seconds",
			Help: "Duration of relay request processing in seconds",
		},
		[]string{"operation"},
	)

	ModelInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_invocations_total",
			Help: "Total number of model invocations by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	MockFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mock_fallbacks_total",
			Help: "Total number of generate requests served by the mock fallback",
		},
		[]string{"reason"},
	)
)
