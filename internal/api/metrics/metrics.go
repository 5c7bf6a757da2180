// Package metrics defines and registers all custom Prometheus metrics for
// the clothing supply client. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; consumers embedding the kit expose them however they serve
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clothing_client"

// RequestsTotal counts outbound API requests.
// Labels:
//   - endpoint: logical endpoint name (e.g. "clothings", "cart_items")
//   - method: HTTP method
//   - status: numeric HTTP status, or "error" when no response was received
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of outbound API requests, by endpoint, method and status.",
	},
	[]string{"endpoint", "method", "status"},
)

// RequestDuration measures outbound request latency end-to-end.
// Label:
//   - endpoint: logical endpoint name
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound API requests from send to decoded response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint"},
)

// UnauthorizedTotal counts 401 responses that forced a deauthentication.
var UnauthorizedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unauthorized_total",
		Help:      "Total number of 401 responses that cleared the local session.",
	},
)
