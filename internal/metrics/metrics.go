// Package metrics defines the custom Prometheus metrics for the Jaguar
// Express client core. It is the single source of truth for metric
// names, labels, and help strings.
//
// Collectors are registered with the default Prometheus registry at
// package load via promauto; embedding applications expose them through
// their own /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jaguarexpress"

// APIRequestsTotal counts gateway round trips by route template, method
// and HTTP status ("0" when the transport failed before a response).
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of API gateway requests, by route, method and status.",
	},
	[]string{"route", "method", "status"},
)

// APIRequestDuration measures gateway round-trip latency per route.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of API gateway round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "method"},
)

// APIFailuresTotal counts gateway failures by mapped class.
// Label:
//   - class: "unauthorized", "server", "connectivity" or "rejected"
var APIFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_failures_total",
		Help:      "Total number of API gateway failures, by failure class.",
	},
	[]string{"class"},
)

// CartMutationsTotal counts cart store mutations.
// Label:
//   - action: "add", "remove", "update_quantity", "clear", "rejected"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by action.",
	},
	[]string{"action"},
)

// SessionEventsTotal counts session lifecycle events.
// Label:
//   - event: "login", "register", "logout", "rehydrated", "expired", "wiped"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)
