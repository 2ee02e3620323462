// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansCreated counts allocation plans generated since startup
	PlansCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundplan_plans_created_total",
			Help: "Total number of allocation plans created",
		},
	)

	// PlansDeleted counts plans removed explicitly by clients
	PlansDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundplan_plans_deleted_total",
			Help: "Total number of allocation plans deleted by clients",
		},
	)

	// PlansExpired counts plans evicted by the TTL cleanup job
	PlansExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundplan_plans_expired_total",
			Help: "Total number of allocation plans expired by cleanup",
		},
	)

	// PlansActive tracks the number of plans currently held in memory
	PlansActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fundplan_plans_active",
			Help: "Number of allocation plans currently stored",
		},
	)

	// PlanBuildDuration observes how long plan generation takes
	PlanBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "fundplan_plan_build_duration_seconds",
			Help: "Duration of allocation plan generation in seconds",
		},
	)

	// ValidationFailures counts plan requests rejected by profile validation
	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundplan_validation_failures_total",
			Help: "Total number of plan requests rejected by profile validation",
		},
	)

	// ShareCodesIssued counts share codes encoded for clients
	ShareCodesIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundplan_share_codes_issued_total",
			Help: "Total number of plan share codes issued",
		},
	)

	// ShareCodesResolved counts share codes successfully decoded
	ShareCodesResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundplan_share_codes_resolved_total",
			Help: "Total number of plan share codes resolved into plans",
		},
	)

	// RebalanceAnalyses counts drift analyses performed
	RebalanceAnalyses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundplan_rebalance_analyses_total",
			Help: "Total number of portfolio rebalance analyses",
		},
	)

	// ToolLaunches counts external tool launches by tool name
	ToolLaunches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundplan_tool_launches_total",
			Help: "Total number of external tool launches",
		},
		[]string{"tool"},
	)

	// HTTPRequests counts handled HTTP requests
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundplan_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "status"},
	)

	// HTTPDuration observes request handling latency
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fundplan_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method"},
	)
)
