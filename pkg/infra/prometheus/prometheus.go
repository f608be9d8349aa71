package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "maskflow_requests_total",
			Help: "Total number of API requests processed",
		},
		[]string{"method", "route", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maskflow_request_latency_ms",
			Help:    "API request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "route"},
	)

	CollaboratorRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "maskflow_protecto_requests_total",
			Help: "Calls made to the Protecto service by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	CollaboratorLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maskflow_protecto_latency_ms",
			Help:    "Protecto call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"operation"},
	)

	WorkflowActionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "maskflow_workflow_actions_total",
			Help: "Mutating workflow actions by workflow, action and outcome",
		},
		[]string{"workflow", "action", "outcome"},
	)
)

type MetricsConfig struct {
	EnableLatency             bool
	EnableCollaboratorMetrics bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency:             true,
		EnableCollaboratorMetrics: true,
	}
}

var Config = DefaultMetricsConfig()

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
