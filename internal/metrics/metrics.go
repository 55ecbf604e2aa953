package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	FlowTransitions      *prometheus.CounterVec
	RegistrantsSubmitted prometheus.Counter
	FlowsCompleted       prometheus.Counter
	ExportsGenerated     prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
}

// New registers the service metrics on reg. Tests pass a fresh registry so
// repeated construction never collides.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FlowTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "campreg_flow_transitions_total",
			Help: "Flow state machine transitions by event",
		}, []string{"event"}),

		RegistrantsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "campreg_registrants_submitted_total",
			Help: "Registrants accepted and forwarded to the backend",
		}),

		FlowsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "campreg_flows_completed_total",
			Help: "Flows that submitted every paid-for registrant",
		}),

		ExportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "campreg_admin_exports_total",
			Help: "Spreadsheet exports generated from the admin view",
		}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campreg_request_duration_seconds",
			Help:    "HTTP request duration by method, route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
