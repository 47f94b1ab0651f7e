package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initModelMetrics() {
	r.ElementsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: "model",
			Name:      "elements_total",
			Help:      "Total number of elements added to the model",
		},
		[]string{"kind"},
	)

	r.RelationshipsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: "model",
			Name:      "relationships_total",
			Help:      "Total number of relationships added to the model",
		},
	)

	r.HealthChecksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: "model",
			Name:      "health_checks_total",
			Help:      "Total number of health checks added to container instances",
		},
	)

	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: "model",
			Name:      "operations_total",
			Help:      "Total number of modeling operations by outcome",
		},
		[]string{"operation", "status"},
	)
}
