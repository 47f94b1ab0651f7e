package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "c4"

// Registry holds all metrics for a model
type Registry struct {
	// Model Metrics
	ElementsTotal      *prometheus.CounterVec
	RelationshipsTotal prometheus.Counter
	HealthChecksTotal  prometheus.Counter
	OperationsTotal    *prometheus.CounterVec

	namespace string
	registry  *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry using DefaultNamespace.
func NewRegistry() *Registry {
	return NewRegistryWithNamespace(DefaultNamespace)
}

// NewRegistryWithNamespace creates a registry whose metric names start with
// namespace.
func NewRegistryWithNamespace(namespace string) *Registry {
	r := &Registry{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
	}
	r.initModelMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
