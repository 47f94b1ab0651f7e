package metrics

import (
	"io"

	"github.com/prometheus/common/expfmt"
)

// RecordElement counts an element of the given kind
func (r *Registry) RecordElement(kind string) {
	r.ElementsTotal.WithLabelValues(kind).Inc()
}

// RecordRelationship counts a relationship
func (r *Registry) RecordRelationship() {
	r.RelationshipsTotal.Inc()
}

// RecordHealthCheck counts a health check
func (r *Registry) RecordHealthCheck() {
	r.HealthChecksTotal.Inc()
}

// RecordOperation counts a modeling operation with its status
// ("success" or "rejected")
func (r *Registry) RecordOperation(operation, status string) {
	r.OperationsTotal.WithLabelValues(operation, status).Inc()
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
