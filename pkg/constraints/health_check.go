package constraints

import (
	"fmt"

	"github.com/dd0wney/cluso-c4/pkg/model"
)

// HealthCheckConstraint warns about health checks whose timeout exceeds a
// non-zero polling interval.
type HealthCheckConstraint struct{}

func (c *HealthCheckConstraint) Name() string {
	return "HealthCheckTiming"
}

func (c *HealthCheckConstraint) Validate(m ModelReader) []Violation {
	var violations []Violation
	for _, e := range m.Elements() {
		ci, ok := e.(*model.ContainerInstance)
		if !ok {
			continue
		}
		for _, hc := range ci.HealthChecks() {
			if hc.Interval == 0 || hc.Timeout <= hc.Interval {
				continue
			}
			violations = append(violations, Violation{
				Type:       HealthCheckTiming,
				Severity:   Warning,
				ElementID:  ci.ID(),
				Constraint: c.Name(),
				Message: fmt.Sprintf("health check %q on %s: timeout %ds exceeds interval %ds",
					hc.Name, ci.CanonicalName(), hc.Timeout, hc.Interval),
			})
		}
	}
	return violations
}
