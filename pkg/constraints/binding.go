package constraints

import (
	"fmt"

	"github.com/dd0wney/cluso-c4/pkg/model"
)

// ContainerBindingConstraint reports container instances whose backing
// container cannot be resolved, or whose reference and identifier point at
// different containers.
type ContainerBindingConstraint struct{}

func (c *ContainerBindingConstraint) Name() string {
	return "ContainerBinding"
}

func (c *ContainerBindingConstraint) Validate(m ModelReader) []Violation {
	var violations []Violation
	for _, e := range m.Elements() {
		ci, ok := e.(*model.ContainerInstance)
		if !ok {
			continue
		}

		ref := ci.Container()
		byID, _ := m.ElementByID(ci.ContainerID()).(*model.Container)

		switch {
		case ref == nil && byID == nil:
			violations = append(violations, Violation{
				Type:       UnresolvedBinding,
				Severity:   Error,
				ElementID:  ci.ID(),
				Constraint: c.Name(),
				Message:    fmt.Sprintf("container instance %s: container %q cannot be resolved", ci.ID(), ci.ContainerID()),
			})
		case ref != nil && byID != nil && ref != byID:
			violations = append(violations, Violation{
				Type:       BindingMismatch,
				Severity:   Warning,
				ElementID:  ci.ID(),
				Constraint: c.Name(),
				Message: fmt.Sprintf("container instance %s: reference %s and identifier %s name different containers",
					ci.ID(), ref.CanonicalName(), byID.CanonicalName()),
			})
		}
	}
	return violations
}
