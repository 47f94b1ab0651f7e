package constraints

import (
	"fmt"

	"github.com/dd0wney/cluso-c4/pkg/model"
)

// RequiredTagsConstraint reports elements whose tag list lacks one of the
// tags required by their kind. A correctly built model never violates it;
// it guards Element implementations from outside this module.
type RequiredTagsConstraint struct{}

func (c *RequiredTagsConstraint) Name() string {
	return "RequiredTags"
}

func (c *RequiredTagsConstraint) Validate(m ModelReader) []Violation {
	var violations []Violation
	for _, e := range m.Elements() {
		for _, tag := range model.RequiredTags(e.Kind()) {
			if e.HasTag(tag) {
				continue
			}
			violations = append(violations, Violation{
				Type:       MissingRequiredTag,
				Severity:   Error,
				ElementID:  e.ID(),
				Constraint: c.Name(),
				Message:    fmt.Sprintf("%s %s is missing required tag %q", e.Kind(), e.CanonicalName(), tag),
			})
		}
	}
	return violations
}
