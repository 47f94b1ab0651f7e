package constraints

import (
	"time"
)

// ValidationResult contains the results of validating a model against constraints
type ValidationResult struct {
	Valid      bool        // True if no error-severity violations were found
	Violations []Violation // List of all violations
	CheckedAt  time.Time   // When validation was performed
}

// GetViolationsBySeverity returns violations filtered by severity level
func (vr *ValidationResult) GetViolationsBySeverity(severity Severity) []Violation {
	filtered := make([]Violation, 0)
	for _, v := range vr.Violations {
		if v.Severity == severity {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// GetViolationsByType returns violations filtered by type
func (vr *ValidationResult) GetViolationsByType(violationType ViolationType) []Violation {
	filtered := make([]Violation, 0)
	for _, v := range vr.Violations {
		if v.Type == violationType {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Validator manages a set of constraints and validates models against them
type Validator struct {
	constraints []Constraint
}

// NewValidator creates a new empty validator
func NewValidator() *Validator {
	return &Validator{
		constraints: make([]Constraint, 0),
	}
}

// NewDefaultValidator creates a validator with every built-in constraint.
func NewDefaultValidator() *Validator {
	v := NewValidator()
	v.AddConstraints([]Constraint{
		&ContainerBindingConstraint{},
		&RequiredTagsConstraint{},
		&HealthCheckConstraint{},
	})
	return v
}

// AddConstraint adds a constraint to the validator
func (v *Validator) AddConstraint(constraint Constraint) {
	v.constraints = append(v.constraints, constraint)
}

// AddConstraints adds multiple constraints to the validator
func (v *Validator) AddConstraints(constraints []Constraint) {
	v.constraints = append(v.constraints, constraints...)
}

// Validate runs all constraints against the model and returns the results
func (v *Validator) Validate(m ModelReader) *ValidationResult {
	result := &ValidationResult{
		Valid:      true,
		Violations: make([]Violation, 0),
		CheckedAt:  time.Now(),
	}

	for _, constraint := range v.constraints {
		for _, violation := range constraint.Validate(m) {
			if violation.Severity == Error {
				result.Valid = false
			}
			result.Violations = append(result.Violations, violation)
		}
	}

	return result
}

// GetConstraints returns all constraints in the validator
func (v *Validator) GetConstraints() []Constraint {
	return v.constraints
}
