package constraints

import (
	"github.com/dd0wney/cluso-c4/pkg/model"
)

// ModelReader defines the read-only operations needed for constraint validation.
// *model.Model satisfies it.
type ModelReader interface {
	Elements() []model.Element
	ElementByID(id string) model.Element
}

// Severity indicates the importance of a violation
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// ViolationType categorizes the type of constraint violation
type ViolationType int

const (
	UnresolvedBinding ViolationType = iota
	BindingMismatch
	MissingRequiredTag
	HealthCheckTiming
)

func (vt ViolationType) String() string {
	switch vt {
	case UnresolvedBinding:
		return "UnresolvedBinding"
	case BindingMismatch:
		return "BindingMismatch"
	case MissingRequiredTag:
		return "MissingRequiredTag"
	case HealthCheckTiming:
		return "HealthCheckTiming"
	default:
		return "Unknown"
	}
}

// Violation represents a constraint violation
type Violation struct {
	Type       ViolationType
	Severity   Severity
	ElementID  string
	Constraint string
	Message    string
}

// Constraint is the interface that all constraint types must implement.
type Constraint interface {
	// Validate checks the constraint against the model and returns the
	// violations found (empty if valid)
	Validate(m ModelReader) []Violation

	// Name returns a human-readable name for the constraint
	Name() string
}
