package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// DefaultHealthCheckInterval is the polling interval, in seconds, used when
	// none is given.
	DefaultHealthCheckInterval = 60
	// DefaultHealthCheckTimeout is the timeout, in seconds, used when none is given.
	DefaultHealthCheckTimeout = 0
)

func init() {
	validate = validator.New()
}

// HealthCheck validates the arguments of a health check definition.
// Checks run in a fixed order (name, url presence, url validity, interval,
// timeout) and only the first failure is reported.
func HealthCheck(name, url string, interval, timeout int) error {
	if validate.Var(strings.TrimSpace(name), "required") != nil {
		return New("name", MsgNameRequired)
	}
	if validate.Var(strings.TrimSpace(url), "required") != nil {
		return New("url", MsgURLRequired)
	}
	if validate.Var(url, "url") != nil {
		return New("url", InvalidURL(url))
	}
	if validate.Var(interval, "min=0") != nil {
		return New("interval", MsgIntervalInvalid)
	}
	if validate.Var(timeout, "min=0") != nil {
		return New("timeout", MsgTimeoutInvalid)
	}
	return nil
}

// Name validates that an element name is present.
func Name(kind, name string) error {
	if validate.Var(strings.TrimSpace(name), "required") != nil {
		return New("name", fmt.Sprintf("A %s name must be specified.", kind))
	}
	return nil
}
