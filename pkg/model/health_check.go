package model

import (
	"github.com/dd0wney/cluso-c4/pkg/validation"
)

// HealthCheck is an HTTP liveness probe definition. Interval and Timeout are
// in seconds.
type HealthCheck struct {
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url"`
	Interval int    `json:"interval" yaml:"interval"`
	Timeout  int    `json:"timeout" yaml:"timeout"`
}

// HealthCheckOption overrides a health check default.
type HealthCheckOption func(*HealthCheck)

// WithInterval sets the polling interval in seconds (default 60).
func WithInterval(seconds int) HealthCheckOption {
	return func(hc *HealthCheck) { hc.Interval = seconds }
}

// WithTimeout sets the timeout in seconds (default 0).
func WithTimeout(seconds int) HealthCheckOption {
	return func(hc *HealthCheck) { hc.Timeout = seconds }
}

func newHealthCheck(name, url string, opts ...HealthCheckOption) (HealthCheck, error) {
	hc := HealthCheck{
		Name:     name,
		URL:      url,
		Interval: validation.DefaultHealthCheckInterval,
		Timeout:  validation.DefaultHealthCheckTimeout,
	}
	for _, opt := range opts {
		opt(&hc)
	}
	if err := validation.HealthCheck(hc.Name, hc.URL, hc.Interval, hc.Timeout); err != nil {
		return HealthCheck{}, err
	}
	return hc, nil
}
