package validation

import (
	"errors"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		hcName   string
		url      string
		interval int
		timeout  int
		wantMsg  string
	}{
		{
			name:     "valid with defaults",
			hcName:   "Test web application is working",
			url:      "http://localhost:8080",
			interval: 60,
		},
		{
			name:     "zero interval and timeout",
			hcName:   "Name",
			url:      "https://localhost",
			interval: 0,
			timeout:  0,
		},
		{name: "empty name", hcName: "", url: "http://localhost", wantMsg: MsgNameRequired},
		{name: "blank name", hcName: " ", url: "http://localhost", wantMsg: MsgNameRequired},
		{name: "empty url", hcName: "Name", url: "", wantMsg: MsgURLRequired},
		{name: "blank url", hcName: "Name", url: " ", wantMsg: MsgURLRequired},
		{name: "url without scheme", hcName: "Name", url: "localhost", wantMsg: "localhost is not a valid URL."},
		{name: "negative interval", hcName: "Name", url: "https://localhost", interval: -1, wantMsg: MsgIntervalInvalid},
		{name: "negative timeout", hcName: "Name", url: "https://localhost", interval: 60, timeout: -1, wantMsg: MsgTimeoutInvalid},
		{name: "name checked before url", hcName: "", url: "localhost", interval: -1, wantMsg: MsgNameRequired},
		{name: "url checked before interval", hcName: "Name", url: "localhost", interval: -1, timeout: -1, wantMsg: "localhost is not a valid URL."},
		{name: "interval checked before timeout", hcName: "Name", url: "http://localhost", interval: -1, timeout: -1, wantMsg: MsgIntervalInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HealthCheck(tt.hcName, tt.url, tt.interval, tt.timeout)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("HealthCheck() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("HealthCheck() expected error %q, got nil", tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("HealthCheck() error = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !IsValidation(err) {
				t.Errorf("HealthCheck() error should be a validation error")
			}
		})
	}
}

func TestName(t *testing.T) {
	if err := Name("software system", "System"); err != nil {
		t.Errorf("Name() unexpected error: %v", err)
	}

	err := Name("software system", "  ")
	if err == nil {
		t.Fatal("Name() expected error for blank name")
	}
	if err.Error() != "A software system name must be specified." {
		t.Errorf("Name() error = %q", err.Error())
	}
}

func TestErrorIs(t *testing.T) {
	err := New("destination", MsgDestinationRequired)

	if !errors.Is(err, ErrInvalid) {
		t.Error("expected errors.Is(err, ErrInvalid)")
	}
	if !errors.Is(err, New("other", MsgDestinationRequired)) {
		t.Error("expected errors with the same message to match")
	}
	if errors.Is(err, New("name", MsgNameRequired)) {
		t.Error("expected errors with different messages not to match")
	}

	wrapped := errors.Join(errors.New("context"), err)
	if !IsValidation(wrapped) {
		t.Error("expected wrapped validation error to be detected")
	}

	var ve *Error
	if !errors.As(wrapped, &ve) || ve.Field != "destination" {
		t.Errorf("errors.As() field = %v, want destination", ve)
	}
}
