package validation

import (
	"strings"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Name", "")

	if !cv.HasErrors() {
		t.Error("Expected error for empty required field")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.Required("Name", "value")

	if cv2.HasErrors() {
		t.Error("Expected no error for non-empty required field")
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	cv := NewConfigValidator("ModelConfig")
	cv.OneOf("IDStrategy", "random", []string{"sequential", "uuid"})

	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected error for value outside allowed set")
	}
	if !strings.Contains(err.Error(), "ModelConfig.IDStrategy") {
		t.Errorf("Error should name the field, got %q", err.Error())
	}

	cv2 := NewConfigValidator("ModelConfig")
	cv2.OneOf("IDStrategy", "uuid", []string{"sequential", "uuid"})
	if cv2.Validate() != nil {
		t.Error("Expected no error for allowed value")
	}
}

func TestConfigValidator_Pattern(t *testing.T) {
	cv := NewConfigValidator("MetricsConfig")
	cv.Pattern("Namespace", "c4 model", "alphanum")
	if !cv.HasErrors() {
		t.Error("Expected error for namespace with a space")
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.Required("Skipped", "")
	})
	if cv.HasErrors() {
		t.Error("Expected validations to be skipped when condition is false")
	}

	cv.When(true, func(v *ConfigValidator) {
		v.Required("Applied", "")
	})
	if !cv.HasErrors() {
		t.Error("Expected validations to run when condition is true")
	}
}

func TestConfigValidator_MultipleErrors(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("A", "").Required("B", "")

	if len(cv.Errors()) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(cv.Errors()))
	}
	err := cv.Validate()
	if err == nil || !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("Validate() = %v, want combined error", err)
	}
}
