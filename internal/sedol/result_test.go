package sedol_test

import (
	"testing"

	"github.com/epeers/sedolchecker/internal/sedol"
)

func TestNewValidationResult(t *testing.T) {
	result := sedol.NewValidationResult("9123458", true, true, "details")

	if result.InputString() != "9123458" {
		t.Errorf("expected input '9123458', got %q", result.InputString())
	}
	if !result.IsValidSedol() {
		t.Error("expected IsValidSedol to be true")
	}
	if !result.IsUserDefined() {
		t.Error("expected IsUserDefined to be true")
	}
	if result.ValidationDetails() != "details" {
		t.Errorf("expected details 'details', got %q", result.ValidationDetails())
	}
}

func TestValidationResult_ZeroValue(t *testing.T) {
	var result sedol.ValidationResult

	if result.InputString() != "" || result.IsValidSedol() || result.IsUserDefined() || result.ValidationDetails() != "" {
		t.Errorf("expected zero-value result to be empty, got %+v", result)
	}
}
