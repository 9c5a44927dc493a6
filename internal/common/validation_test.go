package common

import (
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("document_id", "", Required).
		Field("source_type", "WRONG", SourceType).
		Field("field_name", "full_name", Required)

	if !v.HasErrors() {
		t.Fatal("expected validation errors")
	}
	if len(v.Errors()) != 2 {
		t.Fatalf("errors = %d, want 2: %v", len(v.Errors()), v.Errors())
	}
	msg := v.ErrorMessage()
	if !strings.Contains(msg, "document_id") || !strings.Contains(msg, "source_type") {
		t.Errorf("message %q does not name the failing fields", msg)
	}
}

func TestValidatorPassesCleanInput(t *testing.T) {
	v := NewValidator().
		Field("document_id", "doc-1", Required).
		Field("source_type", "NATIONAL_ID", Required, SourceType)
	if v.HasErrors() {
		t.Errorf("unexpected errors: %v", v.Errors())
	}
	if err := ValidateAndReturnError(v); err != nil {
		t.Errorf("ValidateAndReturnError = %v, want nil", err)
	}
}

func TestValidateAndReturnErrorCode(t *testing.T) {
	v := NewValidator().Field("corrected_value", "  ", Required)
	err := ValidateAndReturnError(v)
	if err == nil {
		t.Fatal("expected an error")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Errorf("status = %v, want InvalidArgument", err)
	}
}

func TestUUIDRule(t *testing.T) {
	if err := UUID("id", "not-a-uuid"); err == nil {
		t.Error("garbage accepted as UUID")
	}
	if err := UUID("id", "7c9e6679-7425-40de-944b-e07fc1f90ae7"); err != nil {
		t.Errorf("valid UUID rejected: %v", err)
	}
}

func TestMaxLengthRule(t *testing.T) {
	if err := MaxLength("name", strings.Repeat("x", 11), 10); err == nil {
		t.Error("overlong value accepted")
	}
	if err := MaxLength("name", "short", 10); err != nil {
		t.Errorf("short value rejected: %v", err)
	}
}
