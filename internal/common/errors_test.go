package common

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", ErrNotFound, codes.NotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), codes.NotFound},
		{"validation", ErrValidation, codes.InvalidArgument},
		{"invalid input", ErrInvalidInput, codes.InvalidArgument},
		{"unauthorized", ErrUnauthorized, codes.PermissionDenied},
		{"extraction timeout", ErrExtractionTimeout, codes.DeadlineExceeded},
		{"app error cause", NewAppError("NOT_FOUND", "no such row", ErrNotFound), codes.NotFound},
		{"unknown", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GRPCCodeFromError(tt.err); got != tt.want {
				t.Errorf("GRPCCodeFromError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGRPCStatusFromError(t *testing.T) {
	if err := GRPCStatusFromError(nil); err != nil {
		t.Fatalf("GRPCStatusFromError(nil) = %v, want nil", err)
	}

	err := GRPCStatusFromError(fmt.Errorf("fetching row: %w", ErrNotFound))
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("GRPCStatusFromError returned a non-status error: %v", err)
	}
	if st.Code() != codes.NotFound {
		t.Errorf("code = %v, want %v", st.Code(), codes.NotFound)
	}
	if st.Message() == "" {
		t.Error("status message is empty")
	}
}
