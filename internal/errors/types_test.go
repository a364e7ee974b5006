package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Config", ErrorTypeConfig, "config"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "title is required",
			},
			expected: "validation: title is required",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "save journal",
				Cause:   errors.New("disk full"),
			},
			expected: "storage: save journal (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.appError.Error(); result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_UnwrapAndIs(t *testing.T) {
	cause := errors.New("locked")
	err := NewStorageError("load journal", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
	if !errors.Is(err, &AppError{Type: ErrorTypeStorage, Code: "STORAGE_ERROR"}) {
		t.Errorf("errors.Is should match an AppError with the same type and code")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}) {
		t.Errorf("errors.Is should not match a different type")
	}
}

func TestErrorType_ExitCode(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  int
	}{
		{ErrorTypeValidation, ExitUsage},
		{ErrorTypeInvalidInput, ExitUsage},
		{ErrorTypeNotFound, ExitNotFound},
		{ErrorTypeStorage, ExitStorage},
		{ErrorTypeTimeout, ExitStorage},
		{ErrorTypeConfig, ExitConfig},
		{ErrorType(999), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.errorType.String(), func(t *testing.T) {
			if code := tt.errorType.ExitCode(); code != tt.expected {
				t.Errorf("ErrorType.ExitCode() = %v, want %v", code, tt.expected)
			}
		})
	}
}

func TestAppError_Context(t *testing.T) {
	bare := &AppError{Type: ErrorTypeInvalidInput}
	if _, ok := bare.GetContext("missing"); ok {
		t.Errorf("GetContext on nil context should report missing")
	}
	if fields := bare.Fields(); fields != "" {
		t.Errorf("Fields() = %q, want empty", fields)
	}

	err := NewNotFoundError("task", "abc123")
	value, ok := err.GetContext("identifier")
	if !ok || value != "abc123" {
		t.Errorf("GetContext() = %v, %v, want abc123, true", value, ok)
	}
	if fields := err.Fields(); fields != "identifier=abc123 resource=task" {
		t.Errorf("Fields() = %q, want sorted key=value pairs", fields)
	}
}
