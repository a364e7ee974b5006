package cli

import (
	stderrors "errors"
	"fmt"

	"work-journal/internal/config"
	"work-journal/internal/errors"
	"work-journal/internal/logging"
	"work-journal/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// commandError shows the user-facing message and keeps the cause for ExitCode
type commandError struct {
	message string
	cause   error
}

func (e *commandError) Error() string { return e.message }

func (e *commandError) Unwrap() error { return e.cause }

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	eh.logDetails(err)

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return &commandError{
			message: fmt.Sprintf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage()),
			cause:   err,
		}
	}

	if _, ok := errors.AsAppError(err); ok {
		return &commandError{
			message: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)),
			cause:   err,
		}
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// NotFound reports an id that matched no task
func (eh *ErrorHandler) NotFound(operation, id string) error {
	return eh.Handle(operation, errors.NewNotFoundError("task", id))
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error came from the storage layer
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// ExitCode picks the process exit status for an error returned by Execute
func (eh *ErrorHandler) ExitCode(err error) int {
	var configErr *config.ConfigError

	switch {
	case err == nil:
		return errors.ExitOK
	case eh.IsValidationError(err):
		return errors.ExitUsage
	case eh.IsNotFoundError(err):
		return errors.ExitNotFound
	case eh.IsStorageError(err):
		return errors.ExitStorage
	case stderrors.As(err, &configErr):
		return errors.ExitConfig
	}

	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Type.ExitCode()
	}
	return errors.ExitFailure
}

// logDetails writes the underlying cause of unexpected errors to the debug log
func (eh *ErrorHandler) logDetails(err error) {
	if !errors.ShouldLogError(err) {
		return
	}
	if appErr, ok := errors.AsAppError(err); ok && appErr.Fields() != "" {
		logging.Debugf("error [%s] %s: %v\n", appErr.Code, appErr.Fields(), err)
		return
	}
	logging.Debugf("error [%s]: %v\n", errors.GetErrorCode(err), err)
}
