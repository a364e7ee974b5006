package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorType classifies an AppError and decides the status wj exits with
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeStorage
	ErrorTypeInvalidInput
	ErrorTypeConfig
	ErrorTypeTimeout
)

// Process exit statuses; ExitFailure covers anything unclassified
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
	ExitStorage  = 4
	ExitConfig   = 5
)

var typeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeStorage:      "storage",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeConfig:       "config",
	ErrorTypeTimeout:      "timeout",
}

func (et ErrorType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "unknown"
}

// ExitCode maps the error type to a process exit status.
// Timeouts count as storage failures since every deadline wraps a journal read or write.
func (et ErrorType) ExitCode() int {
	switch et {
	case ErrorTypeValidation, ErrorTypeInvalidInput:
		return ExitUsage
	case ErrorTypeNotFound:
		return ExitNotFound
	case ErrorTypeStorage, ErrorTypeTimeout:
		return ExitStorage
	case ErrorTypeConfig:
		return ExitConfig
	default:
		return ExitFailure
	}
}

// AppError is a classified error with a stable code and optional detail fields
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.Type == other.Type && e.Code == other.Code
}

func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// GetContext looks up a detail field set by the constructor
func (e *AppError) GetContext(key string) (interface{}, bool) {
	value, ok := e.Context[key]
	return value, ok
}

// Fields renders the detail fields as key=value pairs sorted by key
func (e *AppError) Fields() string {
	if len(e.Context) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Context))
	for key := range e.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", key, e.Context[key])
	}
	return strings.Join(pairs, " ")
}
