package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents a unique error code for categorizing errors
type ErrorCode string

const (
	// Remote/transport errors (1xxx)
	ErrCodeConnectionFailed     ErrorCode = "SSYN1001"
	ErrCodeAuthenticationFailed ErrorCode = "SSYN1002"
	ErrCodeNetworkUnavailable   ErrorCode = "SSYN1003"
	ErrCodeRemoteRejected       ErrorCode = "SSYN1004"

	// Configuration errors (2xxx)
	ErrCodeConfigNotFound ErrorCode = "SSYN2001"
	ErrCodeConfigInvalid  ErrorCode = "SSYN2002"
	ErrCodeConfigMissing  ErrorCode = "SSYN2003"

	// Attribute resolution errors (3xxx)
	ErrCodeAttributeNotFound  ErrorCode = "SSYN3001"
	ErrCodeAttributeConflict  ErrorCode = "SSYN3002"
	ErrCodeAssignmentFailed   ErrorCode = "SSYN3003"

	// Validation errors (6xxx)
	ErrCodeValidationFailed ErrorCode = "SSYN6001"
	ErrCodeDuplicateKey     ErrorCode = "SSYN6002"
	ErrCodeRequiredField    ErrorCode = "SSYN6003"
	ErrCodePolicyBlocked    ErrorCode = "SSYN6004"

	// Stage errors (8xxx)
	ErrCodeStageFailed    ErrorCode = "SSYN8001"
	ErrCodeStageAggregate ErrorCode = "SSYN8002"

	// System errors (9xxx)
	ErrCodeInternal ErrorCode = "SSYN9001"
	ErrCodeUnknown  ErrorCode = "SSYN9999"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "CRITICAL"
	SeverityError    ErrorSeverity = "ERROR"
	SeverityWarning  ErrorSeverity = "WARNING"
	SeverityInfo     ErrorSeverity = "INFO"
)

// AppError represents a structured application error with context
type AppError struct {
	Code        ErrorCode
	Message     string
	Severity    ErrorSeverity
	Context     map[string]interface{}
	Cause       error
	Timestamp   time.Time
	Suggestions []string
}

// Error implements the error interface
func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s: %s", e.Code, e.Severity, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\nCaused by: %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return b.String()
}

// Unwrap returns the cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  SeverityError,
		Context:   make(map[string]interface{}),
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}

	appErr := New(code, message)
	appErr.Cause = err

	if ae, ok := err.(*AppError); ok {
		for k, v := range ae.Context {
			appErr.Context[k] = v
		}
	}

	return appErr
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSeverity sets the error severity
func (e *AppError) WithSeverity(severity ErrorSeverity) *AppError {
	e.Severity = severity
	return e
}

// WithSuggestions adds recovery suggestions
func (e *AppError) WithSuggestions(suggestions ...string) *AppError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors

// ConnectionError creates a transport-related error
func ConnectionError(message string, cause error) *AppError {
	err := New(ErrCodeConnectionFailed, message)
	err.Cause = cause
	return err.
		WithSuggestions(
			"Check your network connection",
			"Verify the platform API endpoint is reachable",
			"Run 'shopsync auth status' to verify credentials",
		)
}

// AuthError creates an authentication error
func AuthError(message string, cause error) *AppError {
	err := New(ErrCodeAuthenticationFailed, message)
	err.Cause = cause
	return err.
		WithSuggestions(
			"Run 'shopsync auth login' to refresh the API token",
			"Verify the token has the required permissions",
		)
}

// ConfigError creates a configuration-related error
func ConfigError(message string, path string) *AppError {
	return New(ErrCodeConfigInvalid, message).
		WithContext("path", path).
		WithSuggestions(
			fmt.Sprintf("Check the configuration at '%s'", path),
			"Run 'shopsync init' to scaffold a valid configuration",
		)
}

// ValidationError creates a validation error locating the offending path
func ValidationError(path string, reason string) *AppError {
	return New(ErrCodeValidationFailed, fmt.Sprintf("validation failed for %s: %s", path, reason)).
		WithContext("path", path)
}

// DuplicateKeyError reports a duplicate natural key within a section
func DuplicateKeyError(section, key string) *AppError {
	return New(ErrCodeDuplicateKey, fmt.Sprintf("duplicate %s %q", section, key)).
		WithContext("section", section).
		WithContext("key", key)
}

// ResolutionError reports attribute names that could not be resolved remotely
func ResolutionError(names []string, kind string) *AppError {
	return New(ErrCodeAttributeNotFound,
		fmt.Sprintf("attributes not found: %s", strings.Join(names, ", "))).
		WithContext("names", names).
		WithContext("kind", kind).
		WithSuggestions(
			"Define the attribute inline or in the global attributes section",
			"Check the attribute name for typos",
		)
}

// PolicyBlockedError reports operations blocked by deployment policy
func PolicyBlockedError(message string) *AppError {
	return New(ErrCodePolicyBlocked, message).
		WithSuggestions("Remove the blocked operations from the configuration, or lift the policy")
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeUnknown
}

// IsCode reports whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
