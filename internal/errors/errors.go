package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput        = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON       = errors.New("invalid JSON format")
	ErrMultipleJSON      = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound      = errors.New("file not found")
	ErrFileUnreadable    = errors.New("file could not be read")
	ErrFileEmpty         = errors.New("file is empty")
	ErrNoInput           = errors.New("no input provided: please specify a file with -f or pipe JSON data with -f -")
	ErrInvalidFilePath   = errors.New("invalid file path")
	ErrUnsupportedStyle  = errors.New("unsupported style")
	ErrUnknownIconFamily = errors.New("unknown icon family")
	ErrUnrenderableRoot  = errors.New("root value must be a JSON object")
	ErrGridOverflow      = errors.New("write outside of allocated grid")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeStyle    ErrorType = "style"
	ErrorTypeIcon     ErrorType = "icon"
	ErrorTypeRoot     ErrorType = "root"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeInternal ErrorType = "internal"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// Exit codes returned by ExitCode.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitInternal = 70
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newError(t ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *AppError {
	return newError(ErrorTypeInput, message, err)
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return newError(ErrorTypeParsing, message, err)
}

// NewStyleError creates a new error for an unsupported diagram style
func NewStyleError(style string) *AppError {
	return newError(ErrorTypeStyle, fmt.Sprintf("unsupported style %q", style), ErrUnsupportedStyle)
}

// NewIconError creates a new error for an unregistered icon family
func NewIconError(family string, known []string) *AppError {
	return newError(ErrorTypeIcon, fmt.Sprintf("unknown icon family %q (available: %v)", family, known), ErrUnknownIconFamily)
}

// NewRootError creates a new error for a document whose root cannot be drawn
func NewRootError(message string) *AppError {
	return newError(ErrorTypeRoot, message, ErrUnrenderableRoot)
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return newError(ErrorTypeConfig, message, err)
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return newError(ErrorTypeOutput, message, err)
}

// NewInternalError reports a broken invariant between rendering passes.
func NewInternalError(message string, err error) *AppError {
	return newError(ErrorTypeInternal, message, err)
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			if appErr.Err != nil && !errors.Is(appErr.Err, ErrInvalidJSON) {
				return fmt.Sprintf("JSON parsing error: %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeStyle:
			return fmt.Sprintf("Style error: %s (supported: tree, rectangle)", appErr.Message)
		case ErrorTypeIcon:
			return fmt.Sprintf("Icon error: %s", appErr.Message)
		case ErrorTypeRoot:
			return fmt.Sprintf("Render error: %s", appErr.Message)
		case ErrorTypeConfig:
			if appErr.Err != nil {
				return fmt.Sprintf("Configuration error: %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeInternal:
			return fmt.Sprintf("Internal error (please report this): %s: %v", appErr.Message, appErr.Err)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -f, or pipe JSON data and pass -f -."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	return fmt.Sprintf("Error: %v", err)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeStyle, ErrorTypeIcon, ErrorTypeConfig:
			return ExitUsage
		case ErrorTypeInternal:
			return ExitInternal
		}
	}
	return ExitFailure
}
