package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeCharacter represents character lookup errors
	ErrorTypeCharacter ErrorType = "character"
	// ErrorTypePath represents path finding outcomes
	ErrorTypePath ErrorType = "path"
	// ErrorTypeLoader represents table loading errors
	ErrorTypeLoader ErrorType = "loader"
	// ErrorTypeStore represents graph database errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// base lets the typed errors below expose their embedded BaseError.
func (e *BaseError) base() *BaseError {
	return e
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Character Errors

// ErrEmptyTable is returned when a query needs at least one character
var ErrEmptyTable = NewBaseError(ErrorTypeCharacter, "character table is empty", nil)

// ErrCharacterNotFound is returned when a name has no matching record
type ErrCharacterNotFound struct {
	*BaseError
	Name string
}

func NewCharacterNotFound(name string) *ErrCharacterNotFound {
	return &ErrCharacterNotFound{
		BaseError: NewBaseError(ErrorTypeCharacter, fmt.Sprintf("character '%s' not found in the dataset", name), nil),
		Name:      name,
	}
}

// Path Errors

// ErrNoPath is returned when no chain of shared games joins two characters.
// It is an ordinary outcome, not a failure of the lookup.
type ErrNoPath struct {
	*BaseError
	From string
	To   string
}

func NewNoPath(from, to string) *ErrNoPath {
	return &ErrNoPath{
		BaseError: NewBaseError(ErrorTypePath, fmt.Sprintf("no path found between %s and %s", from, to), nil),
		From:      from,
		To:        to,
	}
}

// Loader Errors

// ErrLoaderFileFailed is returned when a source file cannot be opened or read
type ErrLoaderFileFailed struct {
	*BaseError
	Path string
}

func NewLoaderFileFailed(path string, err error) *ErrLoaderFileFailed {
	return &ErrLoaderFileFailed{
		BaseError: NewBaseError(ErrorTypeLoader, fmt.Sprintf("failed to read character file: %s", path), err),
		Path:      path,
	}
}

// ErrLoaderParseFailed is returned when a source row cannot be turned into a record
type ErrLoaderParseFailed struct {
	*BaseError
	Source string
	Line   int
}

func NewLoaderParseFailed(source string, line int, reason string, err error) *ErrLoaderParseFailed {
	return &ErrLoaderParseFailed{
		BaseError: NewBaseError(ErrorTypeLoader, fmt.Sprintf("%s:%d: %s", source, line, reason), err),
		Source:    source,
		Line:      line,
	}
}

// Store Errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Operation string
}

func NewGraphQueryFailed(operation string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("query failed: %s", operation), err),
		Operation: operation,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error, or anything it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	var typed interface{ base() *BaseError }
	for err != nil {
		if stderrors.As(err, &typed) {
			if typed.base().Type == errType {
				return true
			}
			err = typed.base().Err
			continue
		}
		return false
	}
	return false
}

// IsNotFound reports whether err is a character lookup miss
func IsNotFound(err error) bool {
	var notFound *ErrCharacterNotFound
	return stderrors.As(err, &notFound)
}

// IsNoPath reports whether err is a no-path outcome
func IsNoPath(err error) bool {
	var noPath *ErrNoPath
	return stderrors.As(err, &noPath)
}
