package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeValidation represents rejected input at a mutation boundary
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeContext represents context cancellation/timeout errors
	ErrorTypeContext ErrorType = "context"
	// ErrorTypeSeed represents seed file loading errors
	ErrorTypeSeed ErrorType = "seed"
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

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Validation Errors

// ValidationReason identifies which rule rejected a save request
type ValidationReason string

const (
	ReasonInvalidWord        ValidationReason = "invalid_word"
	ReasonInvalidSynonymList ValidationReason = "invalid_synonym_list"
	ReasonSelfReference      ValidationReason = "self_reference"
)

// ValidationError is returned when a word/synonym pair is rejected before mutation
type ValidationError struct {
	*BaseError
	Reason ValidationReason
}

// NewValidationError creates a validation error for the given reason
func NewValidationError(reason ValidationReason, message string) *ValidationError {
	return &ValidationError{
		BaseError: NewBaseError(ErrorTypeValidation, message, nil),
		Reason:    reason,
	}
}

// Is matches any validation error carrying the same reason, so callers can
// compare against the sentinels below with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

var (
	// ErrInvalidWord is returned when the word is empty or whitespace
	ErrInvalidWord = NewValidationError(ReasonInvalidWord, "word cannot be empty or whitespace")
	// ErrInvalidSynonymList is returned when the synonym list is empty or has blank entries
	ErrInvalidSynonymList = NewValidationError(ReasonInvalidSynonymList, "synonyms list cannot be empty or contain empty or whitespace values")
	// ErrSelfReference is returned when the synonym list contains the word itself
	ErrSelfReference = NewValidationError(ReasonSelfReference, "synonyms list cannot contain the word itself")
)

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

// Context Errors

// ErrContextCancelled is returned when context is cancelled before an operation starts
type ErrContextCancelled struct {
	*BaseError
	Operation string
}

func NewContextCancelled(operation string, err error) *ErrContextCancelled {
	return &ErrContextCancelled{
		BaseError: NewBaseError(ErrorTypeContext, fmt.Sprintf("context cancelled: %s", operation), err),
		Operation: operation,
	}
}

// Seed Errors

// ErrSeedLoadFailed is returned when a seed file cannot be read, parsed or applied
type ErrSeedLoadFailed struct {
	*BaseError
	Path  string
	Index int // position of the offending group, -1 when the whole file failed
}

func NewSeedLoadFailed(path string, index int, err error) *ErrSeedLoadFailed {
	msg := fmt.Sprintf("failed to load seed file: %s", path)
	if index >= 0 {
		msg = fmt.Sprintf("failed to apply group %d of seed file: %s", index, path)
	}
	return &ErrSeedLoadFailed{
		BaseError: NewBaseError(ErrorTypeSeed, msg, err),
		Path:      path,
		Index:     index,
	}
}

// Helper functions

// IsErrorType checks if an error, or any error it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		switch e := err.(type) {
		case *BaseError:
			if e.Type == errType {
				return true
			}
		case interface{ base() *BaseError }:
			if e.base().Type == errType {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// AsValidation extracts a validation error from err's chain
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

func (e *ValidationError) base() *BaseError          { return e.BaseError }
func (e *ErrConfigValidationFailed) base() *BaseError { return e.BaseError }
func (e *ErrContextCancelled) base() *BaseError       { return e.BaseError }
func (e *ErrSeedLoadFailed) base() *BaseError         { return e.BaseError }
