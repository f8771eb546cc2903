package apperrors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a concurrent transaction won a lock or serialization
// race. The operation can be retried.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure in a lower layer.
var ErrInternal = errors.New("internal error")

// ErrConfiguration indicates the posting engine is missing required setup
// (account roles, base currency).
var ErrConfiguration = errors.New("configuration error")

// ErrRateNotFound indicates no exchange rate could be resolved for a currency pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrImmutableDocument indicates an attempted change to a write-protected field of a posted document.
var ErrImmutableDocument = errors.New("document is immutable")

// ErrInvalidState indicates an operation is not allowed from the current lifecycle state.
var ErrInvalidState = errors.New("invalid state")

// ErrUnbalancedEntry indicates a journal entry whose debits and credits differ.
// It signals a construction defect, never a user error.
var ErrUnbalancedEntry = errors.New("unbalanced journal entry")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with the entity that was missing.
func NewNotFoundError(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// ConfigurationError names the account role or setting that is missing or invalid.
type ConfigurationError struct {
	Role   string
	Code   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Role != "" && e.Code != "":
		return fmt.Sprintf("configuration error: account role %s maps to code %q: %s", e.Role, e.Code, e.Reason)
	case e.Role != "":
		return fmt.Sprintf("configuration error: account role %s: %s", e.Role, e.Reason)
	default:
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ValidationError describes a rejected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError is a shorthand for &ValidationError{...}.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// RateNotFoundError identifies the pair and date that could not be converted.
type RateNotFoundError struct {
	From     string
	To       string
	AsOf     time.Time
	RateType string
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no %s exchange rate from %s to %s on or before %s",
		e.RateType, e.From, e.To, e.AsOf.Format(time.DateOnly))
}

func (e *RateNotFoundError) Unwrap() error { return ErrRateNotFound }

// ImmutableDocumentError lists the protected fields a write attempted to change.
type ImmutableDocumentError struct {
	DocumentID string
	Fields     []string
}

func (e *ImmutableDocumentError) Error() string {
	return fmt.Sprintf("document %s is posted; protected fields changed: %s",
		e.DocumentID, strings.Join(e.Fields, ", "))
}

func (e *ImmutableDocumentError) Unwrap() error { return ErrImmutableDocument }

// InvalidStateError reports an operation attempted from the wrong lifecycle state.
type InvalidStateError struct {
	Entity  string
	ID      string
	Current string
	Wanted  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s is %s, expected %s", e.Entity, e.ID, e.Current, e.Wanted)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }
