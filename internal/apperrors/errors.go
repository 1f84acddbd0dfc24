package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// AppError wraps an infrastructure failure with a status-like code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a referenced attribute that does not exist in the workspace.
// Entity is the side of the mapping that was missing ("source" or "destination").
type NotFoundError struct {
	Entity        string
	AttributeType string
	Value         string
}

// NewNotFoundError creates a NotFoundError for the given side, attribute type and identifying value.
func NewNotFoundError(entity, attributeType, value string) *NotFoundError {
	return &NotFoundError{Entity: entity, AttributeType: attributeType, Value: value}
}

func (e *NotFoundError) Error() string {
	if e.AttributeType == "" {
		return fmt.Sprintf("%s %q does not exist", e.Entity, e.Value)
	}
	return fmt.Sprintf("%s %s with name %s does not exist", e.Entity, e.AttributeType, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports a missing field or an identifier of the wrong kind.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field == "":
		return e.Message
	case e.Value == "":
		return e.Field + ": " + e.Message
	default:
		return fmt.Sprintf("%s %s: %s", e.Field, e.Value, e.Message)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ItemError is one failed entry of a batch.
type ItemError struct {
	Index   int    `json:"index"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// BulkError aggregates every validation failure of a batch so callers get the
// complete set in one round trip.
type BulkError struct {
	Message string
	Errors  []ItemError
}

// NewBulkError creates an empty BulkError; use Add to collect failures.
func NewBulkError(message string) *BulkError {
	return &BulkError{Message: message}
}

// Add records a failure for the item at index.
func (e *BulkError) Add(index int, field, value, message string) {
	e.Errors = append(e.Errors, ItemError{Index: index, Field: field, Value: value, Message: message})
}

// AddError records err against the item at index, keeping ValidationError details.
func (e *BulkError) AddError(index int, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		e.Add(index, ve.Field, ve.Value, ve.Message)
		return
	}
	e.Add(index, "", "", err.Error())
}

// HasErrors reports whether any failure was collected.
func (e *BulkError) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

// OrNil returns e when it holds failures and a nil error otherwise.
func (e *BulkError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *BulkError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		if item.Field != "" {
			parts = append(parts, fmt.Sprintf("[%d] %s: %s", item.Index, item.Field, item.Message))
		} else {
			parts = append(parts, fmt.Sprintf("[%d] %s", item.Index, item.Message))
		}
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

func (e *BulkError) Is(target error) bool {
	return target == ErrValidation
}

// NewConflictError wraps ErrDuplicate with detail.
func NewConflictError(message string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, message)
}
