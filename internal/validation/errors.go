package validation

import (
	stderrors "errors"
	"fmt"
	"strings"

	"worktime/internal/errors"
)

// Problem classifies a rejected field
type Problem string

const (
	ProblemRequired     Problem = "required"
	ProblemInvalidValue Problem = "invalid_value"
	ProblemInvalidRange Problem = "invalid_range"
)

// FieldError is one rejected field
type FieldError struct {
	Field   string
	Problem Problem
	Message string
	Value   interface{}
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// ValidationError collects every rejected field of one input, so a filter or
// settings block is reported in full rather than one field at a time.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty collector
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: []FieldError{}}
}

// AsValidationError finds a ValidationError in err's chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return "validation error: " + ve.Errors[0].Error()
	}

	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(ve.Errors), strings.Join(parts, "; "))
}

// HasErrors returns true once any field was rejected
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationError) add(field string, problem Problem, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Problem: problem, Message: message, Value: value})
}

// AddRequiredError rejects a missing field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, ProblemRequired, field+" is required", nil)
}

// AddInvalidValueError rejects a single out-of-domain value
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.add(field, ProblemInvalidValue, fmt.Sprintf("%s has invalid value: %s", field, reason), value)
}

// AddInvalidRangeError rejects a pair of bounds that contradict each other
func (ve *ValidationError) AddInvalidRangeError(field string, value interface{}, reason string) {
	ve.add(field, ProblemInvalidRange, fmt.Sprintf("%s has invalid range: %s", field, reason), value)
}

// Fields lists the rejected fields in the order they were added
func (ve *ValidationError) Fields() []string {
	fields := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// GetUserFriendlyMessage returns the messages without field prefixes, one per line
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}

	lines := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		lines[i] = "- " + fe.Message
	}
	return "Multiple validation errors occurred:\n" + strings.Join(lines, "\n")
}

// ToAppError converts the collected field errors into a validation AppError.
// It returns nil when nothing was collected.
func (ve *ValidationError) ToAppError() *errors.AppError {
	if !ve.HasErrors() {
		return nil
	}
	return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve).
		WithContext("fields", ve.Fields())
}
