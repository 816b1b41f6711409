package errors

import (
	"context"
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error. Context deadline errors are
// reported as timeouts instead.
func NewDatabaseError(operation string, cause error) *AppError {
	if errors.Is(cause, context.DeadlineExceeded) {
		timeoutErr := NewTimeoutError(operation, nil)
		timeoutErr.Cause = cause
		return timeoutErr
	}
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Context: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// NewInvalidFieldValueError reports a slot field edit that is neither empty
// nor an integer within the field's range.
func NewInvalidFieldValueError(field string, value string, max int) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidFieldValue,
		Message: fmt.Sprintf("%s must be a number between 0 and %d, got %q", field, max, value),
		Code:    "INVALID_FIELD_VALUE",
		Context: map[string]interface{}{
			"field": field,
			"value": value,
			"max":   max,
		},
	}
}

// NewInvalidOrderError reports a complete slot whose end is not after its start.
func NewInvalidOrderError(start string, end string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidOrder,
		Message: fmt.Sprintf("end time %s must be after start time %s", end, start),
		Code:    "INVALID_ORDER",
		Context: map[string]interface{}{
			"start": start,
			"end":   end,
		},
	}
}

// NewIntraDayOverlapError reports a slot colliding with another slot of the
// same entry.
func NewIntraDayOverlapError(index int, slot string) *AppError {
	return &AppError{
		Type:    ErrorTypeIntraDayOverlap,
		Message: fmt.Sprintf("slot %s overlaps another slot of this day", slot),
		Code:    "INTRA_DAY_OVERLAP",
		Context: map[string]interface{}{
			"index": index,
			"slot":  slot,
		},
	}
}

// NewScheduleConflictError reports candidate slots colliding with records
// already stored for the same day.
func NewScheduleConflictError(date string, slot string, existing string) *AppError {
	return &AppError{
		Type:    ErrorTypeScheduleConflict,
		Message: fmt.Sprintf("slot %s conflicts with recorded slot %s on %s", slot, existing, date),
		Code:    "SCHEDULE_CONFLICT",
		Context: map[string]interface{}{
			"date":     date,
			"slot":     slot,
			"existing": existing,
		},
	}
}

// NewIncompleteSlotError reports an operation that needs the slot at index
// to be complete first.
func NewIncompleteSlotError(index int) *AppError {
	return &AppError{
		Type:    ErrorTypeIncompleteSlot,
		Message: "complete the current slot before adding a new one",
		Code:    "INCOMPLETE_SLOT",
		Context: map[string]interface{}{
			"index": index,
		},
	}
}

// NewNotCalculatedError reports a save attempt without a current calculation.
func NewNotCalculatedError() *AppError {
	return &AppError{
		Type:    ErrorTypeNotCalculated,
		Message: "calculate the entry before saving it",
		Code:    "NOT_CALCULATED",
		Context: make(map[string]interface{}),
	}
}

// NewStaleCalculationError reports a calculation whose amount no longer
// matches the amount derived from the current inputs.
func NewStaleCalculationError(calculated float64, derived float64) *AppError {
	return &AppError{
		Type:    ErrorTypeStaleCalculation,
		Message: fmt.Sprintf("calculated amount %.2f does not match derived amount %.2f", calculated, derived),
		Code:    "STALE_CALCULATION",
		Context: map[string]interface{}{
			"calculated": calculated,
			"derived":    derived,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		case ErrorTypeStaleCalculation:
			return "The entry changed since it was calculated. Please calculate again."
		default:
			if appErr.Type.IsUserCorrectable() {
				return appErr.Message
			}
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return !appErr.Type.IsUserCorrectable()
	}
	return true // Unknown errors should be logged
}
