package errors

import (
	"context"
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("work record", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "work record not found: 123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "work record not found: 123")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "work record" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "123" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("connection timeout")
	err := NewDatabaseError("create work record", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "database operation failed: create work record" {
		t.Errorf("NewDatabaseError message = %v, want %v", err.Message, "database operation failed: create work record")
	}
	if err.Code != "DATABASE_ERROR" {
		t.Errorf("NewDatabaseError code = %v, want %v", err.Code, "DATABASE_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewDatabaseError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "create work record" {
		t.Errorf("NewDatabaseError should set operation context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("rate", "abc", "must be a number")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for rate: must be a number" {
		t.Errorf("NewInvalidInputError message = %v, want %v", err.Message, "invalid input for rate: must be a number")
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, "INVALID_INPUT")
	}

	field, ok := err.GetContext("field")
	if !ok || field != "rate" {
		t.Errorf("NewInvalidInputError should set field context")
	}

	value, ok := err.GetContext("value")
	if !ok || value != "abc" {
		t.Errorf("NewInvalidInputError should set value context")
	}

	reason, ok := err.GetContext("reason")
	if !ok || reason != "must be a number" {
		t.Errorf("NewInvalidInputError should set reason context")
	}
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("database query", "5s")

	if err.Type != ErrorTypeTimeout {
		t.Errorf("NewTimeoutError type = %v, want %v", err.Type, ErrorTypeTimeout)
	}
	if err.Message != "operation timed out: database query" {
		t.Errorf("NewTimeoutError message = %v, want %v", err.Message, "operation timed out: database query")
	}
	if err.Code != "TIMEOUT" {
		t.Errorf("NewTimeoutError code = %v, want %v", err.Code, "TIMEOUT")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "database query" {
		t.Errorf("NewTimeoutError should set operation context")
	}

	timeout, ok := err.GetContext("timeout")
	if !ok || timeout != "5s" {
		t.Errorf("NewTimeoutError should set timeout context")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped message")

	if err.Type != ErrorTypeDatabase {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "wrapped message" {
		t.Errorf("WrapError message = %v, want %v", err.Message, "wrapped message")
	}
	if err.Code != "database" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "database")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}

	if IsAppError(regularError) {
		t.Errorf("IsAppError should return false for regular error")
	}

	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	result, ok := AsAppError(appError)
	if !ok {
		t.Errorf("AsAppError should return true for AppError")
	}
	if result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(regularError)
	if ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if result != nil {
		t.Errorf("AsAppError should return nil for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return true for matching type")
	}

	if IsErrorType(appError, ErrorTypeDatabase) {
		t.Errorf("IsErrorType should return false for different type")
	}

	if IsErrorType(regularError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("work record", "123"),
			expected: "work record not found: 123",
		},
		{
			name:     "Database error",
			err:      NewDatabaseError("query", errors.New("timeout")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Timeout error",
			err:      NewTimeoutError("query", "5s"),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Schedule conflict error",
			err:      NewScheduleConflictError("2024-03-01", "08:00-09:00", "08:30-09:30"),
			expected: "slot 08:00-09:00 conflicts with recorded slot 08:30-09:30 on 2024-03-01",
		},
		{
			name:     "Stale calculation error",
			err:      NewStaleCalculationError(60, 62.5),
			expected: "The entry changed since it was calculated. Please calculate again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	appError := &AppError{Code: "VALIDATION_FAILED"}
	regularError := errors.New("regular error")

	if GetErrorCode(appError) != "VALIDATION_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}

	if GetErrorCode(regularError) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: false,
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("work record", "123"),
			expected: false,
		},
		{
			name:     "Invalid input error",
			err:      NewInvalidInputError("rate", "abc", "format"),
			expected: false,
		},
		{
			name:     "Database error",
			err:      NewDatabaseError("query", errors.New("timeout")),
			expected: true,
		},
		{
			name:     "Timeout error",
			err:      NewTimeoutError("query", "5s"),
			expected: true,
		},
		{
			name:     "Intra-day overlap error",
			err:      NewIntraDayOverlapError(1, "10:00-11:00"),
			expected: false,
		},
		{
			name:     "Stale calculation error",
			err:      NewStaleCalculationError(60, 62.5),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
func TestNewDatabaseError_DeadlineExceeded(t *testing.T) {
	err := NewDatabaseError("list work records", context.DeadlineExceeded)

	if err.Type != ErrorTypeTimeout {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeTimeout)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("NewDatabaseError should keep the deadline error as cause")
	}
}

func TestDomainErrorConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		errorType ErrorType
		code      string
		message   string
	}{
		{
			name:      "Invalid field value",
			err:       NewInvalidFieldValueError("start_hours", "24", 23),
			errorType: ErrorTypeInvalidFieldValue,
			code:      "INVALID_FIELD_VALUE",
			message:   `start_hours must be a number between 0 and 23, got "24"`,
		},
		{
			name:      "Invalid order",
			err:       NewInvalidOrderError("12:00", "09:00"),
			errorType: ErrorTypeInvalidOrder,
			code:      "INVALID_ORDER",
			message:   "end time 09:00 must be after start time 12:00",
		},
		{
			name:      "Intra-day overlap",
			err:       NewIntraDayOverlapError(1, "10:00-11:00"),
			errorType: ErrorTypeIntraDayOverlap,
			code:      "INTRA_DAY_OVERLAP",
			message:   "slot 10:00-11:00 overlaps another slot of this day",
		},
		{
			name:      "Schedule conflict",
			err:       NewScheduleConflictError("2024-03-01", "08:00-09:00", "08:30-09:30"),
			errorType: ErrorTypeScheduleConflict,
			code:      "SCHEDULE_CONFLICT",
			message:   "slot 08:00-09:00 conflicts with recorded slot 08:30-09:30 on 2024-03-01",
		},
		{
			name:      "Incomplete slot",
			err:       NewIncompleteSlotError(0),
			errorType: ErrorTypeIncompleteSlot,
			code:      "INCOMPLETE_SLOT",
			message:   "complete the current slot before adding a new one",
		},
		{
			name:      "Not calculated",
			err:       NewNotCalculatedError(),
			errorType: ErrorTypeNotCalculated,
			code:      "NOT_CALCULATED",
			message:   "calculate the entry before saving it",
		},
		{
			name:      "Stale calculation",
			err:       NewStaleCalculationError(60, 62.5),
			errorType: ErrorTypeStaleCalculation,
			code:      "STALE_CALCULATION",
			message:   "calculated amount 60.00 does not match derived amount 62.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.errorType {
				t.Errorf("type = %v, want %v", tt.err.Type, tt.errorType)
			}
			if tt.err.Code != tt.code {
				t.Errorf("code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.Message != tt.message {
				t.Errorf("message = %v, want %v", tt.err.Message, tt.message)
			}
		})
	}
}
