package validation

import (
	"strconv"
	"strings"

	"worktime/internal/config"
	"worktime/internal/domain"
	"worktime/internal/errors"
)

// ParseRate parses an hourly rate typed by the user
func ParseRate(raw string) (float64, error) {
	v := NewValidator()
	rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !v.IsValidRate(rate) {
		return 0, errors.NewInvalidInputError("rate", raw, "must be a non-negative number")
	}
	return rate, nil
}

// ParseBreakHours parses a break duration in hours. Empty input means no break.
func ParseBreakHours(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	v := NewValidator()
	hours, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || !v.IsValidBreakHours(hours) {
		return 0, errors.NewInvalidInputError("break_hours", raw, "must be a number of hours between 0 and 24")
	}
	return hours, nil
}

// RecordFilterValidator validates record filters before they reach storage
type RecordFilterValidator struct {
	validator *Validator
}

// NewRecordFilterValidator creates a new record filter validator
func NewRecordFilterValidator() *RecordFilterValidator {
	return &RecordFilterValidator{
		validator: NewValidator(),
	}
}

// Validate checks that the filter bounds are consistent
func (rv *RecordFilterValidator) Validate(filter domain.RecordFilter) error {
	validationError := NewValidationError()

	if !rv.validator.IsValidDateRange(filter.StartDate, filter.EndDate) {
		validationError.AddInvalidRangeError("date_range", map[string]interface{}{
			"start": filter.StartDate,
			"end":   filter.EndDate,
		}, "start date must not be after end date")
	}

	if filter.MinHours != nil && (*filter.MinHours < 0 || !rv.validator.IsFinite(*filter.MinHours)) {
		validationError.AddInvalidValueError("min_hours", *filter.MinHours, "must be a non-negative number")
	}
	if filter.MaxHours != nil && (*filter.MaxHours < 0 || !rv.validator.IsFinite(*filter.MaxHours)) {
		validationError.AddInvalidValueError("max_hours", *filter.MaxHours, "must be a non-negative number")
	}
	if !rv.validator.IsValidHourRange(filter.MinHours, filter.MaxHours) {
		validationError.AddInvalidRangeError("hours", map[string]float64{
			"min": *filter.MinHours,
			"max": *filter.MaxHours,
		}, "min_hours must not exceed max_hours")
	}

	if validationError.HasErrors() {
		return validationError.ToAppError()
	}
	return nil
}

// SettingsValidator validates the billing settings
type SettingsValidator struct {
	validator *Validator
}

// NewSettingsValidator creates a new settings validator using cfg's limits
func NewSettingsValidator(cfg *config.Config) *SettingsValidator {
	return &SettingsValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// Validate checks the default rate and the display currency
func (sv *SettingsValidator) Validate(billing config.BillingConfig) error {
	validationError := NewValidationError()

	if !sv.validator.IsValidRate(billing.DefaultRate) {
		validationError.AddInvalidValueError("billing.default_rate", billing.DefaultRate, "must be a non-negative number")
	}
	if !sv.validator.IsNonEmptyString(billing.Currency) {
		validationError.AddRequiredError("billing.currency")
	} else if !sv.validator.IsKnownCurrency(billing.Currency) {
		validationError.AddInvalidValueError("billing.currency", billing.Currency, "unknown currency code")
	}

	if validationError.HasErrors() {
		return validationError.ToAppError()
	}
	return nil
}
