package validation

import (
	"math"
	"regexp"
	"strings"
	"time"

	"worktime/internal/config"
	"worktime/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	fieldInputRegex *regexp.Regexp
	config          *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		fieldInputRegex: regexp.MustCompile(`^\d{1,2}$`),
		config:          nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		fieldInputRegex: regexp.MustCompile(`^\d{1,2}$`),
		config:          cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidFieldInput checks that a slot field input is one or two ASCII digits
func (v *Validator) IsValidFieldInput(raw string) bool {
	return v.fieldInputRegex.MatchString(raw)
}

// IsFinite checks that f is neither NaN nor infinite
func (v *Validator) IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsValidRate checks that a rate is a finite, non-negative number
func (v *Validator) IsValidRate(rate float64) bool {
	return v.IsFinite(rate) && rate >= 0
}

// IsValidBreakHours checks that a break duration is finite, non-negative and
// below the configured maximum
func (v *Validator) IsValidBreakHours(hours float64) bool {
	return v.IsFinite(hours) && hours >= 0 && hours <= v.getMaxBreakHours()
}

// IsKnownCurrency checks that a currency code is in the supported list
func (v *Validator) IsKnownCurrency(code string) bool {
	_, ok := domain.FindCurrency(code)
	return ok
}

// IsReasonableDate checks if a date is within reasonable bounds of now
func (v *Validator) IsReasonableDate(t time.Time, now time.Time) bool {
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// IsValidDateRange checks if a date range is logical, comparing calendar days
func (v *Validator) IsValidDateRange(startDate, endDate *time.Time) bool {
	if startDate == nil || endDate == nil {
		return true // Open-ended ranges are valid
	}
	return !domain.DateOnly(*startDate).After(domain.DateOnly(*endDate))
}

// IsValidHourRange checks if hour bounds are logical
func (v *Validator) IsValidHourRange(minHours, maxHours *float64) bool {
	if minHours == nil || maxHours == nil {
		return true
	}
	return *minHours <= *maxHours
}

// getMaxBreakHours returns configured maximum break duration or default
func (v *Validator) getMaxBreakHours() float64 {
	if v.config != nil && v.config.Billing.MaxBreakHours > 0 {
		return v.config.Billing.MaxBreakHours
	}
	return 24 // Default maximum
}
