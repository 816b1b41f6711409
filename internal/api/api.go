package api

import (
	"context"
	"time"

	"worktime/internal/domain"
)

// EntryRequest carries the raw inputs of one day's entry as a user typed them
type EntryRequest struct {
	Date time.Time `json:"date"`
	// Slots are "HH:MM-HH:MM" strings, fed field by field into the session
	Slots      []string `json:"slots"`
	BreakHours string   `json:"break_hours,omitempty"`
	// Rate and Currency fall back to the configured defaults when empty
	Rate     string `json:"rate,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// CalculationSummary is the outcome of calculating an entry. Ready is false
// when the worked time after breaks is not positive.
type CalculationSummary struct {
	Session  domain.EditSession        `json:"session" yaml:"session"`
	Result   *domain.CalculationResult `json:"result,omitempty" yaml:"result,omitempty"`
	Ready    bool                      `json:"ready" yaml:"ready"`
	Currency domain.Currency           `json:"currency" yaml:"currency"`
}

// RecordsView is a filtered record list together with its totals
type RecordsView struct {
	Records  []domain.WorkRecord `json:"records" yaml:"records"`
	Totals   domain.Totals       `json:"totals" yaml:"totals"`
	Currency domain.Currency     `json:"currency" yaml:"currency"`
}

// BusinessAPI defines the operations available to front ends
type BusinessAPI interface {
	// ========== Entry Workflows ==========

	// BuildSession feeds the request into a fresh edit session
	BuildSession(req EntryRequest) (domain.EditSession, error)

	// Calculate builds the session and runs the explicit calculate step
	Calculate(req EntryRequest) (*CalculationSummary, error)

	// SaveEntry calculates the entry and stores it unless it collides with
	// records already stored for that day
	SaveEntry(ctx context.Context, req EntryRequest) (*domain.WorkRecord, error)

	// DeleteRecord removes a stored record
	DeleteRecord(ctx context.Context, id string) error

	// ========== Query Operations ==========

	// GetRecord returns a single stored record
	GetRecord(ctx context.Context, id string) (*domain.WorkRecord, error)

	// ListRecords returns the stored records passing filter with their totals
	ListRecords(ctx context.Context, filter domain.RecordFilter) (*RecordsView, error)

	// MonthlyReport returns the report data of one calendar month
	MonthlyReport(ctx context.Context, month time.Time, currency string) (*domain.MonthlyReport, error)

	// Currencies lists the supported display currencies
	Currencies() []domain.Currency

	// DefaultCurrency returns the configured display currency
	DefaultCurrency() domain.Currency
}
