package api

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"worktime/internal/config"
	"worktime/internal/domain"
	"worktime/internal/errors"
	"worktime/internal/repository/sqlite"
	"worktime/internal/services"
	"worktime/internal/validation"
)

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	config    *config.Config
	entries   services.EntryService
	reporting services.ReportingService
	logger    *zap.Logger
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(repo sqlite.Repository, cfg *config.Config, logger *zap.Logger) BusinessAPI {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	container := services.NewServiceContainer(repo, cfg, logger)
	return &businessAPIImpl{
		config:    cfg,
		entries:   container.EntryService,
		reporting: container.ReportingService,
		logger:    logger,
	}
}

// ========== Entry Workflows ==========

func (b *businessAPIImpl) BuildSession(req EntryRequest) (domain.EditSession, error) {
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	s := b.entries.NewSession(date)
	if req.Currency != "" {
		currency, ok := domain.FindCurrency(req.Currency)
		if !ok {
			return s, errors.NewInvalidInputError("currency", req.Currency, "unknown currency code")
		}
		s.Currency = currency.Code
	}

	if len(req.Slots) == 0 {
		return s, errors.NewValidationError("at least one slot is required", nil)
	}

	var err error
	for i, input := range req.Slots {
		if i > 0 {
			if s, err = b.entries.AddSlot(s); err != nil {
				return s, err
			}
		}

		parts, err := validation.SplitSlot(input)
		if err != nil {
			return s, err
		}
		for j, field := range domain.SlotFields {
			if s, err = b.entries.SetField(s, i, field, parts[j]); err != nil {
				if appErr, ok := errors.AsAppError(err); ok {
					appErr.WithContext("slot_input", input)
				}
				return s, err
			}
		}
	}

	if req.BreakHours != "" {
		if s, err = b.entries.SetBreakHours(s, req.BreakHours); err != nil {
			return s, err
		}
	}
	if req.Rate != "" {
		if s, err = b.entries.SetRate(s, req.Rate); err != nil {
			return s, err
		}
	}

	return s, nil
}

func (b *businessAPIImpl) Calculate(req EntryRequest) (*CalculationSummary, error) {
	s, err := b.BuildSession(req)
	if err != nil {
		return nil, err
	}

	s, ready := b.entries.Calculate(s)
	return &CalculationSummary{
		Session:  s,
		Result:   s.Result,
		Ready:    ready,
		Currency: domain.LookupCurrency(s.Currency),
	}, nil
}

func (b *businessAPIImpl) SaveEntry(ctx context.Context, req EntryRequest) (*domain.WorkRecord, error) {
	summary, err := b.Calculate(req)
	if err != nil {
		return nil, err
	}
	if !summary.Ready {
		return nil, errors.NewValidationError("nothing to save: worked time after breaks must be positive", nil)
	}

	record, _, err := b.entries.Save(ctx, summary.Session)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (b *businessAPIImpl) DeleteRecord(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewInvalidInputError("id", id, "record ID cannot be empty")
	}
	return b.entries.DeleteRecord(ctx, id)
}

// ========== Query Operations ==========

func (b *businessAPIImpl) GetRecord(ctx context.Context, id string) (*domain.WorkRecord, error) {
	if id == "" {
		return nil, errors.NewInvalidInputError("id", id, "record ID cannot be empty")
	}
	return b.reporting.GetRecord(ctx, id)
}

func (b *businessAPIImpl) ListRecords(ctx context.Context, filter domain.RecordFilter) (*RecordsView, error) {
	records, err := b.reporting.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &RecordsView{
		Records:  records,
		Totals:   b.reporting.Aggregate(records, filter),
		Currency: b.DefaultCurrency(),
	}, nil
}

func (b *businessAPIImpl) MonthlyReport(ctx context.Context, month time.Time, currency string) (*domain.MonthlyReport, error) {
	if currency == "" {
		currency = b.config.Billing.Currency
	}
	report, err := b.reporting.BuildMonthlyReport(ctx, month, currency)
	if err != nil {
		return nil, fmt.Errorf("monthly report for %s: %w", month.Format(domain.MonthLayout), err)
	}
	return report, nil
}

func (b *businessAPIImpl) Currencies() []domain.Currency {
	currencies := make([]domain.Currency, len(domain.Currencies))
	copy(currencies, domain.Currencies)
	return currencies
}

func (b *businessAPIImpl) DefaultCurrency() domain.Currency {
	return domain.LookupCurrency(b.config.Billing.Currency)
}
