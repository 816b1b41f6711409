package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"worktime/internal/domain"
	"worktime/internal/repository/sqlite"
	"worktime/internal/validation"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo            sqlite.Repository
	mapper          *domain.Mapper
	filterValidator *validation.RecordFilterValidator
	logger          *zap.Logger
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository, logger *zap.Logger) ReportingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportingServiceImpl{
		repo:            repo,
		mapper:          domain.NewMapper(),
		filterValidator: validation.NewRecordFilterValidator(),
		logger:          logger,
	}
}

// Aggregate sums hours and amounts of the records passing filter
func (r *reportingServiceImpl) Aggregate(records []domain.WorkRecord, filter domain.RecordFilter) domain.Totals {
	var totals domain.Totals
	for _, record := range records {
		if !filter.Matches(record) {
			continue
		}
		totals.TotalHours += record.TotalTime
		totals.TotalAmount += record.Amount
		totals.RecordCount++
	}

	totals.TotalHours = domain.RoundAmount(totals.TotalHours)
	totals.TotalAmount = domain.RoundAmount(totals.TotalAmount)
	return totals
}

// FilterRecords returns copies of the records passing filter, in input order
func (r *reportingServiceImpl) FilterRecords(records []domain.WorkRecord, filter domain.RecordFilter) []domain.WorkRecord {
	filtered := make([]domain.WorkRecord, 0, len(records))
	for _, record := range records {
		if filter.Matches(record) {
			filtered = append(filtered, record.Clone())
		}
	}
	return filtered
}

// ListRecords loads the stored records passing filter, ordered by date
func (r *reportingServiceImpl) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.WorkRecord, error) {
	if err := r.filterValidator.Validate(filter); err != nil {
		return nil, err
	}

	dbRecords, err := r.repo.SearchWorkRecords(ctx, r.mapper.Filter.ToDatabase(filter))
	if err != nil {
		r.logger.Error("failed to load work records", zap.Error(err))
		return nil, err
	}

	records := r.FilterRecords(r.mapper.WorkRecord.FromDatabaseSlice(dbRecords), filter)
	sortByDate(records)
	return records, nil
}

// GetTotals loads the stored records passing filter and aggregates them
func (r *reportingServiceImpl) GetTotals(ctx context.Context, filter domain.RecordFilter) (*domain.Totals, error) {
	records, err := r.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := r.Aggregate(records, filter)
	return &totals, nil
}

// GetRecord retrieves a single stored record
func (r *reportingServiceImpl) GetRecord(ctx context.Context, id string) (*domain.WorkRecord, error) {
	dbRecord, err := r.repo.GetWorkRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	record := r.mapper.WorkRecord.FromDatabase(*dbRecord)
	return &record, nil
}

// BuildMonthlyReport collects the rows and totals of one calendar month for
// report renderers. Unknown currencies fall back to the default currency.
func (r *reportingServiceImpl) BuildMonthlyReport(ctx context.Context, month time.Time, currency string) (*domain.MonthlyReport, error) {
	filter := domain.MonthFilter(month)

	records, err := r.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ReportRow, len(records))
	for i, record := range records {
		rows[i] = domain.NewReportRow(record)
	}

	cur := domain.LookupCurrency(currency)
	r.logger.Debug("built monthly report",
		zap.String("month", month.Format(domain.MonthLayout)),
		zap.Int("rows", len(rows)))

	return &domain.MonthlyReport{
		Month:          month.Format(domain.MonthLayout),
		CurrencyCode:   cur.Code,
		CurrencySymbol: cur.Symbol,
		Rows:           rows,
		Totals:         r.Aggregate(records, filter),
	}, nil
}

func sortByDate(records []domain.WorkRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !domain.SameDay(records[i].Date, records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}
