package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worktime/internal/domain"
	"worktime/internal/errors"
	"worktime/internal/repository/sqlite"
)

func sampleRecords(t *testing.T) []domain.WorkRecord {
	return []domain.WorkRecord{
		storedRecord("feb", mustDate(t, "2024-02-28"), 8, 200, domain.TimeRecord{StartTime: "09:00", EndTime: "17:00"}),
		storedRecord("mar-1", mustDate(t, "2024-03-01"), 3, 75, domain.TimeRecord{StartTime: "09:00", EndTime: "12:00"}),
		storedRecord("mar-15", mustDate(t, "2024-03-15"), 6.5, 162.5, domain.TimeRecord{StartTime: "08:00", EndTime: "14:30"}),
		storedRecord("mar-31", mustDate(t, "2024-03-31"), 1.33, 33.33, domain.TimeRecord{StartTime: "10:00", EndTime: "11:20"}),
	}
}

func TestReportingService_Aggregate(t *testing.T) {
	minHours := 3.0
	maxHours := 6.5
	start := mustDate(t, "2024-03-01")
	end := mustDate(t, "2024-03-15")

	tests := []struct {
		name     string
		filter   domain.RecordFilter
		expected domain.Totals
	}{
		{
			name:     "should total everything without bounds",
			filter:   domain.RecordFilter{},
			expected: domain.Totals{TotalHours: 18.83, TotalAmount: 470.83, RecordCount: 4},
		},
		{
			name:     "should include both ends of a date range",
			filter:   domain.RecordFilter{StartDate: &start, EndDate: &end},
			expected: domain.Totals{TotalHours: 9.5, TotalAmount: 237.5, RecordCount: 2},
		},
		{
			name:     "should include both hour bounds",
			filter:   domain.RecordFilter{MinHours: &minHours, MaxHours: &maxHours},
			expected: domain.Totals{TotalHours: 9.5, TotalAmount: 237.5, RecordCount: 2},
		},
		{
			name:     "should select a calendar month",
			filter:   domain.MonthFilter(mustDate(t, "2024-03-20")),
			expected: domain.Totals{TotalHours: 10.83, TotalAmount: 270.83, RecordCount: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := NewReportingService(nil, zap.NewNop())

			// Act
			totals := service.Aggregate(sampleRecords(t), tt.filter)

			// Assert
			assert.Equal(t, tt.expected, totals)
		})
	}
}

func TestReportingService_Aggregate_Empty(t *testing.T) {
	service := NewReportingService(nil, zap.NewNop())

	assert.Equal(t, domain.Totals{}, service.Aggregate(nil, domain.RecordFilter{}))
}

func TestReportingService_Aggregate_Idempotent(t *testing.T) {
	service := NewReportingService(nil, zap.NewNop())
	filter := domain.MonthFilter(mustDate(t, "2024-03-01"))
	records := sampleRecords(t)

	filtered := service.FilterRecords(records, filter)

	assert.Equal(t, service.Aggregate(records, filter), service.Aggregate(filtered, filter))
	assert.Len(t, records, 4, "input must not be modified")
}

func setupReportingServiceWithData(t *testing.T, records []domain.WorkRecord) (ReportingService, sqlite.Repository) {
	t.Helper()
	repo := setupRepository(t)
	mapper := domain.NewMapper()

	for _, record := range records {
		dbRecord := mapper.WorkRecord.ToDatabase(record)
		require.NoError(t, repo.CreateWorkRecord(context.Background(), &dbRecord))
	}

	return NewReportingService(repo, zap.NewNop()), repo
}

func TestReportingService_ListRecords(t *testing.T) {
	// Arrange
	records := sampleRecords(t)
	// Stored out of order on purpose
	service, _ := setupReportingServiceWithData(t, []domain.WorkRecord{records[2], records[0], records[3], records[1]})
	filter := domain.MonthFilter(mustDate(t, "2024-03-01"))

	// Act
	result, err := service.ListRecords(context.Background(), filter)

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "mar-1", result[0].ID)
	assert.Equal(t, "mar-15", result[1].ID)
	assert.Equal(t, "mar-31", result[2].ID)
	assert.Equal(t, "08:00-14:30", result[1].SlotSummary())
}

func TestReportingService_ListRecords_InvalidFilter(t *testing.T) {
	service, _ := setupReportingServiceWithData(t, nil)
	start := mustDate(t, "2024-03-10")
	end := mustDate(t, "2024-03-01")

	_, err := service.ListRecords(context.Background(), domain.RecordFilter{StartDate: &start, EndDate: &end})

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestReportingService_GetTotals(t *testing.T) {
	service, _ := setupReportingServiceWithData(t, sampleRecords(t))
	minHours := 6.0

	totals, err := service.GetTotals(context.Background(), domain.RecordFilter{MinHours: &minHours})

	require.NoError(t, err)
	assert.Equal(t, &domain.Totals{TotalHours: 14.5, TotalAmount: 362.5, RecordCount: 2}, totals)
}

func TestReportingService_GetRecord(t *testing.T) {
	service, _ := setupReportingServiceWithData(t, sampleRecords(t))

	record, err := service.GetRecord(context.Background(), "mar-15")
	require.NoError(t, err)
	assert.Equal(t, 6.5, record.TotalTime)

	_, err = service.GetRecord(context.Background(), "missing")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestReportingService_BuildMonthlyReport(t *testing.T) {
	tests := []struct {
		name           string
		currency       string
		expectedCode   string
		expectedSymbol string
	}{
		{"known currency", "GBP", "GBP", "£"},
		{"lowercase currency", "tnd", "TND", "DT"},
		{"unknown currency falls back", "XYZ", "EUR", "€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service, _ := setupReportingServiceWithData(t, sampleRecords(t))
			month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

			// Act
			report, err := service.BuildMonthlyReport(context.Background(), month, tt.currency)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "2024-03", report.Month)
			assert.Equal(t, tt.expectedCode, report.CurrencyCode)
			assert.Equal(t, tt.expectedSymbol, report.CurrencySymbol)
			require.Len(t, report.Rows, 3)
			assert.Equal(t, domain.ReportRow{
				Date:       "2024-03-01",
				Slots:      "09:00-12:00",
				BreakHours: 0,
				TotalTime:  3,
				Amount:     75,
			}, report.Rows[0])
			assert.Equal(t, domain.Totals{TotalHours: 10.83, TotalAmount: 270.83, RecordCount: 3}, report.Totals)
		})
	}
}

func TestReportingService_BuildMonthlyReport_EmptyMonth(t *testing.T) {
	service, _ := setupReportingServiceWithData(t, sampleRecords(t))

	report, err := service.BuildMonthlyReport(context.Background(), mustDate(t, "2023-12-01"), "EUR")

	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, domain.Totals{}, report.Totals)
}
