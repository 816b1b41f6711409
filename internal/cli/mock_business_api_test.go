package cli

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	"worktime/internal/api"
	"worktime/internal/config"
	"worktime/internal/domain"
	"worktime/internal/errors"
)

// mockBusinessAPI implements the BusinessAPI interface for testing. Slots are
// parsed loosely and records live in memory.
type mockBusinessAPI struct {
	records  map[string]*domain.WorkRecord
	nextID   int
	rate     float64
	currency domain.Currency

	saved       []api.EntryRequest
	filters     []domain.RecordFilter
	saveErr     error
	saveErrOnce error // returned by the next SaveEntry only
	listErr     error
	reported    string
}

// newMockBusinessAPI creates a new mock BusinessAPI instance
func newMockBusinessAPI() *mockBusinessAPI {
	return &mockBusinessAPI{
		records:  make(map[string]*domain.WorkRecord),
		nextID:   1,
		rate:     20,
		currency: domain.LookupCurrency("GBP"),
	}
}

func (m *mockBusinessAPI) parseSlots(req api.EntryRequest) ([]domain.TimeRecord, int, error) {
	var records []domain.TimeRecord
	total := 0
	for _, input := range req.Slots {
		start, end, found := strings.Cut(input, "-")
		if !found {
			return nil, 0, errors.NewInvalidInputError("slot", input, "expected HH:MM-HH:MM")
		}
		startOffset, err := domain.ParseClock(start)
		if err != nil {
			return nil, 0, errors.NewInvalidFieldValueError("start", start, 23)
		}
		endOffset, err := domain.ParseClock(end)
		if err != nil {
			return nil, 0, errors.NewInvalidFieldValueError("end", end, 23)
		}
		if endOffset <= startOffset {
			return nil, 0, errors.NewInvalidOrderError(start, end)
		}
		records = append(records, domain.TimeRecord{StartTime: start, EndTime: end})
		total += endOffset - startOffset
	}
	return records, total, nil
}

func (m *mockBusinessAPI) settings(req api.EntryRequest) (float64, float64, error) {
	var breakHours float64
	if req.BreakHours != "" {
		if _, err := fmt.Sscanf(req.BreakHours, "%g", &breakHours); err != nil || breakHours < 0 {
			return 0, 0, errors.NewInvalidInputError("break_hours", req.BreakHours, "must be a number")
		}
	}
	rate := m.rate
	if req.Rate != "" {
		if _, err := fmt.Sscanf(req.Rate, "%g", &rate); err != nil || rate < 0 {
			return 0, 0, errors.NewInvalidInputError("rate", req.Rate, "must be a number")
		}
	}
	return breakHours, rate, nil
}

func (m *mockBusinessAPI) BuildSession(req api.EntryRequest) (domain.EditSession, error) {
	if _, _, err := m.parseSlots(req); err != nil {
		return domain.EditSession{}, err
	}
	breakHours, rate, err := m.settings(req)
	if err != nil {
		return domain.EditSession{}, err
	}
	return domain.EditSession{Date: req.Date, BreakHours: breakHours, Rate: rate, Currency: m.currency.Code}, nil
}

func (m *mockBusinessAPI) Calculate(req api.EntryRequest) (*api.CalculationSummary, error) {
	session, err := m.BuildSession(req)
	if err != nil {
		return nil, err
	}
	_, worked, _ := m.parseSlots(req)

	summary := &api.CalculationSummary{Session: session, Currency: m.currency}
	total := worked - int(math.Round(session.BreakHours*60))
	if total <= 0 {
		return summary, nil
	}
	result := &domain.CalculationResult{
		TotalMinutes: total,
		Hours:        total / 60,
		Minutes:      total % 60,
		Amount:       domain.RoundAmount(float64(total) / 60 * session.Rate),
	}
	summary.Session.Result = result
	summary.Result = result
	summary.Ready = true
	return summary, nil
}

func (m *mockBusinessAPI) SaveEntry(ctx context.Context, req api.EntryRequest) (*domain.WorkRecord, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if err := m.saveErrOnce; err != nil {
		m.saveErrOnce = nil
		return nil, err
	}
	summary, err := m.Calculate(req)
	if err != nil {
		return nil, err
	}
	if !summary.Ready {
		return nil, errors.NewValidationError("nothing to save: worked time after breaks must be positive", nil)
	}
	slots, _, _ := m.parseSlots(req)

	record := &domain.WorkRecord{
		ID:          fmt.Sprintf("rec-%d", m.nextID),
		Date:        domain.DateOnly(req.Date),
		TimeRecords: slots,
		BreakHours:  summary.Session.BreakHours,
		TotalTime:   summary.Result.DecimalHours(),
		Rate:        summary.Session.Rate,
		Amount:      summary.Result.Amount,
		Currency:    m.currency.Code,
	}
	m.nextID++
	m.records[record.ID] = record
	m.saved = append(m.saved, req)
	return record, nil
}

func (m *mockBusinessAPI) DeleteRecord(ctx context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return errors.NewNotFoundError("work record", id)
	}
	delete(m.records, id)
	return nil
}

func (m *mockBusinessAPI) GetRecord(ctx context.Context, id string) (*domain.WorkRecord, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, errors.NewNotFoundError("work record", id)
	}
	return record, nil
}

func (m *mockBusinessAPI) sortedRecords(filter domain.RecordFilter) []domain.WorkRecord {
	var records []domain.WorkRecord
	for _, record := range m.records {
		if filter.Matches(*record) {
			records = append(records, *record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records
}

func (m *mockBusinessAPI) ListRecords(ctx context.Context, filter domain.RecordFilter) (*api.RecordsView, error) {
	m.filters = append(m.filters, filter)
	if m.listErr != nil {
		return nil, m.listErr
	}
	records := m.sortedRecords(filter)

	view := &api.RecordsView{Records: records, Currency: m.currency}
	for _, record := range records {
		view.Totals.TotalHours += record.TotalTime
		view.Totals.TotalAmount += record.Amount
		view.Totals.RecordCount++
	}
	return view, nil
}

func (m *mockBusinessAPI) MonthlyReport(ctx context.Context, month time.Time, currency string) (*domain.MonthlyReport, error) {
	m.reported = month.Format("2006-01")
	selected := domain.LookupCurrency(currency)
	if currency == "" {
		selected = m.currency
	}

	report := &domain.MonthlyReport{
		Month:          m.reported,
		CurrencyCode:   selected.Code,
		CurrencySymbol: selected.Symbol,
		Rows:           []domain.ReportRow{},
	}
	for _, record := range m.sortedRecords(domain.MonthFilter(month)) {
		report.Rows = append(report.Rows, domain.NewReportRow(record))
		report.Totals.TotalHours += record.TotalTime
		report.Totals.TotalAmount += record.Amount
		report.Totals.RecordCount++
	}
	return report, nil
}

func (m *mockBusinessAPI) Currencies() []domain.Currency {
	return append([]domain.Currency(nil), domain.Currencies...)
}

func (m *mockBusinessAPI) DefaultCurrency() domain.Currency {
	return m.currency
}

// addRecord stores a record directly, bypassing SaveEntry
func (m *mockBusinessAPI) addRecord(date string, start, end string, hours, amount float64) *domain.WorkRecord {
	parsed, _ := domain.ParseDate(date)
	record := &domain.WorkRecord{
		ID:          fmt.Sprintf("rec-%d", m.nextID),
		Date:        parsed,
		TimeRecords: []domain.TimeRecord{{StartTime: start, EndTime: end}},
		TotalTime:   hours,
		Rate:        m.rate,
		Amount:      amount,
		Currency:    m.currency.Code,
	}
	m.nextID++
	m.records[record.ID] = record
	return record
}

// setupTestAppWithMockBusinessAPI creates an App writing to a buffer, with
// colors off and the clock fixed at 2024-03-15 10:00
func setupTestAppWithMockBusinessAPI(t *testing.T) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()

	SetColorEnabled(false)
	originalNow := timeNow
	timeNow = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local) }
	t.Cleanup(func() {
		timeNow = originalNow
		SetColorEnabled(true)
	})

	mock := newMockBusinessAPI()
	cfg := config.NewConfig()
	out := &bytes.Buffer{}

	app := NewAppWithConfig(mock, cfg, nil).WithOutput(out)
	app.WithPrompts(PromptKit{Prompt: failingPrompt(t), Confirm: AlwaysYes()}, true)
	return app, mock, out
}

// failingPrompt fails the test when a command asks a question it should not
func failingPrompt(t *testing.T) PromptFunc {
	return func(prompt string, initial string) (string, error) {
		t.Errorf("unexpected prompt: %s", prompt)
		return "", fmt.Errorf("unexpected prompt")
	}
}

// scriptedPrompts answers prompts in order from answers
func scriptedPrompts(answers ...string) PromptKit {
	kit := NewAccessiblePromptKit(strings.NewReader(strings.Join(answers, "\n")+"\n"), &bytes.Buffer{})
	return kit
}
