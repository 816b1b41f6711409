package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	return assign(dest, ts.data)
}

// TestRows implements the Rows interface for testing
type TestRows struct {
	rows       [][]interface{}
	currentRow int
	err        error
}

func (tr *TestRows) Next() bool {
	if tr.err != nil {
		return false
	}
	if tr.currentRow >= len(tr.rows) {
		return false
	}
	tr.currentRow++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	if tr.err != nil {
		return tr.err
	}
	if tr.currentRow == 0 || tr.currentRow > len(tr.rows) {
		return errors.New("no current row")
	}
	return assign(dest, tr.rows[tr.currentRow-1])
}

func (tr *TestRows) Err() error {
	return tr.err
}

func assign(dest []interface{}, data []interface{}) error {
	if len(dest) != len(data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = data[i].(int64)
		case *int:
			*v = data[i].(int)
		case *float64:
			*v = data[i].(float64)
		case *string:
			*v = data[i].(string)
		}
	}
	return nil
}

func workRecordRow(id, date string) []interface{} {
	return []interface{}{id, date, 0.5, 3.0, 20.0, 60.0, "EUR", "2024-03-01T18:00:00Z"}
}

func TestScanWorkRecord(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *WorkRecord
		expectError bool
	}{
		{
			name:    "Valid work record",
			scanner: &TestScanner{data: workRecordRow("rec-1", "2024-03-01")},
			expected: &WorkRecord{
				ID:         "rec-1",
				Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				BreakHours: 0.5,
				TotalTime:  3,
				Rate:       20,
				Amount:     60,
				Currency:   "EUR",
				CreatedAt:  time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
			},
		},
		{
			name:        "Invalid stored date",
			scanner:     &TestScanner{data: workRecordRow("rec-2", "yesterday")},
			expectError: true,
		},
		{
			name:        "Scanner error",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanWorkRecord(tt.scanner)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected.ID, result.ID)
			assert.True(t, tt.expected.Date.Equal(result.Date))
			assert.True(t, tt.expected.CreatedAt.Equal(result.CreatedAt))
			assert.Equal(t, tt.expected.BreakHours, result.BreakHours)
			assert.Equal(t, tt.expected.TotalTime, result.TotalTime)
			assert.Equal(t, tt.expected.Rate, result.Rate)
			assert.Equal(t, tt.expected.Amount, result.Amount)
			assert.Equal(t, tt.expected.Currency, result.Currency)
		})
	}
}

func TestScanWorkRecords(t *testing.T) {
	tests := []struct {
		name          string
		rows          *TestRows
		expectedCount int
		expectError   bool
	}{
		{
			name: "Multiple rows",
			rows: &TestRows{rows: [][]interface{}{
				workRecordRow("rec-1", "2024-03-01"),
				workRecordRow("rec-2", "2024-03-02"),
			}},
			expectedCount: 2,
		},
		{
			name:          "Empty result",
			rows:          &TestRows{},
			expectedCount: 0,
		},
		{
			name:        "Rows error",
			rows:        &TestRows{err: errors.New("connection lost")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanWorkRecords(tt.rows)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.expectedCount)
		})
	}
}

func TestScanTimeRecords(t *testing.T) {
	rows := &TestRows{rows: [][]interface{}{
		{int64(1), "rec-1", 0, "09:00", "12:00"},
		{int64(2), "rec-1", 1, "13:00", "17:00"},
	}}

	result, err := ScanTimeRecords(rows)

	assert.NoError(t, err)
	assert.Equal(t, []*TimeRecord{
		{ID: 1, WorkRecordID: "rec-1", Position: 0, StartTime: "09:00", EndTime: "12:00"},
		{ID: 2, WorkRecordID: "rec-1", Position: 1, StartTime: "13:00", EndTime: "17:00"},
	}, result)
}
