package domain

import (
	"strings"
	"time"
)

// WorkRecord is one day's saved entry. Records are never modified after they
// are built.
type WorkRecord struct {
	ID          string       `json:"id" yaml:"id"`
	Date        time.Time    `json:"date" yaml:"date"`
	TimeRecords []TimeRecord `json:"time_records" yaml:"time_records"`
	BreakHours  float64      `json:"break_hours" yaml:"break_hours"`
	TotalTime   float64      `json:"total_time" yaml:"total_time"`
	Rate        float64      `json:"rate" yaml:"rate"`
	Amount      float64      `json:"amount" yaml:"amount"`
	Currency    string       `json:"currency" yaml:"currency"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
}

// Clone returns a deep copy of the record.
func (wr WorkRecord) Clone() WorkRecord {
	clone := wr
	if wr.TimeRecords != nil {
		clone.TimeRecords = make([]TimeRecord, len(wr.TimeRecords))
		copy(clone.TimeRecords, wr.TimeRecords)
	}
	return clone
}

// SlotSummary joins the record's intervals for display.
func (wr WorkRecord) SlotSummary() string {
	parts := make([]string, len(wr.TimeRecords))
	for i, tr := range wr.TimeRecords {
		parts[i] = tr.String()
	}
	return strings.Join(parts, ", ")
}

// DateString returns the calendar day as YYYY-MM-DD.
func (wr WorkRecord) DateString() string {
	return wr.Date.Format(DateLayout)
}
