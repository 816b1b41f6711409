package domain

import "time"

// RecordFilter restricts a record collection. Nil bounds are unconstrained;
// all bounds are inclusive.
type RecordFilter struct {
	StartDate *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	MinHours  *float64   `json:"min_hours,omitempty" yaml:"min_hours,omitempty"`
	MaxHours  *float64   `json:"max_hours,omitempty" yaml:"max_hours,omitempty"`
}

// MonthFilter returns a filter covering the calendar month containing month.
func MonthFilter(month time.Time) RecordFilter {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return RecordFilter{StartDate: &start, EndDate: &end}
}

// Matches reports whether the record passes every bound of the filter.
// Date bounds compare calendar days only.
func (f RecordFilter) Matches(record WorkRecord) bool {
	day := DateOnly(record.Date)
	if f.StartDate != nil && day.Before(DateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && day.After(DateOnly(*f.EndDate)) {
		return false
	}
	if f.MinHours != nil && record.TotalTime < *f.MinHours {
		return false
	}
	if f.MaxHours != nil && record.TotalTime > *f.MaxHours {
		return false
	}
	return true
}

// IsEmpty returns true when no bound is set.
func (f RecordFilter) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.MinHours == nil && f.MaxHours == nil
}

// Totals is the aggregate of a filtered record collection.
type Totals struct {
	TotalHours  float64 `json:"total_hours" yaml:"total_hours"`
	TotalAmount float64 `json:"total_amount" yaml:"total_amount"`
	RecordCount int     `json:"record_count" yaml:"record_count"`
}
