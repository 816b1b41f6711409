package sqlite

import "time"

// WorkRecord is the stored form of one day's entry
type WorkRecord struct {
	ID          string
	Date        time.Time // calendar day, stored as YYYY-MM-DD
	BreakHours  float64
	TotalTime   float64
	Rate        float64
	Amount      float64
	Currency    string
	CreatedAt   time.Time
	TimeRecords []TimeRecord
}

// TimeRecord is one stored interval of a work record.
// StartTime and EndTime are kept verbatim as HH:MM text.
type TimeRecord struct {
	ID           int64
	WorkRecordID string
	Position     int
	StartTime    string
	EndTime      string
}
