package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanWorkRecord scans a single work record (without its time records) from a database row
func ScanWorkRecord(scanner Scanner) (*WorkRecord, error) {
	record := &WorkRecord{}
	var date, createdAt string

	err := scanner.Scan(
		&record.ID,
		&date,
		&record.BreakHours,
		&record.TotalTime,
		&record.Rate,
		&record.Amount,
		&record.Currency,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.Date, err = ParseDateFromDB(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q for work record %s: %w", date, record.ID, err)
	}
	record.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q for work record %s: %w", createdAt, record.ID, err)
	}

	return record, nil
}

// ScanWorkRecords scans multiple work records from database rows
func ScanWorkRecords(rows Rows) ([]*WorkRecord, error) {
	var records []*WorkRecord
	for rows.Next() {
		record, err := ScanWorkRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanTimeRecord scans a single time record from a database row
func ScanTimeRecord(scanner Scanner) (*TimeRecord, error) {
	tr := &TimeRecord{}
	err := scanner.Scan(&tr.ID, &tr.WorkRecordID, &tr.Position, &tr.StartTime, &tr.EndTime)
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// ScanTimeRecords scans multiple time records from database rows
func ScanTimeRecords(rows Rows) ([]*TimeRecord, error) {
	var timeRecords []*TimeRecord
	for rows.Next() {
		tr, err := ScanTimeRecord(rows)
		if err != nil {
			return nil, err
		}
		timeRecords = append(timeRecords, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return timeRecords, nil
}
