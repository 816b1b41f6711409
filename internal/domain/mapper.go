package domain

import (
	"worktime/internal/repository/sqlite"
)

// WorkRecordMapper handles conversion between domain and database WorkRecord models.
type WorkRecordMapper struct{}

// NewWorkRecordMapper creates a new WorkRecordMapper instance.
func NewWorkRecordMapper() *WorkRecordMapper {
	return &WorkRecordMapper{}
}

// ToDatabase converts a domain WorkRecord to a database WorkRecord.
func (m *WorkRecordMapper) ToDatabase(record WorkRecord) sqlite.WorkRecord {
	timeRecords := make([]sqlite.TimeRecord, len(record.TimeRecords))
	for i, tr := range record.TimeRecords {
		timeRecords[i] = sqlite.TimeRecord{
			WorkRecordID: record.ID,
			Position:     i,
			StartTime:    tr.StartTime,
			EndTime:      tr.EndTime,
		}
	}

	return sqlite.WorkRecord{
		ID:          record.ID,
		Date:        DateOnly(record.Date),
		BreakHours:  record.BreakHours,
		TotalTime:   record.TotalTime,
		Rate:        record.Rate,
		Amount:      record.Amount,
		Currency:    record.Currency,
		CreatedAt:   record.CreatedAt,
		TimeRecords: timeRecords,
	}
}

// FromDatabase converts a database WorkRecord to a domain WorkRecord.
func (m *WorkRecordMapper) FromDatabase(dbRecord sqlite.WorkRecord) WorkRecord {
	timeRecords := make([]TimeRecord, len(dbRecord.TimeRecords))
	for i, tr := range dbRecord.TimeRecords {
		timeRecords[i] = TimeRecord{StartTime: tr.StartTime, EndTime: tr.EndTime}
	}

	return WorkRecord{
		ID:          dbRecord.ID,
		Date:        dbRecord.Date,
		TimeRecords: timeRecords,
		BreakHours:  dbRecord.BreakHours,
		TotalTime:   dbRecord.TotalTime,
		Rate:        dbRecord.Rate,
		Amount:      dbRecord.Amount,
		Currency:    dbRecord.Currency,
		CreatedAt:   dbRecord.CreatedAt,
	}
}

// FromDatabaseSlice converts database WorkRecords to domain WorkRecords.
// Nil entries are skipped.
func (m *WorkRecordMapper) FromDatabaseSlice(dbRecords []*sqlite.WorkRecord) []WorkRecord {
	records := make([]WorkRecord, 0, len(dbRecords))
	for _, dbRecord := range dbRecords {
		if dbRecord == nil {
			continue
		}
		records = append(records, m.FromDatabase(*dbRecord))
	}
	return records
}

// FilterMapper converts record filters into repository search options.
type FilterMapper struct{}

// NewFilterMapper creates a new FilterMapper instance.
func NewFilterMapper() *FilterMapper {
	return &FilterMapper{}
}

// ToDatabase converts a domain RecordFilter to database SearchOptions.
func (m *FilterMapper) ToDatabase(filter RecordFilter) sqlite.SearchOptions {
	return sqlite.SearchOptions{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		MinHours:  filter.MinHours,
		MaxHours:  filter.MaxHours,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	WorkRecord *WorkRecordMapper
	Filter     *FilterMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		WorkRecord: NewWorkRecordMapper(),
		Filter:     NewFilterMapper(),
	}
}
