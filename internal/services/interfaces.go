package services

import (
	"context"
	"time"

	"worktime/internal/domain"
)

// Conflict describes a candidate slot colliding with a time record that is
// already stored for the same day
type Conflict struct {
	SlotIndex int               `json:"slot_index"`
	Slot      domain.TimeSlot   `json:"slot"`
	RecordID  string            `json:"record_id"`
	Existing  domain.TimeRecord `json:"existing"`
}

// OverlapChecker detects colliding intervals within a day and against stored records
type OverlapChecker interface {
	HasIntraDayOverlap(slots []domain.TimeSlot, editingIndex int) bool
	HasCrossRecordOverlap(slots []domain.TimeSlot, date time.Time, existing []domain.WorkRecord) bool
	FindCrossRecordConflicts(slots []domain.TimeSlot, date time.Time, existing []domain.WorkRecord) []Conflict
}

// Calculator turns slots, breaks and a rate into worked time and pay.
// The boolean result is false when there is nothing to publish.
type Calculator interface {
	Calculate(slots []domain.TimeSlot, breakHours, rate float64) (domain.CalculationResult, bool)
}

// RecordBuilder finalizes a calculated entry into a WorkRecord
type RecordBuilder interface {
	Build(date time.Time, slots []domain.TimeSlot, breakHours, rate float64, calc domain.CalculationResult) (domain.WorkRecord, error)
}

// ReportingService handles aggregation and reporting over stored records
type ReportingService interface {
	// Pure aggregation
	Aggregate(records []domain.WorkRecord, filter domain.RecordFilter) domain.Totals
	FilterRecords(records []domain.WorkRecord, filter domain.RecordFilter) []domain.WorkRecord

	// Storage backed views
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.WorkRecord, error)
	GetTotals(ctx context.Context, filter domain.RecordFilter) (*domain.Totals, error)
	GetRecord(ctx context.Context, id string) (*domain.WorkRecord, error)
	BuildMonthlyReport(ctx context.Context, month time.Time, currency string) (*domain.MonthlyReport, error)
}

// EntryService drives one day's edit session. Every operation takes the
// session by value and returns the updated copy; on error the input session
// is returned unchanged.
type EntryService interface {
	NewSession(date time.Time) domain.EditSession

	// Slot editing
	SetField(s domain.EditSession, index int, field domain.SlotField, raw string) (domain.EditSession, error)
	AddSlot(s domain.EditSession) (domain.EditSession, error)
	RemoveSlot(s domain.EditSession, index int) (domain.EditSession, error)

	// Settings for the entry
	SetBreakHours(s domain.EditSession, raw string) (domain.EditSession, error)
	SetRate(s domain.EditSession, raw string) (domain.EditSession, error)
	SetDate(s domain.EditSession, date time.Time) domain.EditSession

	// Explicit triggers
	Calculate(s domain.EditSession) (domain.EditSession, bool)
	Save(ctx context.Context, s domain.EditSession) (*domain.WorkRecord, domain.EditSession, error)

	DeleteRecord(ctx context.Context, id string) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	OverlapChecker   OverlapChecker
	Calculator       Calculator
	RecordBuilder    RecordBuilder
	ReportingService ReportingService
	EntryService     EntryService
}
