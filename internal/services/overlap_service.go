package services

import (
	"time"

	"go.uber.org/zap"

	"worktime/internal/domain"
)

// overlapCheckerImpl implements the OverlapChecker interface
type overlapCheckerImpl struct {
	logger *zap.Logger
}

// NewOverlapChecker creates a new OverlapChecker instance
func NewOverlapChecker(logger *zap.Logger) OverlapChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &overlapCheckerImpl{logger: logger}
}

// HasIntraDayOverlap checks the slot at editingIndex against every other
// complete slot. Incomplete slots never overlap.
func (o *overlapCheckerImpl) HasIntraDayOverlap(slots []domain.TimeSlot, editingIndex int) bool {
	if editingIndex < 0 || editingIndex >= len(slots) {
		return false
	}
	editing := slots[editingIndex]
	if !editing.IsComplete() {
		return false
	}

	for i, other := range slots {
		if i == editingIndex || !other.IsComplete() {
			continue
		}
		if domain.Overlaps(editing.StartOffset(), editing.EndOffset(), other.StartOffset(), other.EndOffset()) {
			return true
		}
	}
	return false
}

// HasCrossRecordOverlap reports whether any complete slot collides with a
// record stored for the same calendar day
func (o *overlapCheckerImpl) HasCrossRecordOverlap(slots []domain.TimeSlot, date time.Time, existing []domain.WorkRecord) bool {
	return len(o.findConflicts(slots, date, existing, true)) > 0
}

// FindCrossRecordConflicts lists every collision between complete slots and
// the time records stored for the same calendar day
func (o *overlapCheckerImpl) FindCrossRecordConflicts(slots []domain.TimeSlot, date time.Time, existing []domain.WorkRecord) []Conflict {
	return o.findConflicts(slots, date, existing, false)
}

func (o *overlapCheckerImpl) findConflicts(slots []domain.TimeSlot, date time.Time, existing []domain.WorkRecord, firstOnly bool) []Conflict {
	var conflicts []Conflict

	for _, record := range existing {
		if !domain.SameDay(record.Date, date) {
			continue
		}

		for _, tr := range record.TimeRecords {
			start, end, err := tr.Offsets()
			if err != nil {
				o.logger.Warn("skipping undecodable time record",
					zap.String("record_id", record.ID),
					zap.String("time_record", tr.String()),
					zap.Error(err))
				continue
			}

			for i, slot := range slots {
				if !slot.IsComplete() {
					continue
				}
				if domain.Overlaps(slot.StartOffset(), slot.EndOffset(), start, end) {
					conflicts = append(conflicts, Conflict{
						SlotIndex: i,
						Slot:      slot,
						RecordID:  record.ID,
						Existing:  tr,
					})
					if firstOnly {
						return conflicts
					}
				}
			}
		}
	}

	return conflicts
}
