package services

import (
	"time"

	"github.com/google/uuid"

	"worktime/internal/domain"
	"worktime/internal/errors"
)

// recordBuilderImpl implements the RecordBuilder interface
type recordBuilderImpl struct {
	newID func() string
	now   func() time.Time
}

// NewRecordBuilder creates a new RecordBuilder instance
func NewRecordBuilder() RecordBuilder {
	return &recordBuilderImpl{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Build converts the complete slots into time records and re-derives total
// time and amount from calc. A derived amount that differs from the
// calculated one means calc is stale and nothing is built.
func (b *recordBuilderImpl) Build(date time.Time, slots []domain.TimeSlot, breakHours, rate float64, calc domain.CalculationResult) (domain.WorkRecord, error) {
	timeRecords := make([]domain.TimeRecord, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsComplete() {
			continue
		}
		if slot.EndOffset() <= slot.StartOffset() {
			return domain.WorkRecord{}, errors.NewInvalidOrderError(slot.Start(), slot.End())
		}
		timeRecords = append(timeRecords, domain.NewTimeRecord(slot))
	}
	if len(timeRecords) == 0 {
		return domain.WorkRecord{}, errors.NewValidationError("a work record needs at least one complete slot", nil)
	}

	amount := amountFor(calc.TotalMinutes, rate)
	if amount != calc.Amount {
		return domain.WorkRecord{}, errors.NewStaleCalculationError(calc.Amount, amount)
	}

	return domain.WorkRecord{
		ID:          b.newID(),
		Date:        domain.DateOnly(date),
		TimeRecords: timeRecords,
		BreakHours:  breakHours,
		TotalTime:   domain.RoundAmount(float64(calc.TotalMinutes) / 60),
		Rate:        rate,
		Amount:      amount,
		CreatedAt:   b.now().UTC(),
	}, nil
}
