package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"worktime/internal/config"
	"worktime/internal/domain"
	"worktime/internal/errors"
	"worktime/internal/repository/sqlite"
	"worktime/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	repo          sqlite.Repository
	config        *config.Config
	mapper        *domain.Mapper
	slotValidator *validation.SlotValidator
	validator     *validation.Validator
	checker       OverlapChecker
	calculator    Calculator
	builder       RecordBuilder
	logger        *zap.Logger
}

// NewEntryService creates a new EntryService instance
func NewEntryService(repo sqlite.Repository, cfg *config.Config, checker OverlapChecker, calculator Calculator, builder RecordBuilder, logger *zap.Logger) EntryService {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &entryServiceImpl{
		repo:          repo,
		config:        cfg,
		mapper:        domain.NewMapper(),
		slotValidator: validation.NewSlotValidator(),
		validator:     validation.NewValidatorWithConfig(cfg),
		checker:       checker,
		calculator:    calculator,
		builder:       builder,
		logger:        logger,
	}
}

// NewSession starts an entry for date with one empty slot and the configured rate
func (e *entryServiceImpl) NewSession(date time.Time) domain.EditSession {
	return domain.EditSession{
		Date:     domain.DateOnly(date),
		Slots:    []domain.TimeSlot{{}},
		Rate:     e.config.Billing.DefaultRate,
		Currency: domain.LookupCurrency(e.config.Billing.Currency).Code,
	}
}

// SetField applies one raw field input to the slot at index
func (e *entryServiceImpl) SetField(s domain.EditSession, index int, field domain.SlotField, raw string) (domain.EditSession, error) {
	if index < 0 || index >= len(s.Slots) {
		return s, errors.NewInvalidInputError("slot", index, fmt.Sprintf("no slot at position %d", index+1))
	}

	updated, err := e.slotValidator.ValidateField(s.Slots[index], field, raw)
	if err != nil {
		e.logger.Debug("rejected field input",
			zap.Int("slot", index),
			zap.Stringer("field", field),
			zap.String("raw", raw),
			zap.Error(err))
		return s, err
	}

	next := s.Clone()
	next.Slots[index] = updated
	if e.checker.HasIntraDayOverlap(next.Slots, index) {
		e.logger.Debug("rejected overlapping slot", zap.Int("slot", index), zap.Stringer("value", updated))
		return s, errors.NewIntraDayOverlapError(index, updated.String())
	}

	next.Result = nil
	return next, nil
}

// AddSlot appends an empty slot once the last slot is complete
func (e *entryServiceImpl) AddSlot(s domain.EditSession) (domain.EditSession, error) {
	if last := len(s.Slots) - 1; last >= 0 && !s.Slots[last].IsComplete() {
		return s, errors.NewIncompleteSlotError(last)
	}

	next := s.Clone()
	next.Slots = append(next.Slots, domain.TimeSlot{})
	return next, nil
}

// RemoveSlot removes the slot at index. The first slot is never removed.
func (e *entryServiceImpl) RemoveSlot(s domain.EditSession, index int) (domain.EditSession, error) {
	if index == 0 {
		return s, errors.NewInvalidInputError("slot", index, "the first slot cannot be removed")
	}
	if index < 0 || index >= len(s.Slots) {
		return s, errors.NewInvalidInputError("slot", index, fmt.Sprintf("no slot at position %d", index+1))
	}

	next := s.Clone()
	next.Slots = append(next.Slots[:index], next.Slots[index+1:]...)
	next.Result = nil
	return next, nil
}

// SetBreakHours parses and applies the break duration
func (e *entryServiceImpl) SetBreakHours(s domain.EditSession, raw string) (domain.EditSession, error) {
	hours, err := validation.ParseBreakHours(raw)
	if err != nil {
		return s, err
	}
	if !e.validator.IsValidBreakHours(hours) {
		return s, errors.NewInvalidInputError("break_hours", raw,
			fmt.Sprintf("must not exceed %g hours", e.config.Billing.MaxBreakHours))
	}

	next := s.Clone()
	next.BreakHours = hours
	next.Result = nil
	return next, nil
}

// SetRate parses and applies the hourly rate
func (e *entryServiceImpl) SetRate(s domain.EditSession, raw string) (domain.EditSession, error) {
	rate, err := validation.ParseRate(raw)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	next.Rate = rate
	next.Result = nil
	return next, nil
}

// SetDate moves the entry to another day. The calculation does not depend on
// the date and is kept.
func (e *entryServiceImpl) SetDate(s domain.EditSession, date time.Time) domain.EditSession {
	next := s.Clone()
	next.Date = domain.DateOnly(date)
	return next
}

// Calculate publishes a result on the session when the inputs allow it
func (e *entryServiceImpl) Calculate(s domain.EditSession) (domain.EditSession, bool) {
	result, ok := e.calculator.Calculate(s.Slots, s.BreakHours, s.Rate)
	if !ok {
		return s, false
	}

	next := s.Clone()
	next.Result = &result
	return next, true
}

// Save builds the record and stores it unless it collides with a record
// already stored for the same day. The collision check and the insert run in
// one storage transaction. On success a fresh session for the same date and
// rate is returned.
func (e *entryServiceImpl) Save(ctx context.Context, s domain.EditSession) (*domain.WorkRecord, domain.EditSession, error) {
	if s.Result == nil {
		return nil, s, errors.NewNotCalculatedError()
	}

	record, err := e.builder.Build(s.Date, s.Slots, s.BreakHours, s.Rate, *s.Result)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeStaleCalculation) {
			e.logger.Error("calculation is stale", zap.Error(err))
		}
		return nil, s, err
	}
	record.Currency = s.Currency

	dbRecord := e.mapper.WorkRecord.ToDatabase(record)
	check := func(existing []*sqlite.WorkRecord) error {
		stored := e.mapper.WorkRecord.FromDatabaseSlice(existing)
		conflicts := e.checker.FindCrossRecordConflicts(s.Slots, s.Date, stored)
		if len(conflicts) == 0 {
			return nil
		}
		first := conflicts[0]
		return errors.NewScheduleConflictError(record.DateString(), first.Slot.Start()+"-"+first.Slot.End(), first.Existing.String()).
			WithContext("conflicts", len(conflicts))
	}

	if err := e.repo.CreateWorkRecordChecked(ctx, &dbRecord, check); err != nil {
		if errors.ShouldLogError(err) {
			e.logger.Error("failed to save work record", zap.String("date", record.DateString()), zap.Error(err))
		} else {
			e.logger.Debug("work record rejected", zap.String("date", record.DateString()), zap.Error(err))
		}
		return nil, s, err
	}
	record.CreatedAt = dbRecord.CreatedAt

	e.logger.Info("saved work record",
		zap.String("id", record.ID),
		zap.String("date", record.DateString()),
		zap.Float64("total_time", record.TotalTime),
		zap.Float64("amount", record.Amount))

	reset := domain.EditSession{
		Date:     s.Date,
		Slots:    []domain.TimeSlot{{}},
		Rate:     s.Rate,
		Currency: s.Currency,
	}
	return &record, reset, nil
}

// DeleteRecord removes a stored record
func (e *entryServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := e.repo.DeleteWorkRecord(ctx, id); err != nil {
		if errors.ShouldLogError(err) {
			e.logger.Error("failed to delete work record", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
