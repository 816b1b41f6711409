package validation

import (
	"fmt"
	"strconv"
	"strings"

	"worktime/internal/domain"
	"worktime/internal/errors"
)

// SlotValidator validates single-field edits of a time slot
type SlotValidator struct {
	validator *Validator
}

// NewSlotValidator creates a new slot validator
func NewSlotValidator() *SlotValidator {
	return &SlotValidator{
		validator: NewValidator(),
	}
}

// ValidateField applies raw to field of current. On rejection the returned
// slot is current, unchanged.
//
// raw must be empty, which unsets the field, or one or two digits within the
// field's range. Once the edited slot is complete its end must be after its start.
func (sv *SlotValidator) ValidateField(current domain.TimeSlot, field domain.SlotField, raw string) (domain.TimeSlot, error) {
	value, err := sv.ParseFieldValue(field, raw)
	if err != nil {
		return current, err
	}

	updated := current.With(field, value)
	if updated.IsComplete() && updated.EndOffset() <= updated.StartOffset() {
		return current, errors.NewInvalidOrderError(updated.Start(), updated.End())
	}

	return updated, nil
}

// ParseFieldValue converts a raw field input into its value. Empty input
// yields nil.
func (sv *SlotValidator) ParseFieldValue(field domain.SlotField, raw string) (*int, error) {
	if field < domain.StartHours || field > domain.EndMinutes {
		return nil, errors.NewInvalidInputError("field", field, "unknown slot field")
	}
	if raw == "" {
		return nil, nil
	}

	if !sv.validator.IsValidFieldInput(raw) {
		return nil, errors.NewInvalidFieldValueError(field.String(), raw, field.Max())
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value > field.Max() {
		return nil, errors.NewInvalidFieldValueError(field.String(), raw, field.Max())
	}

	return &value, nil
}

// ShouldAdvanceFocus reports whether an accepted input fills its field, so an
// interactive front end can move to domain.SlotField.Next.
func ShouldAdvanceFocus(raw string) bool {
	return len(raw) == 2
}

// SplitSlot splits an "HH:MM-HH:MM" slot into the raw inputs of its four
// fields, in domain.SlotFields order. The parts are not validated here.
func SplitSlot(input string) ([]string, error) {
	start, end, found := strings.Cut(strings.TrimSpace(input), "-")
	if !found {
		return nil, errors.NewInvalidInputError("slot", input, "expected HH:MM-HH:MM")
	}

	startHours, startMinutes, ok := strings.Cut(strings.TrimSpace(start), ":")
	if !ok {
		return nil, errors.NewInvalidInputError("slot", input, fmt.Sprintf("start %q is not HH:MM", start))
	}
	endHours, endMinutes, ok := strings.Cut(strings.TrimSpace(end), ":")
	if !ok {
		return nil, errors.NewInvalidInputError("slot", input, fmt.Sprintf("end %q is not HH:MM", end))
	}

	return []string{startHours, startMinutes, endHours, endMinutes}, nil
}
