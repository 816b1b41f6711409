package domain

import "time"

// EditSession holds the in-progress entry for one day. Session operations
// take a session and return a modified copy.
type EditSession struct {
	Date       time.Time          `json:"date" yaml:"date"`
	Slots      []TimeSlot         `json:"slots" yaml:"slots"`
	BreakHours float64            `json:"break_hours" yaml:"break_hours"`
	Rate       float64            `json:"rate" yaml:"rate"`
	Currency   string             `json:"currency" yaml:"currency"`
	Result     *CalculationResult `json:"result,omitempty" yaml:"result,omitempty"`
}

// Clone returns a copy that shares no memory with the original.
func (s EditSession) Clone() EditSession {
	clone := s
	clone.Slots = make([]TimeSlot, len(s.Slots))
	for i, slot := range s.Slots {
		clone.Slots[i] = slot.
			With(StartHours, slot.StartHours).
			With(StartMinutes, slot.StartMinutes).
			With(EndHours, slot.EndHours).
			With(EndMinutes, slot.EndMinutes)
	}
	if s.Result != nil {
		result := *s.Result
		clone.Result = &result
	}
	return clone
}

// IsCalculated returns true when a current calculation is attached.
func (s EditSession) IsCalculated() bool {
	return s.Result != nil
}

// CompleteSlots returns the slots that have all four fields set.
func (s EditSession) CompleteSlots() []TimeSlot {
	complete := make([]TimeSlot, 0, len(s.Slots))
	for _, slot := range s.Slots {
		if slot.IsComplete() {
			complete = append(complete, slot)
		}
	}
	return complete
}
