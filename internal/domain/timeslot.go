package domain

import "fmt"

// SlotField identifies one of the four editable fields of a TimeSlot.
type SlotField int

const (
	StartHours SlotField = iota
	StartMinutes
	EndHours
	EndMinutes
)

// SlotFields lists the fields in input order.
var SlotFields = []SlotField{StartHours, StartMinutes, EndHours, EndMinutes}

// String returns the field name used in messages and flags.
func (f SlotField) String() string {
	switch f {
	case StartHours:
		return "start_hours"
	case StartMinutes:
		return "start_minutes"
	case EndHours:
		return "end_hours"
	case EndMinutes:
		return "end_minutes"
	default:
		return "unknown"
	}
}

// Max returns the largest value the field accepts.
func (f SlotField) Max() int {
	if f == StartHours || f == EndHours {
		return 23
	}
	return 59
}

// Next returns the field that receives focus after f is filled in.
// The last field has no successor.
func (f SlotField) Next() (SlotField, bool) {
	if f >= EndMinutes || f < StartHours {
		return f, false
	}
	return f + 1, true
}

// TimeSlot is a candidate interval within a day. Each field is nil until the
// user sets it.
type TimeSlot struct {
	StartHours   *int `json:"start_hours,omitempty" yaml:"start_hours,omitempty"`
	StartMinutes *int `json:"start_minutes,omitempty" yaml:"start_minutes,omitempty"`
	EndHours     *int `json:"end_hours,omitempty" yaml:"end_hours,omitempty"`
	EndMinutes   *int `json:"end_minutes,omitempty" yaml:"end_minutes,omitempty"`
}

// NewTimeSlot creates a complete slot from clock values.
func NewTimeSlot(startHours, startMinutes, endHours, endMinutes int) TimeSlot {
	return TimeSlot{
		StartHours:   &startHours,
		StartMinutes: &startMinutes,
		EndHours:     &endHours,
		EndMinutes:   &endMinutes,
	}
}

// IsComplete returns true when all four fields are set.
func (ts TimeSlot) IsComplete() bool {
	return ts.StartHours != nil && ts.StartMinutes != nil && ts.EndHours != nil && ts.EndMinutes != nil
}

// StartOffset returns the start in minutes since midnight. Only meaningful
// for complete slots.
func (ts TimeSlot) StartOffset() int {
	return valueOf(ts.StartHours)*60 + valueOf(ts.StartMinutes)
}

// EndOffset returns the end in minutes since midnight. Only meaningful for
// complete slots.
func (ts TimeSlot) EndOffset() int {
	return valueOf(ts.EndHours)*60 + valueOf(ts.EndMinutes)
}

// Duration returns the slot length in minutes, or 0 for incomplete slots.
func (ts TimeSlot) Duration() int {
	if !ts.IsComplete() {
		return 0
	}
	return ts.EndOffset() - ts.StartOffset()
}

// Field returns the current value of f.
func (ts TimeSlot) Field(f SlotField) *int {
	switch f {
	case StartHours:
		return ts.StartHours
	case StartMinutes:
		return ts.StartMinutes
	case EndHours:
		return ts.EndHours
	case EndMinutes:
		return ts.EndMinutes
	default:
		return nil
	}
}

// With returns a copy of the slot with f set to v. A nil v unsets the field.
func (ts TimeSlot) With(f SlotField, v *int) TimeSlot {
	if v != nil {
		copied := *v
		v = &copied
	}
	switch f {
	case StartHours:
		ts.StartHours = v
	case StartMinutes:
		ts.StartMinutes = v
	case EndHours:
		ts.EndHours = v
	case EndMinutes:
		ts.EndMinutes = v
	}
	return ts
}

// Start returns the start as HH:MM, or an empty string while unset.
func (ts TimeSlot) Start() string {
	if ts.StartHours == nil || ts.StartMinutes == nil {
		return ""
	}
	return FormatClock(ts.StartOffset())
}

// End returns the end as HH:MM, or an empty string while unset.
func (ts TimeSlot) End() string {
	if ts.EndHours == nil || ts.EndMinutes == nil {
		return ""
	}
	return FormatClock(ts.EndOffset())
}

// String renders the slot as start-end with unset parts shown as "--".
func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s:%s-%s:%s",
		formatPart(ts.StartHours), formatPart(ts.StartMinutes),
		formatPart(ts.EndHours), formatPart(ts.EndMinutes))
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && e1 > s2
}

func valueOf(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func formatPart(p *int) string {
	if p == nil {
		return "--"
	}
	return fmt.Sprintf("%02d", *p)
}
