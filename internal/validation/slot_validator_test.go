package validation

import (
	"testing"

	"worktime/internal/domain"
	"worktime/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestSlotValidator_ValidateField_Accepts(t *testing.T) {
	sv := NewSlotValidator()

	tests := []struct {
		name     string
		field    domain.SlotField
		raw      string
		expected int
	}{
		{"single digit hour", domain.StartHours, "9", 9},
		{"padded hour", domain.StartHours, "09", 9},
		{"max hour", domain.EndHours, "23", 23},
		{"zero minutes", domain.StartMinutes, "0", 0},
		{"max minutes", domain.EndMinutes, "59", 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sv.ValidateField(domain.TimeSlot{}, tt.field, tt.raw)

			require.NoError(t, err)
			require.NotNil(t, result.Field(tt.field))
			assert.Equal(t, tt.expected, *result.Field(tt.field))
		})
	}
}

func TestSlotValidator_ValidateField_RejectsInvalidValues(t *testing.T) {
	sv := NewSlotValidator()
	current := domain.TimeSlot{StartHours: intPtr(8)}

	tests := []struct {
		name  string
		field domain.SlotField
		raw   string
	}{
		{"hour out of range", domain.StartHours, "24"},
		{"minutes out of range", domain.StartMinutes, "60"},
		{"three digits", domain.StartHours, "100"},
		{"letters", domain.StartHours, "ab"},
		{"negative", domain.EndHours, "-1"},
		{"decimal", domain.EndMinutes, "1.5"},
		{"whitespace", domain.StartHours, " 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sv.ValidateField(current, tt.field, tt.raw)

			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidFieldValue), "got %v", err)
			assert.Equal(t, current, result, "slot must be unchanged")
			assert.Equal(t, 8, *result.StartHours)
		})
	}
}

func TestSlotValidator_ValidateField_EmptyUnsets(t *testing.T) {
	sv := NewSlotValidator()
	current := domain.NewTimeSlot(9, 0, 12, 0)

	result, err := sv.ValidateField(current, domain.EndHours, "")

	require.NoError(t, err)
	assert.Nil(t, result.EndHours)
	assert.False(t, result.IsComplete())
	assert.NotNil(t, current.EndHours, "input slot must not be mutated")
}

func TestSlotValidator_ValidateField_InvalidOrder(t *testing.T) {
	sv := NewSlotValidator()

	tests := []struct {
		name    string
		current domain.TimeSlot
		field   domain.SlotField
		raw     string
	}{
		{
			name:    "end before start",
			current: domain.TimeSlot{StartHours: intPtr(12), StartMinutes: intPtr(0), EndHours: intPtr(9)},
			field:   domain.EndMinutes,
			raw:     "0",
		},
		{
			name:    "zero length",
			current: domain.TimeSlot{StartHours: intPtr(9), StartMinutes: intPtr(30), EndHours: intPtr(9)},
			field:   domain.EndMinutes,
			raw:     "30",
		},
		{
			name:    "moving start past end",
			current: domain.NewTimeSlot(9, 0, 10, 0),
			field:   domain.StartHours,
			raw:     "11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sv.ValidateField(tt.current, tt.field, tt.raw)

			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidOrder), "got %v", err)
			assert.Equal(t, tt.current, result, "edit must have no effect")
		})
	}
}

func TestSlotValidator_ValidateField_IncompleteSkipsOrderCheck(t *testing.T) {
	sv := NewSlotValidator()
	current := domain.TimeSlot{StartHours: intPtr(12), StartMinutes: intPtr(0)}

	result, err := sv.ValidateField(current, domain.EndHours, "9")

	require.NoError(t, err)
	assert.Equal(t, 9, *result.EndHours)
}

func TestSlotValidator_ValidateField_CompletesSlot(t *testing.T) {
	sv := NewSlotValidator()
	slot := domain.TimeSlot{}

	var err error
	for i, raw := range []string{"09", "00", "12", "00"} {
		slot, err = sv.ValidateField(slot, domain.SlotFields[i], raw)
		require.NoError(t, err)
	}

	assert.True(t, slot.IsComplete())
	assert.Equal(t, 540, slot.StartOffset())
	assert.Equal(t, 720, slot.EndOffset())
}

func TestSlotValidator_ValidateField_UnknownField(t *testing.T) {
	sv := NewSlotValidator()

	_, err := sv.ValidateField(domain.TimeSlot{}, domain.SlotField(7), "1")

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestShouldAdvanceFocus(t *testing.T) {
	assert.True(t, ShouldAdvanceFocus("09"))
	assert.False(t, ShouldAdvanceFocus("9"))
	assert.False(t, ShouldAdvanceFocus(""))
}

func TestSplitSlot(t *testing.T) {
	parts, err := SplitSlot(" 9:05-17:30 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "05", "17", "30"}, parts)

	for _, bad := range []string{"09:00", "0900-1000", "09:00-1000", ""} {
		_, err := SplitSlot(bad)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), "input %q", bad)
	}
}
