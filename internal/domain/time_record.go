package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeRecord is a finalized interval of a saved WorkRecord.
type TimeRecord struct {
	StartTime string `json:"start_time" yaml:"start_time"`
	EndTime   string `json:"end_time" yaml:"end_time"`
}

// NewTimeRecord converts a complete slot into a TimeRecord.
func NewTimeRecord(slot TimeSlot) TimeRecord {
	return TimeRecord{
		StartTime: FormatClock(slot.StartOffset()),
		EndTime:   FormatClock(slot.EndOffset()),
	}
}

// Offsets decodes the record into minutes since midnight.
func (tr TimeRecord) Offsets() (int, int, error) {
	start, err := ParseClock(tr.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(tr.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// String renders the record as HH:MM-HH:MM.
func (tr TimeRecord) String() string {
	return tr.StartTime + "-" + tr.EndTime
}

// FormatClock renders minutes since midnight as zero-padded HH:MM.
func FormatClock(offset int) string {
	return fmt.Sprintf("%02d:%02d", offset/60, offset%60)
}

// ParseClock parses HH:MM into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hours in %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", value)
	}

	return hours*60 + minutes, nil
}
