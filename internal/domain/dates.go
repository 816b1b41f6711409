package domain

import (
	"math"
	"time"
)

// DateLayout is the calendar-day format used for storage and display.
const DateLayout = "2006-01-02"

// MonthLayout is the format used to select a month.
const MonthLayout = "2006-01"

// DateOnly returns the calendar day of t, in t's own location, as midnight UTC.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay returns true if a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDate parses a YYYY-MM-DD calendar day.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseMonth parses a YYYY-MM month into its first day.
func ParseMonth(value string) (time.Time, error) {
	return time.Parse(MonthLayout, value)
}

// RoundAmount rounds to two decimals, halves away from zero.
func RoundAmount(x float64) float64 {
	return math.Round(x*100) / 100
}
