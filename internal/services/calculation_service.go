package services

import (
	"math"

	"worktime/internal/domain"
)

// calculatorImpl implements the Calculator interface
type calculatorImpl struct{}

// NewCalculator creates a new Calculator instance
func NewCalculator() Calculator {
	return &calculatorImpl{}
}

// Calculate sums the durations of complete slots and subtracts the break.
// Nothing is published when the worked time is not positive or the numeric
// inputs are not usable.
func (c *calculatorImpl) Calculate(slots []domain.TimeSlot, breakHours, rate float64) (domain.CalculationResult, bool) {
	if !isFinite(rate) || !isFinite(breakHours) || breakHours < 0 {
		return domain.CalculationResult{}, false
	}

	worked := 0
	for _, slot := range slots {
		if d := slot.Duration(); d > 0 {
			worked += d
		}
	}

	breakMinutes := math.Round(breakHours * 60)
	if breakMinutes >= float64(worked) {
		return domain.CalculationResult{}, false
	}
	total := worked - int(breakMinutes)

	return domain.CalculationResult{
		TotalMinutes: total,
		Hours:        total / 60,
		Minutes:      total % 60,
		Amount:       amountFor(total, rate),
	}, true
}

// amountFor is shared by the calculator and the record builder so both derive
// the amount from the same expression.
func amountFor(totalMinutes int, rate float64) float64 {
	return domain.RoundAmount(float64(totalMinutes) / 60 * rate)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
