package domain

// CalculationResult is the outcome of an explicit calculate step. It lives
// only until the inputs change or the entry is saved.
type CalculationResult struct {
	TotalMinutes int     `json:"total_minutes" yaml:"total_minutes"`
	Hours        int     `json:"hours" yaml:"hours"`
	Minutes      int     `json:"minutes" yaml:"minutes"`
	Amount       float64 `json:"amount" yaml:"amount"`
}

// DecimalHours returns the total as fractional hours.
func (cr CalculationResult) DecimalHours() float64 {
	return float64(cr.TotalMinutes) / 60
}
