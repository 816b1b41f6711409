package domain

// ReportRow is one line of a monthly report.
type ReportRow struct {
	Date       string  `json:"date" yaml:"date"`
	Slots      string  `json:"slots" yaml:"slots"`
	BreakHours float64 `json:"break_hours" yaml:"break_hours"`
	TotalTime  float64 `json:"total_time" yaml:"total_time"`
	Amount     float64 `json:"amount" yaml:"amount"`
}

// MonthlyReport is the data handed to report renderers for one month.
type MonthlyReport struct {
	Month          string      `json:"month" yaml:"month"`
	CurrencyCode   string      `json:"currency_code" yaml:"currency_code"`
	CurrencySymbol string      `json:"currency_symbol" yaml:"currency_symbol"`
	Rows           []ReportRow `json:"rows" yaml:"rows"`
	Totals         Totals      `json:"totals" yaml:"totals"`
}

// NewReportRow flattens a record into a report row.
func NewReportRow(record WorkRecord) ReportRow {
	return ReportRow{
		Date:       record.DateString(),
		Slots:      record.SlotSummary(),
		BreakHours: record.BreakHours,
		TotalTime:  record.TotalTime,
		Amount:     record.Amount,
	}
}
