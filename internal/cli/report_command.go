package cli

import (
	"context"
	"fmt"

	"worktime/internal/domain"
	"worktime/internal/errors"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app      *App
	month    string
	currency string
	format   string
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App, month, currency, format string) *ReportCommand {
	return &ReportCommand{app: app, month: month, currency: currency, format: format}
}

// Execute runs the report command. An empty month means the current month.
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	format, err := parseFormat(c.format, c.app.config.Display.DefaultFormat)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	month := timeNow()
	if c.month != "" {
		month, err = domain.ParseMonth(c.month)
		if err != nil {
			return c.app.errorHandler.HandleSimple(errors.NewInvalidInputError("month", c.month, "expected YYYY-MM"))
		}
	}

	report, err := c.app.businessAPI.MonthlyReport(ctx, month, c.currency)
	if err != nil {
		return c.app.errorHandler.Handle("build report", err)
	}

	if format != FormatTable {
		return writeStructured(c.app.out, format, report)
	}

	fmt.Fprintf(c.app.out, "%s %s (%s)\n\n", Header("Work report"), report.Month, report.CurrencyCode)
	if len(report.Rows) == 0 {
		fmt.Fprintln(c.app.out, "No work records found")
		return nil
	}

	currency := domain.Currency{Code: report.CurrencyCode, Symbol: report.CurrencySymbol}
	timeFormat := c.app.config.Display.TimeFormat
	t := newTable("DATE", "SLOTS", "BREAK", "HOURS", "AMOUNT")
	for _, row := range report.Rows {
		t.Row(
			row.Date,
			formatSlotSummary(row.Slots, timeFormat),
			fmt.Sprintf("%.2f", row.BreakHours),
			fmt.Sprintf("%.2f", row.TotalTime),
			formatMoney(currency, row.Amount))
	}
	t.Row("TOTAL", "", "",
		fmt.Sprintf("%.2f", report.Totals.TotalHours),
		formatMoney(currency, report.Totals.TotalAmount))
	_, err = fmt.Fprintln(c.app.out, t.String())
	return err
}
