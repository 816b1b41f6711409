package cli

import (
	"context"
	"fmt"
	"strconv"

	"worktime/internal/domain"
	"worktime/internal/errors"
)

// ListOptions holds the filters of the list command
type ListOptions struct {
	Month    string
	From     string
	To       string
	MinHours string
	MaxHours string
	Format   string
}

// toFilter converts the flags into a record filter. --month cannot be
// combined with --from or --to.
func (o ListOptions) toFilter() (domain.RecordFilter, error) {
	var filter domain.RecordFilter

	if o.Month != "" {
		if o.From != "" || o.To != "" {
			return filter, errors.NewInvalidInputError("month", o.Month, "cannot be combined with --from or --to")
		}
		month, err := domain.ParseMonth(o.Month)
		if err != nil {
			return filter, errors.NewInvalidInputError("month", o.Month, "expected YYYY-MM")
		}
		filter = domain.MonthFilter(month)
	}

	if o.From != "" {
		from, err := domain.ParseDate(o.From)
		if err != nil {
			return filter, errors.NewInvalidInputError("from", o.From, "expected YYYY-MM-DD")
		}
		filter.StartDate = &from
	}
	if o.To != "" {
		to, err := domain.ParseDate(o.To)
		if err != nil {
			return filter, errors.NewInvalidInputError("to", o.To, "expected YYYY-MM-DD")
		}
		filter.EndDate = &to
	}

	if o.MinHours != "" {
		minHours, err := strconv.ParseFloat(o.MinHours, 64)
		if err != nil {
			return filter, errors.NewInvalidInputError("min-hours", o.MinHours, "must be a number")
		}
		filter.MinHours = &minHours
	}
	if o.MaxHours != "" {
		maxHours, err := strconv.ParseFloat(o.MaxHours, 64)
		if err != nil {
			return filter, errors.NewInvalidInputError("max-hours", o.MaxHours, "must be a number")
		}
		filter.MaxHours = &maxHours
	}

	return filter, nil
}

// ListCommand handles the list command
type ListCommand struct {
	app  *App
	opts ListOptions
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, opts ListOptions) *ListCommand {
	return &ListCommand{app: app, opts: opts}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	format, err := parseFormat(c.opts.Format, c.app.config.Display.DefaultFormat)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}
	filter, err := c.opts.toFilter()
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	view, err := c.app.businessAPI.ListRecords(ctx, filter)
	if err != nil {
		return c.app.errorHandler.Handle("list work records", err)
	}

	if format != FormatTable {
		return writeStructured(c.app.out, format, view)
	}

	if len(view.Records) == 0 {
		if filter.IsEmpty() {
			fmt.Fprintln(c.app.out, "No work records found")
		} else {
			fmt.Fprintln(c.app.out, "No work records match the filters")
		}
		return nil
	}

	timeFormat := c.app.config.Display.TimeFormat
	t := newTable("DATE", "SLOTS", "BREAK", "HOURS", "AMOUNT", "ID")
	for _, record := range view.Records {
		currency := domain.LookupCurrency(record.Currency)
		t.Row(
			record.DateString(),
			formatSlots(record.TimeRecords, timeFormat),
			fmt.Sprintf("%.2f", record.BreakHours),
			fmt.Sprintf("%.2f", record.TotalTime),
			formatMoney(currency, record.Amount),
			Silent(record.ID))
	}
	fmt.Fprintln(c.app.out, t.String())

	label := "Total:"
	if !filter.IsEmpty() {
		label = "Total (filtered):"
	}
	fmt.Fprintf(c.app.out, "\n%s %d records, %.2f hours, %s\n",
		Header(label),
		view.Totals.RecordCount,
		view.Totals.TotalHours,
		Primary(formatMoney(view.Currency, view.Totals.TotalAmount)))
	return nil
}
