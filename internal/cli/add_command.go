package cli

import (
	"context"
	"fmt"
	"math"

	"worktime/internal/api"
	"worktime/internal/domain"
	"worktime/internal/errors"
	"worktime/internal/validation"
)

// EntryOptions holds the flags shared by add and calc
type EntryOptions struct {
	Date       string
	Slots      []string
	BreakHours string
	Rate       string
	Currency   string
}

// toRequest converts the flags into an entry request. An empty date means today.
func (o EntryOptions) toRequest() (api.EntryRequest, error) {
	now := timeNow()
	date := now
	if o.Date != "" {
		parsed, err := domain.ParseDate(o.Date)
		if err != nil {
			return api.EntryRequest{}, errors.NewInvalidInputError("date", o.Date, "expected YYYY-MM-DD")
		}
		if !validation.NewValidator().IsReasonableDate(parsed, now) {
			return api.EntryRequest{}, errors.NewInvalidInputError("date", o.Date, "must be within the last 10 years and the next year")
		}
		date = parsed
	}

	return api.EntryRequest{
		Date:       date,
		Slots:      o.Slots,
		BreakHours: o.BreakHours,
		Rate:       o.Rate,
		Currency:   o.Currency,
	}, nil
}

// AddCommand handles the add command
type AddCommand struct {
	app  *App
	opts EntryOptions
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts EntryOptions) *AddCommand {
	return &AddCommand{app: app, opts: opts}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	req, err := c.opts.toRequest()
	if err != nil {
		return c.app.errorHandler.Handle("add work record", err)
	}

	record, err := c.app.businessAPI.SaveEntry(ctx, req)
	if err != nil {
		return c.app.errorHandler.Handle("add work record", err)
	}

	currency := domain.LookupCurrency(record.Currency)
	fmt.Fprintf(c.app.out, "%s %s on %s: %s, %s (%s)\n",
		Success("Saved"),
		formatSlots(record.TimeRecords, c.app.config.Display.TimeFormat),
		record.DateString(),
		formatWorked(int(math.Round(record.TotalTime*60))),
		formatMoney(currency, record.Amount),
		Silent(record.ID))
	return nil
}
