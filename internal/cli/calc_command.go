package cli

import (
	"context"
	"fmt"
)

// CalcCommand handles the calc command
type CalcCommand struct {
	app    *App
	opts   EntryOptions
	format string
}

// NewCalcCommand creates a new calc command handler
func NewCalcCommand(app *App, opts EntryOptions, format string) *CalcCommand {
	return &CalcCommand{app: app, opts: opts, format: format}
}

// Execute runs the calc command. Nothing is stored.
func (c *CalcCommand) Execute(ctx context.Context, args []string) error {
	format, err := parseFormat(c.format, FormatTable)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	req, err := c.opts.toRequest()
	if err != nil {
		return c.app.errorHandler.Handle("calculate", err)
	}

	summary, err := c.app.businessAPI.Calculate(req)
	if err != nil {
		return c.app.errorHandler.Handle("calculate", err)
	}

	if format != FormatTable {
		return writeStructured(c.app.out, format, summary)
	}

	if !summary.Ready {
		fmt.Fprintln(c.app.out, Warning("Nothing to calculate: worked time after breaks must be positive."))
		return nil
	}

	result := summary.Result
	fmt.Fprintf(c.app.out, "%s %s\n", Header("Worked:"), formatWorked(result.TotalMinutes))
	fmt.Fprintf(c.app.out, "%s %s\n", Header("Amount:"), Primary(formatMoney(summary.Currency, result.Amount)))
	return nil
}
