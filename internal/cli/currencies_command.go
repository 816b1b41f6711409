package cli

import (
	"context"
	"fmt"
)

// CurrenciesCommand handles the currencies command
type CurrenciesCommand struct {
	app    *App
	format string
}

// NewCurrenciesCommand creates a new currencies command handler
func NewCurrenciesCommand(app *App, format string) *CurrenciesCommand {
	return &CurrenciesCommand{app: app, format: format}
}

// Execute lists the supported currencies and marks the configured one
func (c *CurrenciesCommand) Execute(ctx context.Context, args []string) error {
	format, err := parseFormat(c.format, FormatTable)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	currencies := c.app.businessAPI.Currencies()
	if format != FormatTable {
		return writeStructured(c.app.out, format, currencies)
	}

	current := c.app.businessAPI.DefaultCurrency()
	t := newTable("CODE", "SYMBOL", "NAME", "")
	for _, currency := range currencies {
		marker := ""
		if currency.Code == current.Code {
			marker = Primary("*")
		}
		t.Row(currency.Code, currency.Symbol, currency.Name, marker)
	}
	_, err = fmt.Fprintln(c.app.out, t.String())
	return err
}
