package cli

import (
	"context"
	"fmt"
	"strconv"

	"worktime/internal/api"
)

// EntryCommand handles the interactive entry command
type EntryCommand struct {
	app  *App
	date string
}

// NewEntryCommand creates a new entry command handler
func NewEntryCommand(app *App, date string) *EntryCommand {
	return &EntryCommand{app: app, date: date}
}

// Execute runs the entry form. Every answer is validated immediately and
// asked again when rejected. A save that conflicts with a recorded slot
// returns to the form with the answers kept.
func (c *EntryCommand) Execute(ctx context.Context, args []string) error {
	req, err := EntryOptions{Date: c.date}.toRequest()
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}
	fmt.Fprintf(c.app.out, "%s %s\n", Header("Entry for"), req.Date.Format("Monday, 2006-01-02"))

	for {
		if err := c.askSlots(&req); err != nil {
			return err
		}
		if len(req.Slots) == 0 {
			fmt.Fprintln(c.app.out, "No slots entered.")
			return nil
		}

		breakInitial, rateInitial := req.BreakHours, req.Rate
		if breakInitial == "" {
			breakInitial = "0"
		}
		if rateInitial == "" {
			rateInitial = strconv.FormatFloat(c.app.config.Billing.DefaultRate, 'f', -1, 64)
		}
		if err := c.askValue(&req, "Break hours", breakInitial, func(r *api.EntryRequest, v string) { r.BreakHours = v }); err != nil {
			return err
		}
		if err := c.askValue(&req, "Hourly rate", rateInitial, func(r *api.EntryRequest, v string) { r.Rate = v }); err != nil {
			return err
		}

		summary, err := c.app.businessAPI.Calculate(req)
		if err != nil {
			return c.app.errorHandler.Handle("calculate", err)
		}
		if !summary.Ready {
			fmt.Fprintln(c.app.out, Warning("Nothing to save: worked time after breaks must be positive."))
			return nil
		}
		fmt.Fprintf(c.app.out, "%s %s, %s\n", Header("Total:"),
			formatWorked(summary.Result.TotalMinutes),
			Primary(formatMoney(summary.Currency, summary.Result.Amount)))

		confirmed, err := c.app.prompts.Confirm("Save this entry?")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(c.app.out, "Entry discarded.")
			return nil
		}

		record, err := c.app.businessAPI.SaveEntry(ctx, req)
		if c.app.errorHandler.IsConflictError(err) {
			fmt.Fprintln(c.app.out, Error(c.app.errorHandler.HandleSimple(err).Error()))
			fmt.Fprintln(c.app.out, "Edit the slots and try again.")
			continue
		}
		if err != nil {
			return c.app.errorHandler.Handle("save work record", err)
		}
		fmt.Fprintf(c.app.out, "%s %s %s\n", Success("Saved"), record.DateString(), Silent(record.ID))
		return nil
	}
}

// askSlots goes over the slots already entered, each kept on an empty
// answer and dropped on "-", then collects new slots until an empty answer.
func (c *EntryCommand) askSlots(req *api.EntryRequest) error {
	entered := req.Slots
	req.Slots = nil

	for _, previous := range entered {
		for {
			input, err := c.app.prompts.Prompt(fmt.Sprintf("Slot %d (HH:MM-HH:MM, - to drop)", len(req.Slots)+1), previous)
			if err != nil {
				return err
			}
			if input == "-" || c.acceptSlot(req, input) {
				break
			}
		}
	}

	for {
		input, err := c.app.prompts.Prompt(fmt.Sprintf("Slot %d (HH:MM-HH:MM, empty to finish)", len(req.Slots)+1), "")
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}
		c.acceptSlot(req, input)
	}
}

// acceptSlot appends input to the request when the session accepts it
func (c *EntryCommand) acceptSlot(req *api.EntryRequest, input string) bool {
	candidate := *req
	candidate.Slots = append(append([]string{}, req.Slots...), input)
	if _, err := c.app.businessAPI.BuildSession(candidate); err != nil {
		fmt.Fprintln(c.app.out, Error(c.app.errorHandler.HandleSimple(err).Error()))
		return false
	}
	req.Slots = candidate.Slots
	return true
}

// askValue asks for one numeric setting until the session accepts it
func (c *EntryCommand) askValue(req *api.EntryRequest, prompt string, initial string, apply func(*api.EntryRequest, string)) error {
	for {
		value, err := c.app.prompts.Prompt(prompt, initial)
		if err != nil {
			return err
		}

		candidate := *req
		apply(&candidate, value)
		if _, err := c.app.businessAPI.BuildSession(candidate); err != nil {
			fmt.Fprintln(c.app.out, Error(c.app.errorHandler.HandleSimple(err).Error()))
			continue
		}
		*req = candidate
		return nil
	}
}
