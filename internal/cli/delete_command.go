package cli

import (
	"context"
	"fmt"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
	yes bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App, yes bool) *DeleteCommand {
	return &DeleteCommand{app: app, yes: yes}
}

// Execute deletes the record named by args[0] after confirmation
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete expects exactly one record ID")
	}
	id := args[0]

	record, err := c.app.businessAPI.GetRecord(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("delete work record", err)
	}

	summary := fmt.Sprintf("%s %s (%.2f hours)", record.DateString(),
		formatSlots(record.TimeRecords, c.app.config.Display.TimeFormat), record.TotalTime)

	if !c.yes {
		if !c.app.interactive() {
			return fmt.Errorf("refusing to delete without confirmation; pass --yes")
		}
		confirmed, err := c.app.prompts.Confirm(fmt.Sprintf("Delete %s?", summary))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(c.app.out, "Delete cancelled.")
			return nil
		}
	}

	if err := c.app.businessAPI.DeleteRecord(ctx, id); err != nil {
		return c.app.errorHandler.Handle("delete work record", err)
	}

	fmt.Fprintf(c.app.out, "%s %s\n", Warning("Deleted"), summary)
	return nil
}
