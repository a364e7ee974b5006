package cli

import (
	"context"

	"work-journal/internal/api"
	"work-journal/internal/errors"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the show command: wj show <id> [format=json]
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	parsed := parseArgs(args, "format")
	if len(parsed.positional) != 1 {
		return errors.NewInvalidInputError("command", "show", "usage: wj show <id> [format=table|json]")
	}

	format, _ := parsed.get("format")
	if format == "" {
		format = FormatTable
	}
	if format != FormatTable && format != FormatJSON {
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}

	id, err := c.app.resolveID(ctx, parsed.positional[0])
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}

	task, found, err := c.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}
	if !found {
		return c.errorHandler.NotFound("show task", id)
	}

	if format == FormatJSON {
		return writeJSON(c.app.out, task)
	}
	return writeTaskCard(c.app.out, *task, c.app.timeFormat())
}
