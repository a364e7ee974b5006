package cli

import (
	"context"

	"work-journal/internal/api"
	"work-journal/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: wj delete <id>")
	}

	id, err := c.app.resolveID(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	deleted, err := c.api.DeleteTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}
	if !deleted {
		return c.errorHandler.NotFound("delete task", id)
	}

	c.app.printf("Deleted task %s\n", shortID(id))
	return nil
}
