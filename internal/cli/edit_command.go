package cli

import (
	"context"

	"work-journal/internal/api"
	"work-journal/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command: wj edit <id> key=value...
// Fields that are not given keep their current values.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	parsed := parseArgs(args, draftKeys...)
	if len(parsed.positional) != 1 || len(parsed.options) == 0 {
		return errors.NewInvalidInputError("command", "edit", "usage: wj edit <id> title=... description=... by=... category=... status=...")
	}

	id, err := c.app.resolveID(ctx, parsed.positional[0])
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	task, found, err := c.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}
	if !found {
		return c.errorHandler.NotFound("edit task", id)
	}

	draft := task.Draft()
	if err := applyDraftOptions(&draft, parsed); err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	updated, err := c.api.UpdateTask(ctx, id, draft)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}
	if !updated {
		return c.errorHandler.NotFound("edit task", id)
	}

	c.app.printf("Updated task %s\n", shortID(id))
	return nil
}
