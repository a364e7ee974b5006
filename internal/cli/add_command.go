package cli

import (
	"context"

	"work-journal/internal/api"
	"work-journal/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. Words that are not key=value options form the title.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	parsed := parseArgs(args, draftKeys...)

	draft := domain.TaskDraft{Status: domain.StatusPending}
	if title := parsed.text(); title != "" {
		draft.Title = title
	}
	if err := applyDraftOptions(&draft, parsed); err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	task, err := c.api.CreateTask(ctx, draft)
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	c.app.printf("Created task %s: %s\n", shortID(task.ID), task.Title)
	return nil
}
