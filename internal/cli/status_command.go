package cli

import (
	"context"
	"strings"

	"work-journal/internal/api"
	"work-journal/internal/domain"
	"work-journal/internal/errors"
)

// StatusCommand handles the status command and its start/complete shortcuts
type StatusCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
	fixed        domain.Status
	usage        string
}

// NewStatusCommand creates a handler for: wj status <id> <status>
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
		usage:        "usage: wj status <id> <pending|in-progress|done>",
	}
}

// NewStartCommand creates a handler that moves a task to In Progress
func NewStartCommand(app *App) *StatusCommand {
	c := NewStatusCommand(app)
	c.fixed = domain.StatusInProgress
	c.usage = "usage: wj start <id>"
	return c
}

// NewCompleteCommand creates a handler that moves a task to Done
func NewCompleteCommand(app *App) *StatusCommand {
	c := NewStatusCommand(app)
	c.fixed = domain.StatusDone
	c.usage = "usage: wj complete <id>"
	return c
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	var status domain.Status
	switch {
	case c.fixed != "" && len(args) == 1:
		status = c.fixed
	case c.fixed == "" && len(args) >= 2:
		parsed, err := parseStatusArg(strings.Join(args[1:], " "))
		if err != nil {
			return c.errorHandler.Handle("change status", err)
		}
		status = parsed
	default:
		return errors.NewInvalidInputError("command", "status", c.usage)
	}

	id, err := c.app.resolveID(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("change status", err)
	}

	task, found, err := c.api.ChangeStatus(ctx, id, status)
	if err != nil {
		return c.errorHandler.Handle("change status", err)
	}
	if !found {
		return c.errorHandler.NotFound("change status", id)
	}

	c.printResult(task)
	return nil
}

func (c *StatusCommand) printResult(task *domain.Task) {
	c.app.printf("Task %s is now %s\n", shortID(task.ID), task.Status)
	if task.Status == domain.StatusDone && task.CompletedTime != nil {
		c.app.printf("Completed at %s\n", task.CompletedTime.Local().Format(c.app.timeFormat()))
	}
}

// NextCommand applies the quick action for a task's current status
type NextCommand struct {
	*StatusCommand
}

// NewNextCommand creates a handler for: wj next <id>
func NewNextCommand(app *App) *NextCommand {
	return &NextCommand{StatusCommand: NewStatusCommand(app)}
}

// Execute runs the next command
func (c *NextCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "next", "usage: wj next <id>")
	}

	id, err := c.app.resolveID(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("advance task", err)
	}

	task, found, err := c.api.AdvanceTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("advance task", err)
	}
	if !found {
		return c.errorHandler.NotFound("advance task", id)
	}

	c.printResult(task)
	return nil
}
