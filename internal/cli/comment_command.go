package cli

import (
	"context"
	"strings"

	"work-journal/internal/api"
	"work-journal/internal/errors"
)

// CommentCommand handles the comment command
type CommentCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewCommentCommand creates a new comment command handler
func NewCommentCommand(app *App) *CommentCommand {
	return &CommentCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the comment command: wj comment <id> <text...>
func (c *CommentCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "comment", "usage: wj comment <id> <text>")
	}

	id, err := c.app.resolveID(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("add comment", err)
	}

	comment, found, err := c.api.AddComment(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("add comment", err)
	}
	if !found {
		return c.errorHandler.NotFound("add comment", id)
	}

	c.app.printf("Comment added to task %s by %s\n", shortID(id), comment.Author)
	return nil
}
