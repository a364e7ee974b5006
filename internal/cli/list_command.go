package cli

import (
	"context"

	"work-journal/internal/api"
	"work-journal/internal/errors"
	"work-journal/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command: wj list [text] [category=...] [format=...] [group=true]
// Free text matches title or description, case-insensitively.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	parsed := parseArgs(args, "category", "format", "group")

	format, ok := parsed.get("format")
	if !ok || format == "" {
		format = c.app.listFormat()
	}
	switch format {
	case FormatTable, FormatJSON, FormatCSV:
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}

	group, err := parsed.flag("group")
	if err != nil {
		return err
	}

	category, _ := parsed.get("category")
	if category == "" {
		category = services.AllCategories
	}
	board, err := c.api.GetBoard(ctx, parsed.text(), category)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	switch format {
	case FormatJSON:
		return writeJSON(c.app.out, board)
	case FormatCSV:
		return writeTaskCSV(c.app.out, board.Tasks)
	}

	if len(board.Tasks) == 0 {
		c.app.printf("No tasks found matching your criteria.\n")
		return nil
	}

	if group {
		err = writeGroupedTable(c.app.out, board.Groups, c.app.timeFormat())
	} else {
		err = writeTaskTable(c.app.out, board.Tasks, c.app.timeFormat())
	}
	if err != nil {
		return err
	}

	c.app.printf("\nShowing %d of %d tasks (%d done, %d in progress, %d pending)\n",
		len(board.Tasks), board.Statistics.Total,
		board.Statistics.Completed, board.Statistics.InProgress, board.Statistics.Pending)
	return nil
}
