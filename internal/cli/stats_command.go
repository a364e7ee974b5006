package cli

import (
	"context"

	"work-journal/internal/api"
	"work-journal/internal/errors"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	parsed := parseArgs(args, "format")
	if len(parsed.positional) > 0 {
		return errors.NewInvalidInputError("command", "stats", "usage: wj stats [format=table|json]")
	}

	format, _ := parsed.get("format")
	if format == "" {
		format = FormatTable
	}

	stats, err := c.api.GetStatistics(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}

	switch format {
	case FormatTable:
		return writeStatistics(c.app.out, stats)
	case FormatJSON:
		return writeJSON(c.app.out, stats)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}
