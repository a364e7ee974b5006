package cli

import (
	"context"

	"work-journal/internal/api"
	"work-journal/internal/errors"
)

// CategoriesCommand lists the categories a task may be filed under
type CategoriesCommand struct {
	app *App
	api api.API
}

// NewCategoriesCommand creates a new categories command handler
func NewCategoriesCommand(app *App) *CategoriesCommand {
	return &CategoriesCommand{app: app, api: app.api}
}

// Execute runs the categories command
func (c *CategoriesCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "categories", "usage: wj categories")
	}
	for _, category := range c.api.Categories() {
		c.app.printf("%s\n", category)
	}
	return nil
}
