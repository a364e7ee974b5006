package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"work-journal/internal/api"
	"work-journal/internal/config"
	"work-journal/internal/errors"
)

const (
	defaultTimeFormat = "Jan 02 15:04"
	defaultListFormat = "table"
)

// App represents the main CLI application
type App struct {
	api      api.API
	config   *config.Config
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api api.API) *App {
	return NewAppWithConfig(api, nil)
}

// NewAppWithConfig creates a CLI application that formats output per cfg
func NewAppWithConfig(api api.API, cfg *config.Config) *App {
	app := &App{
		api:    api,
		config: cfg,
		out:    os.Stdout,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// SetOutput redirects command output
func (a *App) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	a.out = w
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) timeFormat() string {
	if a.config != nil && a.config.Display.TimeFormat != "" {
		return a.config.Display.TimeFormat
	}
	return defaultTimeFormat
}

func (a *App) listFormat() string {
	if a.config != nil && a.config.Display.ListDefaultFormat != "" {
		return a.config.Display.ListDefaultFormat
	}
	return defaultListFormat
}

// resolveID turns a user supplied id or id prefix into a task id
func (a *App) resolveID(ctx context.Context, ref string) (string, error) {
	return a.api.ResolveTaskID(ctx, ref)
}

// parsedArgs splits command arguments into key=value options and positional words
type parsedArgs struct {
	options    map[string]string
	positional []string
}

// parseArgs extracts key=value pairs for the given keys; everything else is positional
func parseArgs(args []string, keys ...string) parsedArgs {
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
	}

	parsed := parsedArgs{options: make(map[string]string)}
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok && allowed[key] {
			parsed.options[key] = value
			continue
		}
		parsed.positional = append(parsed.positional, arg)
	}
	return parsed
}

func (p parsedArgs) get(key string) (string, bool) {
	v, ok := p.options[key]
	return v, ok
}

func (p parsedArgs) text() string {
	return strings.Join(p.positional, " ")
}

func (p parsedArgs) flag(key string) (bool, error) {
	v, ok := p.options[key]
	if !ok {
		return false, nil
	}
	switch strings.ToLower(v) {
	case "", "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	default:
		return false, errors.NewInvalidInputError(key, v, "expected true or false")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
