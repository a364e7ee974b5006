package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"work-journal/internal/api"
	"work-journal/internal/config"
	"work-journal/internal/logging"
	"work-journal/internal/validation"
)

// APIFactory builds the API for a fully resolved configuration.
// The returned close function releases the storage backend.
type APIFactory func(cfg *config.Config) (api.API, func() error, error)

// DefaultAPIFactory opens the configured storage backend
func DefaultAPIFactory(cfg *config.Config) (api.API, func() error, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	apiInstance := api.New(repo, api.Options{
		Categories:  cfg.Journal.Categories,
		CurrentUser: cfg.Journal.CurrentUser,
		SeedDemo:    cfg.Journal.SeedDemo,
		Validator:   validation.NewTaskValidatorWith(validation.NewValidatorWithConfig(cfg)),
	})
	return apiInstance, repo.Close, nil
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	config   *config.Config
	factory  APIFactory
	api      api.API
	closeAPI func() error
}

// NewRootCommand creates the root cobra command with global flags.
// The API is built after flags are applied, so --backend and friends take effect.
func NewRootCommand(cfg *config.Config, factory APIFactory) *RootCommand {
	if factory == nil {
		factory = DefaultAPIFactory
	}
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "wj",
		Short: "A command-line work journal",
		Long: `Work Journal (wj) keeps a list of assigned tasks with their status and comments.

FEATURES:
  • Record tasks with who assigned them, a category and a description
  • Move tasks between Pending, In Progress and Done
  • Attach timestamped comments to tasks
  • Search by text, filter by category and group the board by category
  • Store the journal in SQLite, a YAML file or memory

EXAMPLES:
  wj add "Fix login bug" by=Alice category=Development
  wj list                                  # List all tasks
  wj list login category=Development       # Search within a category
  wj list group=true                       # Group the board by category
  wj next 1f3a                             # Start or complete a task
  wj comment 1f3a "Waiting on review"      # Add a comment
  wj list --format csv > tasks.csv         # Export to CSV

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Storage Configuration:
    WJ_STORAGE_BACKEND                     sqlite, yaml or memory (default: sqlite)
    WJ_STORAGE_DIR                         Storage directory (default: ~/.wj)
    WJ_DB_FILENAME                         Database filename (default: journal.db)
    WJ_YAML_FILENAME                       YAML filename (default: journal.yaml)
    WJ_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    WJ_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Journal Configuration:
    WJ_CATEGORIES                          Comma separated category list
    WJ_USER                                Author of new comments (default: $USER)
    WJ_SEED_DEMO                           Seed demo tasks into a new journal (default: false)

  Display Configuration:
    WJ_TIME_FORMAT                         Time format (default: Jan 02 15:04)
    WJ_LIST_FORMAT                         Default list format (default: table)

  Application Configuration:
    WJ_CONFIG                              Config file (default: ~/.wj/config.yaml)
    WJ_APP_TIMEOUT                         Application timeout (default: 60s)
    WJ_APP_VERBOSE                         Enable verbose output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlags(); err != nil {
				return err
			}
			return root.openAPI()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.Close()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if closeErr := r.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// SetArgs sets the arguments used by Execute
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output
func (r *RootCommand) SetOutput(w io.Writer) {
	r.cmd.SetOut(w)
	r.cmd.SetErr(w)
}

// Close releases the storage backend if it was opened
func (r *RootCommand) Close() error {
	if r.closeAPI == nil {
		return nil
	}
	closeFn := r.closeAPI
	r.closeAPI = nil
	return closeFn()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("backend", "", "Storage backend: sqlite, yaml or memory (overrides WJ_STORAGE_BACKEND)")
	flags.String("storage-dir", "", "Storage directory (overrides WJ_STORAGE_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WJ_DB_FILENAME)")
	flags.String("yaml-filename", "", "YAML filename (overrides WJ_YAML_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WJ_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WJ_DB_WRITE_TIMEOUT)")

	// Journal configuration
	flags.StringSlice("categories", nil, "Category list (overrides WJ_CATEGORIES)")
	flags.String("user", "", "Author of new comments (overrides WJ_USER)")
	flags.Bool("seed-demo", false, "Seed demo tasks into a new journal (overrides WJ_SEED_DEMO)")

	// Display configuration
	flags.String("time-format", "", "Time display format (overrides WJ_TIME_FORMAT)")
	flags.String("list-format", "", "Default list format (overrides WJ_LIST_FORMAT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides WJ_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides WJ_APP_VERBOSE)")
}

// applyFlags copies every changed global flag into the configuration
func (r *RootCommand) applyFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	overrides.Backend = changedString(flags, "backend")
	overrides.StorageDir = changedString(flags, "storage-dir")
	overrides.DBFilename = changedString(flags, "db-filename")
	overrides.YAMLFilename = changedString(flags, "yaml-filename")
	overrides.DBQueryTimeout = changedDuration(flags, "db-query-timeout")
	overrides.DBWriteTimeout = changedDuration(flags, "db-write-timeout")

	if flags.Changed("categories") {
		overrides.Categories, _ = flags.GetStringSlice("categories")
	}
	overrides.CurrentUser = changedString(flags, "user")
	overrides.SeedDemo = changedBool(flags, "seed-demo")

	overrides.TimeFormat = changedString(flags, "time-format")
	overrides.ListFormat = changedString(flags, "list-format")

	overrides.Timeout = changedDuration(flags, "app-timeout")
	overrides.Verbose = changedBool(flags, "verbose")

	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	logging.SetVerbose(r.config.Application.Verbose)
	logging.Debugf("storage backend: %s\n", r.config.Storage.Backend)
	return nil
}

// openAPI builds the API once per invocation
func (r *RootCommand) openAPI() error {
	if r.api != nil {
		return nil
	}
	apiInstance, closeFn, err := r.factory(r.config)
	if err != nil {
		return err
	}
	r.api = apiInstance
	r.closeAPI = closeFn
	return nil
}

func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}

func changedDuration(flags *pflag.FlagSet, name string) *time.Duration {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetDuration(name)
	return &v
}

func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// handlerFunc builds a command handler for an app
type handlerFunc func(app *App) Command

// run returns a RunE that passes positional args plus changed local flags,
// rewritten as key=value options, to the handler
func (r *RootCommand) run(newHandler handlerFunc, optionFlags ...string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
		defer cancel()

		app := NewAppWithConfig(r.api, r.config)
		app.SetOutput(cmd.OutOrStdout())

		handlerArgs := append([]string(nil), args...)
		for _, name := range optionFlags {
			if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
				handlerArgs = append(handlerArgs, name+"="+f.Value.String())
			}
		}
		return newHandler(app).Execute(ctx, handlerArgs)
	}
}

// addDraftFlags adds the task field flags shared by add and edit
func addDraftFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("title", "", "Task title")
	flags.String("description", "", "Task description")
	flags.String("by", "", "Who assigned the task")
	flags.String("category", "", "Task category")
	flags.String("status", "", "Task status: pending, in-progress or done")
	flags.String("assigned", "", "Assigned time, e.g. 2024-01-15 09:00")
	flags.String("completed", "", "Completed time, e.g. 2024-01-15 17:30")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [title] [key=value...]",
		Short: "Add a new task",
		Long: `Add a new task to the journal.

Options may be given as flags or as key=value words:
  title, description, by, category, status, assigned, completed

Examples:
  wj add "Review PR #12" by=Bob category=Review
  wj add --title "Sprint planning" --by Carol --category Meeting`,
		RunE: r.run(func(app *App) Command { return NewAddCommand(app) }, draftKeys...),
	}
	addDraftFlags(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id> [key=value...]",
		Short: "Edit the fields of a task",
		Long: `Edit a task. Only the given fields change.

Examples:
  wj edit 1f3a title="Fix login bug on Safari"
  wj edit 1f3a --category Testing --status done`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App) Command { return NewEditCommand(app) }, draftKeys...),
	}
	addDraftFlags(editCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task and its comments",
		Long:  "Delete a task and all of its comments. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewDeleteCommand(app) }),
	}

	statusCmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set the status of a task",
		Long: `Set the status of a task to pending, in-progress or done.
Entering done records the completion time.`,
		Args: cobra.MinimumNArgs(2),
		RunE: r.run(func(app *App) Command { return NewStatusCommand(app) }),
	}

	startCmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a task In Progress",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewStartCommand(app) }),
	}

	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task Done",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewCompleteCommand(app) }),
	}

	nextCmd := &cobra.Command{
		Use:   "next <id>",
		Short: "Start a pending task or complete one in progress",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewNextCommand(app) }),
	}

	commentCmd := &cobra.Command{
		Use:   "comment <id> <text>",
		Short: "Add a comment to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE:  r.run(func(app *App) Command { return NewCommentCommand(app) }),
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task with its comments",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewShowCommand(app) }, "format"),
	}
	showCmd.Flags().String("format", "", "Output format: table or json")

	listCmd := &cobra.Command{
		Use:   "list [text]",
		Short: "List tasks",
		Long: `List tasks with optional filtering.

Text filters search within titles and descriptions (case-insensitive).
category=all (or no category) shows every category.

Examples:
  wj list                         # List all tasks
  wj list login                   # Tasks mentioning "login"
  wj list category=Meeting        # Only meetings
  wj list --group                 # Group by category
  wj list --format json           # Board as JSON`,
		RunE: r.run(func(app *App) Command { return NewListCommand(app) }, "category", "format", "group"),
	}
	listCmd.Flags().String("category", "", "Only show tasks in this category")
	listCmd.Flags().String("format", "", "Output format: table, json or csv")
	listCmd.Flags().Bool("group", false, "Group tasks by category")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts per status",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) Command { return NewStatsCommand(app) }, "format"),
	}
	statsCmd.Flags().String("format", "", "Output format: table or json")

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List the available categories",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) Command { return NewCategoriesCommand(app) }),
	}

	r.cmd.AddCommand(
		addCmd,
		editCmd,
		deleteCmd,
		statusCmd,
		startCmd,
		completeCmd,
		nextCmd,
		commentCmd,
		showCmd,
		listCmd,
		statsCmd,
		categoriesCmd,
	)
}
