package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"work-journal/internal/seed"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendYAML   = "yaml"
	BackendMemory = "memory"
)

// Config holds all configuration options for the work journal
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Journal     JournalConfig     `yaml:"journal"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds snapshot storage configuration
type StorageConfig struct {
	Backend        string        `yaml:"backend" env:"WJ_STORAGE_BACKEND"`
	Dir            string        `yaml:"dir" env:"WJ_STORAGE_DIR"`
	DBFilename     string        `yaml:"db_filename" env:"WJ_DB_FILENAME"`
	YAMLFilename   string        `yaml:"yaml_filename" env:"WJ_YAML_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"WJ_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WJ_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"WJ_STORAGE_DIR_PERMISSIONS"`
}

// JournalConfig holds the external context the task store treats as immutable
type JournalConfig struct {
	Categories  []string `yaml:"categories" env:"WJ_CATEGORIES"`
	CurrentUser string   `yaml:"current_user" env:"WJ_USER"`
	SeedDemo    bool     `yaml:"seed_demo" env:"WJ_SEED_DEMO"`
}

// ValidationConfig holds optional length caps; 0 disables a cap
type ValidationConfig struct {
	TextMaxLength        int `yaml:"text_max_length" env:"WJ_VALIDATION_TEXT_MAX"`
	DescriptionMaxLength int `yaml:"description_max_length" env:"WJ_VALIDATION_DESCRIPTION_MAX"`
	CommentMaxLength     int `yaml:"comment_max_length" env:"WJ_VALIDATION_COMMENT_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat        string `yaml:"time_format" env:"WJ_TIME_FORMAT"`
	ListDefaultFormat string `yaml:"list_format" env:"WJ_LIST_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"WJ_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"WJ_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            filepath.Join(homeDir, ".wj"),
			DBFilename:     "journal.db",
			YAMLFilename:   "journal.yaml",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Journal: JournalConfig{
			Categories:  seed.DefaultCategories(),
			CurrentUser: defaultUser(),
			SeedDemo:    false,
		},
		Validation: ValidationConfig{
			TextMaxLength:        0,
			DescriptionMaxLength: 0,
			CommentMaxLength:     0,
		},
		Display: DisplayConfig{
			TimeFormat:        "Jan 02 15:04",
			ListDefaultFormat: "table",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "You"
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.DBFilename)
}

// GetYAMLPath returns the full path to the YAML journal file
func (c *Config) GetYAMLPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.YAMLFilename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("WJ_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if dir := os.Getenv("WJ_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("WJ_DB_FILENAME"); filename != "" {
		c.Storage.DBFilename = filename
	}
	if filename := os.Getenv("WJ_YAML_FILENAME"); filename != "" {
		c.Storage.YAMLFilename = filename
	}
	if timeout := os.Getenv("WJ_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if timeout := os.Getenv("WJ_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("WJ_STORAGE_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Journal configuration
	if categories := os.Getenv("WJ_CATEGORIES"); categories != "" {
		c.Journal.Categories = SplitList(categories)
	}
	if user := os.Getenv("WJ_USER"); user != "" {
		c.Journal.CurrentUser = user
	}
	if seedDemo := os.Getenv("WJ_SEED_DEMO"); seedDemo != "" {
		c.Journal.SeedDemo = ParseBoolWithFallback(seedDemo, c.Journal.SeedDemo)
	}

	// Validation configuration
	if n := os.Getenv("WJ_VALIDATION_TEXT_MAX"); n != "" {
		c.Validation.TextMaxLength = ParseIntWithFallback(n, c.Validation.TextMaxLength)
	}
	if n := os.Getenv("WJ_VALIDATION_DESCRIPTION_MAX"); n != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(n, c.Validation.DescriptionMaxLength)
	}
	if n := os.Getenv("WJ_VALIDATION_COMMENT_MAX"); n != "" {
		c.Validation.CommentMaxLength = ParseIntWithFallback(n, c.Validation.CommentMaxLength)
	}

	// Display configuration
	if format := os.Getenv("WJ_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("WJ_LIST_FORMAT"); format != "" {
		c.Display.ListDefaultFormat = strings.ToLower(format)
	}

	// Application configuration
	if timeout := os.Getenv("WJ_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("WJ_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendYAML, BackendMemory:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of sqlite, yaml, memory"}
	}
	if c.Storage.Backend != BackendMemory && c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.DBFilename == "" {
		return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.Backend == BackendYAML && c.Storage.YAMLFilename == "" {
		return &ConfigError{Field: "storage.yaml_filename", Message: "yaml filename cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if len(c.Journal.Categories) == 0 {
		return &ConfigError{Field: "journal.categories", Message: "at least one category is required"}
	}
	seen := make(map[string]bool, len(c.Journal.Categories))
	for _, category := range c.Journal.Categories {
		if strings.TrimSpace(category) == "" {
			return &ConfigError{Field: "journal.categories", Message: "categories cannot be blank"}
		}
		if seen[category] {
			return &ConfigError{Field: "journal.categories", Message: "duplicate category " + category}
		}
		seen[category] = true
	}
	if strings.TrimSpace(c.Journal.CurrentUser) == "" {
		return &ConfigError{Field: "journal.current_user", Message: "current user cannot be empty"}
	}

	if c.Validation.TextMaxLength < 0 || c.Validation.DescriptionMaxLength < 0 || c.Validation.CommentMaxLength < 0 {
		return &ConfigError{Field: "validation", Message: "maximum lengths cannot be negative (0 means no limit)"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	switch c.Display.ListDefaultFormat {
	case "table", "json", "csv":
	default:
		return &ConfigError{Field: "display.list_format", Message: "list format must be one of table, json, csv"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// SplitList splits a comma separated list, dropping blank entries
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
