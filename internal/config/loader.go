package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configPath string
}

// NewLoader creates a new configuration loader.
// The config file is read from WJ_CONFIG, or ~/.wj/config.yaml when unset.
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		configPath: DefaultConfigPath(),
	}
}

// NewLoaderWithFile creates a loader that reads the given config file
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config:     NewConfig(),
		configPath: path,
	}
}

// DefaultConfigPath returns the config file location
func DefaultConfigPath() string {
	if path := os.Getenv("WJ_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".wj", "config.yaml")
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromFile(l.configPath); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile merges a YAML config file into c. A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("invalid YAML in %s: %v", path, err)}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend        *string
	StorageDir     *string
	DBFilename     *string
	YAMLFilename   *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Journal overrides
	Categories  []string
	CurrentUser *string
	SeedDemo    *bool

	// Display overrides
	TimeFormat *string
	ListFormat *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// Apply applies command line overrides to the configuration
func (o *ConfigOverrides) Apply(config *Config) {
	if o.Backend != nil {
		config.Storage.Backend = *o.Backend
	}
	if o.StorageDir != nil {
		config.Storage.Dir = *o.StorageDir
	}
	if o.DBFilename != nil {
		config.Storage.DBFilename = *o.DBFilename
	}
	if o.YAMLFilename != nil {
		config.Storage.YAMLFilename = *o.YAMLFilename
	}
	if o.DBQueryTimeout != nil {
		config.Storage.QueryTimeout = *o.DBQueryTimeout
	}
	if o.DBWriteTimeout != nil {
		config.Storage.WriteTimeout = *o.DBWriteTimeout
	}

	if len(o.Categories) > 0 {
		config.Journal.Categories = append([]string(nil), o.Categories...)
	}
	if o.CurrentUser != nil {
		config.Journal.CurrentUser = *o.CurrentUser
	}
	if o.SeedDemo != nil {
		config.Journal.SeedDemo = *o.SeedDemo
	}

	if o.TimeFormat != nil {
		config.Display.TimeFormat = *o.TimeFormat
	}
	if o.ListFormat != nil {
		config.Display.ListDefaultFormat = *o.ListFormat
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}
