package config

import (
	"fmt"
	"os"

	"work-journal/internal/repository"
	"work-journal/internal/repository/sqlite"
	"work-journal/internal/repository/yamlfile"
)

var (
	_ repository.Repository = (*sqlite.SQLiteRepository)(nil)
	_ repository.Repository = (*yamlfile.Repository)(nil)
	_ repository.Repository = (*repository.MemoryRepository)(nil)
)

// CreateRepository creates the storage backend selected by the configuration
func CreateRepository(config *Config) (repository.Repository, error) {
	if config.Storage.Backend == BackendMemory {
		return repository.NewMemory(), nil
	}

	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", config.Storage.Dir, err)
	}

	switch config.Storage.Backend {
	case BackendSQLite:
		repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
			QueryTimeout: config.Storage.QueryTimeout,
			WriteTimeout: config.Storage.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	case BackendYAML:
		return yamlfile.New(config.GetYAMLPath()), nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unsupported backend " + config.Storage.Backend}
	}
}

// CreateTestRepository creates an in-memory SQLite repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
