package main

import (
	"os"
	"strings"

	"work-journal/internal/config"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// getEnvironment determines the current environment from WJ_ENV
func getEnvironment() Environment {
	switch strings.ToLower(os.Getenv("WJ_ENV")) {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}

// applyEnvironment adjusts storage for the environment before flags are applied.
// Development keeps its journal in the working directory; testing never touches disk.
func applyEnvironment(env Environment, cfg *config.Config) {
	switch env {
	case Development:
		cfg.Storage.Dir = ".wj-dev"
		cfg.Journal.SeedDemo = true
	case Testing:
		cfg.Storage.Backend = config.BackendMemory
		cfg.Journal.SeedDemo = true
	}
}
