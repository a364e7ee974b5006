package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	loader := NewLoaderWithFile(filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("backend = %v, want default sqlite", cfg.Storage.Backend)
	}
}

func TestLoader_FileThenEnvironment(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  backend: yaml
  dir: /tmp/from-file
journal:
  categories: [Ops, Support]
  current_user: File User
display:
  list_format: csv
`)
	t.Setenv("WJ_USER", "Env User")

	cfg, err := NewLoaderWithFile(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.Backend != BackendYAML || cfg.Storage.Dir != "/tmp/from-file" {
		t.Errorf("storage = %+v, want values from file", cfg.Storage)
	}
	if len(cfg.Journal.Categories) != 2 || cfg.Journal.Categories[0] != "Ops" {
		t.Errorf("categories = %v", cfg.Journal.Categories)
	}
	if cfg.Journal.CurrentUser != "Env User" {
		t.Errorf("environment should override file, got %v", cfg.Journal.CurrentUser)
	}
	if cfg.Display.ListDefaultFormat != "csv" {
		t.Errorf("list format = %v, want csv", cfg.Display.ListDefaultFormat)
	}
	// untouched keys keep their defaults
	if cfg.Storage.QueryTimeout != 10*time.Second {
		t.Errorf("query timeout = %v, want default", cfg.Storage.QueryTimeout)
	}
}

func TestLoader_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "storage: [not a map")

	_, err := NewLoaderWithFile(path).Load()
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("Load() error = %v, want *ConfigError", err)
	}
}

func TestLoader_InvalidValues(t *testing.T) {
	path := writeConfigFile(t, "display:\n  list_format: xml\n")

	if _, err := NewLoaderWithFile(path).Load(); err == nil {
		t.Error("Load() should reject an unknown list format")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	backend := BackendMemory
	user := "Flag User"
	verbose := true
	timeout := 2 * time.Second

	overrides := &ConfigOverrides{
		Backend:     &backend,
		Categories:  []string{"Alpha"},
		CurrentUser: &user,
		Verbose:     &verbose,
		Timeout:     &timeout,
	}

	cfg, err := NewLoaderWithFile("").LoadWithOverrides(overrides)
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}

	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("backend = %v, want memory", cfg.Storage.Backend)
	}
	if len(cfg.Journal.Categories) != 1 || cfg.Journal.Categories[0] != "Alpha" {
		t.Errorf("categories = %v", cfg.Journal.Categories)
	}
	if cfg.Journal.CurrentUser != user || !cfg.Application.Verbose || cfg.Application.Timeout != timeout {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	// the override slice is copied
	overrides.Categories[0] = "Mutated"
	if cfg.Journal.Categories[0] != "Alpha" {
		t.Error("config should not alias the override slice")
	}
}

func TestLoadWithOverrides_Revalidates(t *testing.T) {
	format := "xml"
	_, err := NewLoaderWithFile("").LoadWithOverrides(&ConfigOverrides{ListFormat: &format})
	if err == nil {
		t.Error("LoadWithOverrides() should reject an invalid override")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("WJ_CONFIG", "/etc/wj.yaml")
	if got := DefaultConfigPath(); got != "/etc/wj.yaml" {
		t.Errorf("DefaultConfigPath() = %v, want /etc/wj.yaml", got)
	}
}
