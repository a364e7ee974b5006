package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"work-journal/internal/domain"
	"work-journal/internal/repository"
	"work-journal/internal/repository/sqlite"
	"work-journal/internal/repository/yamlfile"
)

func TestCreateRepository(t *testing.T) {
	tests := []struct {
		backend string
		check   func(t *testing.T, repo repository.Repository, dir string)
	}{
		{
			backend: BackendSQLite,
			check: func(t *testing.T, repo repository.Repository, dir string) {
				if _, ok := repo.(*sqlite.SQLiteRepository); !ok {
					t.Errorf("CreateRepository() = %T, want *sqlite.SQLiteRepository", repo)
				}
				if _, err := os.Stat(filepath.Join(dir, "journal.db")); err != nil {
					t.Errorf("database file should exist: %v", err)
				}
			},
		},
		{
			backend: BackendYAML,
			check: func(t *testing.T, repo repository.Repository, dir string) {
				if _, ok := repo.(*yamlfile.Repository); !ok {
					t.Errorf("CreateRepository() = %T, want *yamlfile.Repository", repo)
				}
			},
		},
		{
			backend: BackendMemory,
			check: func(t *testing.T, repo repository.Repository, dir string) {
				if _, ok := repo.(*repository.MemoryRepository); !ok {
					t.Errorf("CreateRepository() = %T, want *repository.MemoryRepository", repo)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested", "wj")
			cfg := NewConfig()
			cfg.Storage.Backend = tt.backend
			cfg.Storage.Dir = dir

			repo, err := CreateRepository(cfg)
			if err != nil {
				t.Fatalf("CreateRepository() error = %v", err)
			}
			defer repo.Close()

			tt.check(t, repo, dir)

			ctx := context.Background()
			snap := domain.Snapshot{Tasks: []domain.Task{{ID: "1", Title: "Test Task", Status: domain.StatusPending}}}
			if err := repo.Save(ctx, snap); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			loaded, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded == nil || len(loaded.Tasks) != 1 || loaded.Tasks[0].Title != "Test Task" {
				t.Errorf("Load() = %+v, want the saved task", loaded)
			}
		})
	}
}

func TestCreateRepository_UnknownBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.Backend = "postgres"

	if _, err := CreateRepository(cfg); err == nil {
		t.Error("CreateRepository() should fail for an unknown backend")
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	if err != nil {
		t.Fatalf("CreateTestRepository() error = %v", err)
	}
	defer repo.Close()

	snap, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap != nil {
		t.Errorf("fresh test repository should report never saved, got %+v", snap)
	}
}
