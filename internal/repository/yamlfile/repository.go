// Package yamlfile stores journal snapshots in a single human-editable YAML file.
package yamlfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"work-journal/internal/domain"
	"work-journal/internal/errors"
	"work-journal/internal/logging"

	"gopkg.in/yaml.v3"
)

// FormatVersion is written to every journal file
const FormatVersion = 1

// document is the on-disk layout
type document struct {
	Version int           `yaml:"version"`
	SavedAt time.Time     `yaml:"saved_at"`
	Tasks   []domain.Task `yaml:"tasks"`
}

// Repository reads and writes a YAML journal file
type Repository struct {
	mu    sync.Mutex
	path  string
	perms os.FileMode
}

// New creates a repository backed by the file at path. The file is created on first save.
func New(path string) *Repository {
	return &Repository{path: path, perms: 0644}
}

// Path returns the journal file location
func (r *Repository) Path() string {
	return r.path
}

// Load reads the journal file. A missing file means the journal was never saved.
func (r *Repository) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewStorageError("read journal file", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewStorageError("decode journal file", err)
	}
	if doc.Version > FormatVersion {
		return nil, errors.NewStorageError("decode journal file",
			fmt.Errorf("unsupported format version %d", doc.Version))
	}

	snap := &domain.Snapshot{Tasks: doc.Tasks}
	if snap.Tasks == nil {
		snap.Tasks = []domain.Task{}
	}
	for i := range snap.Tasks {
		if snap.Tasks[i].Comments == nil {
			snap.Tasks[i].Comments = []domain.Comment{}
		}
	}

	logging.Debugf("loaded %d tasks from %s\n", len(snap.Tasks), r.path)
	return snap, nil
}

// Save writes snap to a temporary file and renames it over the journal
func (r *Repository) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := snap.Tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document{Version: FormatVersion, SavedAt: time.Now().UTC(), Tasks: tasks}); err != nil {
		return errors.NewStorageError("encode journal file", err)
	}
	if err := enc.Close(); err != nil {
		return errors.NewStorageError("encode journal file", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return errors.NewStorageError("write journal file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.NewStorageError("write journal file", err)
	}
	if err := tmp.Chmod(r.perms); err != nil {
		tmp.Close()
		return errors.NewStorageError("write journal file", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewStorageError("write journal file", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return errors.NewStorageError("replace journal file", err)
	}

	logging.Debugf("saved %d tasks to %s\n", len(tasks), r.path)
	return nil
}

// Close is a no-op; the file is not held open between calls
func (r *Repository) Close() error {
	return nil
}
