// Package repository defines the storage collaborator of the work journal.
// The task store never performs I/O itself; callers load a snapshot,
// hand it to a store, and save the result.
package repository

import (
	"context"
	"sync"

	"work-journal/internal/domain"
)

// Repository loads and saves journal snapshots
type Repository interface {
	// Load returns the last saved snapshot, or nil if nothing was ever saved.
	Load(ctx context.Context) (*domain.Snapshot, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap domain.Snapshot) error
	Close() error
}

// MemoryRepository keeps the snapshot in process memory
type MemoryRepository struct {
	mu   sync.Mutex
	snap *domain.Snapshot
}

// NewMemory creates an empty in-memory repository
func NewMemory() *MemoryRepository {
	return &MemoryRepository{}
}

// Load returns a copy of the stored snapshot
func (m *MemoryRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil, nil
	}
	clone := CloneSnapshot(*m.snap)
	return &clone, nil
}

// Save stores a copy of snap
func (m *MemoryRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := CloneSnapshot(snap)
	m.snap = &clone
	return nil
}

// Close is a no-op
func (m *MemoryRepository) Close() error {
	return nil
}

// CloneSnapshot deep-copies a snapshot
func CloneSnapshot(snap domain.Snapshot) domain.Snapshot {
	tasks := make([]domain.Task, len(snap.Tasks))
	for i, t := range snap.Tasks {
		tasks[i] = t.Clone()
	}
	return domain.Snapshot{Tasks: tasks}
}
