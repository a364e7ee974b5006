package repository

import (
	"context"
	"testing"
	"time"

	"work-journal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_LoadEmpty(t *testing.T) {
	repo := NewMemory()
	defer repo.Close()

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestMemoryRepository_SaveIsolatesCopies(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	completed := time.Date(2024, 1, 16, 17, 30, 0, 0, time.UTC)

	original := domain.Snapshot{Tasks: []domain.Task{{
		ID:            "1",
		Title:         "Ship release",
		CompletedTime: &completed,
		Comments:      []domain.Comment{{ID: "c1", Content: "Great work"}},
	}}}
	require.NoError(t, repo.Save(ctx, original))

	original.Tasks[0].Title = "mutated"
	original.Tasks[0].Comments[0].Content = "mutated"

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Ship release", loaded.Tasks[0].Title)
	assert.Equal(t, "Great work", loaded.Tasks[0].Comments[0].Content)

	loaded.Tasks[0].Title = "mutated again"
	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ship release", again.Tasks[0].Title)
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Save(ctx, domain.Snapshot{}), context.Canceled)
}
