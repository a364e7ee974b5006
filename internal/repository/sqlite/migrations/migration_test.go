package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	require.NoError(t, err)
	return count > 0
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.Up)
		assert.NotEmpty(t, m.Down)
	}
	assert.Equal(t, "create_tasks", migrations[0].Name)
	assert.Equal(t, "create_comments", migrations[1].Name)
	assert.Equal(t, "create_journal_meta", migrations[2].Name)
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	for _, table := range []string{"tasks", "comments", "journal_meta", "migrations"} {
		assert.True(t, tableExists(t, db, table), "table %s should exist", table)
	}

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, applied)

	// running again is a no-op
	require.NoError(t, RunMigrations(ctx, db))
}

func TestRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db))

	reverted, err := Rollback(ctx, db)
	require.NoError(t, err)
	assert.True(t, reverted)
	assert.False(t, tableExists(t, db, "journal_meta"))
	assert.True(t, tableExists(t, db, "comments"))

	for {
		reverted, err = Rollback(ctx, db)
		require.NoError(t, err)
		if !reverted {
			break
		}
	}
	assert.False(t, tableExists(t, db, "tasks"))

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestExtractVersionAndName(t *testing.T) {
	assert.Equal(t, 2, extractVersion("000002_create_comments.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.sql"))
	assert.Equal(t, "create_comments", extractName("000002_create_comments.up.sql"))
}
