package sqlite

import (
	"context"
	"database/sql"
	"time"

	"work-journal/internal/domain"
	"work-journal/internal/errors"
	"work-journal/internal/logging"
	"work-journal/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const savedAtKey = "saved_at"

// Options tunes the SQLite repository
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions returns the timeouts used by New
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// SQLiteRepository stores journal snapshots in a SQLite database
type SQLiteRepository struct {
	db      *sql.DB
	options Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions creates a SQLite repository with explicit timeouts
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultOptions().QueryTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultOptions().WriteTimeout
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// a single connection keeps :memory: databases shared and serialises writers
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	logging.Debugf("opened sqlite journal at %s\n", dbPath)
	return &SQLiteRepository{db: db, options: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load reads the saved snapshot. It returns nil if the journal was never saved.
func (r *SQLiteRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.options.QueryTimeout)
	defer cancel()

	var savedAt string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM journal_meta WHERE key = ?`, savedAtKey).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, HandleDatabaseError("load journal", err)
	}

	taskRows, err := QueryMultiple(ctx, r.db, `
	SELECT id, position, title, description, assignment, category, status, assigned_time, completed_time
	FROM tasks
	ORDER BY position ASC`, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	commentRows, err := QueryMultiple(ctx, r.db, `
	SELECT id, task_id, position, author, content, timestamp
	FROM comments
	ORDER BY task_id, position ASC`, ScanComments, "comments")
	if err != nil {
		return nil, err
	}

	comments := make(map[string][]domain.Comment, len(taskRows))
	for _, row := range commentRows {
		comment, err := toDomainComment(row)
		if err != nil {
			return nil, errors.NewStorageError("decode comment", err)
		}
		comments[row.TaskID] = append(comments[row.TaskID], comment)
	}

	snap := &domain.Snapshot{Tasks: make([]domain.Task, 0, len(taskRows))}
	for _, row := range taskRows {
		task, err := toDomainTask(row)
		if err != nil {
			return nil, errors.NewStorageError("decode task", err)
		}
		if c, ok := comments[task.ID]; ok {
			task.Comments = c
		}
		snap.Tasks = append(snap.Tasks, task)
	}

	logging.Debugf("loaded %d tasks (saved at %s)\n", len(snap.Tasks), savedAt)
	return snap, nil
}

// Save replaces the stored journal with snap in a single transaction
func (r *SQLiteRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, r.options.WriteTimeout)
	defer cancel()

	return WithTransaction(ctx, r.db, "save journal", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM comments`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}

		insertTask, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, position, title, description, assignment, category, status, assigned_time, completed_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer insertTask.Close()

		insertComment, err := tx.PrepareContext(ctx, `
		INSERT INTO comments (id, task_id, position, author, content, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer insertComment.Close()

		for i, task := range snap.Tasks {
			row := toTaskRow(task, i)
			if _, err := insertTask.ExecContext(ctx, row.ID, row.Position, row.Title, row.Description,
				row.Assignment, row.Category, row.Status, row.AssignedTime, row.CompletedTime); err != nil {
				return err
			}
			for j, comment := range task.Comments {
				c := toCommentRow(task.ID, comment, j)
				if _, err := insertComment.ExecContext(ctx, c.ID, c.TaskID, c.Position, c.Author, c.Content, c.Timestamp); err != nil {
					return err
				}
			}
		}

		_, err = tx.ExecContext(ctx, `
		INSERT INTO journal_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			savedAtKey, FormatTimeForDB(time.Now()))
		return err
	})
}
