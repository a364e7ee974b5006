package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"work-journal/internal/domain"
	"work-journal/internal/errors"
	"work-journal/internal/repository"
	"work-journal/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// countingRepository records how often the journal is saved
type countingRepository struct {
	*repository.MemoryRepository
	saves   int
	loadErr error
	saveErr error
}

func (r *countingRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.MemoryRepository.Load(ctx)
}

func (r *countingRepository) Save(ctx context.Context, snap domain.Snapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	return r.MemoryRepository.Save(ctx, snap)
}

func setupTestAPI(t *testing.T, seedDemo bool) (API, *countingRepository) {
	t.Helper()
	repo := &countingRepository{MemoryRepository: repository.NewMemory()}

	n := 0
	api := New(repo, Options{
		CurrentUser: "Ngoc Tram",
		SeedDemo:    seedDemo,
		StoreOptions: []services.Option{
			services.WithClock(func() time.Time { return fixedNow }),
			services.WithIDGenerator(func() string {
				n++
				return fmt.Sprintf("task-%04d-x", n)
			}),
		},
	})
	return api, repo
}

func draft(title string) domain.TaskDraft {
	return domain.TaskDraft{
		Title:       title,
		Description: "Details for " + title,
		Assignment:  "Emily Davis",
		Category:    "Development",
	}
}

func TestCreateTask(t *testing.T) {
	api, repo := setupTestAPI(t, false)
	ctx := context.Background()

	first, err := api.CreateTask(ctx, draft("First"))
	require.NoError(t, err)
	second, err := api.CreateTask(ctx, draft("Second"))
	require.NoError(t, err)

	assert.Equal(t, 2, repo.saves)
	assert.True(t, fixedNow.Equal(first.AssignedTime))

	tasks, err := api.ListTasks(ctx, "", services.AllCategories)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID, "newest first")
	assert.Equal(t, first.ID, tasks[1].ID)
}

func TestCreateTask_ValidationDoesNotSave(t *testing.T) {
	api, repo := setupTestAPI(t, false)

	_, err := api.CreateTask(context.Background(), draft(""))
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), "title")
	assert.Equal(t, 0, repo.saves)
}

func TestSeedDemo(t *testing.T) {
	t.Run("seeds a journal that was never saved", func(t *testing.T) {
		api, repo := setupTestAPI(t, true)

		tasks, err := api.ListTasks(context.Background(), "", services.AllCategories)
		require.NoError(t, err)
		assert.Len(t, tasks, 4)
		assert.Equal(t, 0, repo.saves, "reads never save")
	})

	t.Run("empty saved journal is not reseeded", func(t *testing.T) {
		api, repo := setupTestAPI(t, true)
		require.NoError(t, repo.Save(context.Background(), domain.Snapshot{}))

		tasks, err := api.ListTasks(context.Background(), "", services.AllCategories)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("no seeding when disabled", func(t *testing.T) {
		api, _ := setupTestAPI(t, false)

		stats, err := api.GetStatistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.Statistics{}, stats)
	})
}

func TestGetStatistics_DemoJournal(t *testing.T) {
	api, _ := setupTestAPI(t, true)

	stats, err := api.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{Total: 4, Completed: 1, InProgress: 2, Pending: 1}, stats)
}

func TestUpdateTask(t *testing.T) {
	api, repo := setupTestAPI(t, false)
	ctx := context.Background()

	task, err := api.CreateTask(ctx, draft("Original"))
	require.NoError(t, err)

	changed := task.Draft()
	changed.Title = "Renamed"
	updated, err := api.UpdateTask(ctx, task.ID, changed)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 2, repo.saves)

	got, found, err := api.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Renamed", got.Title)

	updated, err = api.UpdateTask(ctx, "missing", changed)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 2, repo.saves, "no-op update does not save")
}

func TestDeleteTask(t *testing.T) {
	api, repo := setupTestAPI(t, true)
	ctx := context.Background()

	deleted, err := api.DeleteTask(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 0, repo.saves)

	deleted, err = api.DeleteTask(ctx, "2")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, repo.saves)

	_, found, err := api.GetTask(ctx, "2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestChangeStatusAndAdvance(t *testing.T) {
	api, _ := setupTestAPI(t, true)
	ctx := context.Background()

	task, found, err := api.ChangeStatus(ctx, "3", domain.StatusDone)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.StatusDone, task.Status)
	require.NotNil(t, task.CompletedTime)
	assert.True(t, fixedNow.Equal(*task.CompletedTime))

	task, _, err = api.ChangeStatus(ctx, "3", domain.StatusPending)
	require.NoError(t, err)
	assert.NotNil(t, task.CompletedTime, "reopening keeps the completed time")

	task, found, err = api.AdvanceTask(ctx, "3")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.StatusInProgress, task.Status)

	_, found, err = api.AdvanceTask(ctx, "1")
	assert.True(t, found)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	_, found, err = api.ChangeStatus(ctx, "missing", domain.StatusDone)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAddComment(t *testing.T) {
	api, repo := setupTestAPI(t, true)
	ctx := context.Background()

	comment, found, err := api.AddComment(ctx, "2", "  Looks good ")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Looks good", comment.Content)
	assert.Equal(t, "Ngoc Tram", comment.Author)
	assert.Equal(t, 1, repo.saves)

	_, _, err = api.AddComment(ctx, "2", "   ")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Equal(t, 1, repo.saves)

	task, _, err := api.GetTask(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, task.Comments, 1)
}

func TestResolveTaskID(t *testing.T) {
	api, _ := setupTestAPI(t, true)
	ctx := context.Background()

	_, err := api.CreateTask(ctx, draft("a")) // task-0001-x
	require.NoError(t, err)
	_, err = api.CreateTask(ctx, draft("b")) // task-0002-x
	require.NoError(t, err)

	tests := []struct {
		name     string
		ref      string
		expected string
		errType  errors.ErrorType
	}{
		{"exact short id", "1", "1", 0},
		{"exact full id", "task-0002-x", "task-0002-x", 0},
		{"unique prefix", "task-0001", "task-0001-x", 0},
		{"ambiguous prefix", "task", "", errors.ErrorTypeInvalidInput},
		{"short prefix", "tas", "", errors.ErrorTypeNotFound},
		{"no match", "zzzz", "", errors.ErrorTypeNotFound},
		{"empty", "  ", "", errors.ErrorTypeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := api.ResolveTaskID(ctx, tt.ref)
			if tt.expected != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, id)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, tt.errType), "got %v", err)
		})
	}
}

func TestStorageErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure", func(t *testing.T) {
		api, repo := setupTestAPI(t, false)
		repo.loadErr = stderrors.New("disk gone")

		_, err := api.ListTasks(ctx, "", "")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
		assert.ErrorIs(t, err, repo.loadErr)
	})

	t.Run("save failure", func(t *testing.T) {
		api, repo := setupTestAPI(t, false)
		repo.saveErr = errors.NewStorageError("save journal", stderrors.New("read-only"))

		_, err := api.CreateTask(ctx, draft("x"))
		assert.Same(t, repo.saveErr, err, "app errors pass through unchanged")
	})
}

func TestCategories(t *testing.T) {
	api, _ := setupTestAPI(t, false)
	categories := api.Categories()
	assert.Len(t, categories, 6)

	categories[0] = "mutated"
	assert.Equal(t, "Development", api.Categories()[0])

	custom := New(repository.NewMemory(), Options{Categories: []string{"Ops"}})
	assert.Equal(t, []string{"Ops"}, custom.Categories())
}
