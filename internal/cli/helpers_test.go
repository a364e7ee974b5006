package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"work-journal/internal/api"
	"work-journal/internal/domain"
	"work-journal/internal/repository"
	"work-journal/internal/services"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestAPI returns an API over an in-memory journal holding the demo tasks
func newTestAPI(t *testing.T) api.API {
	t.Helper()

	n := 0
	return api.New(repository.NewMemory(), api.Options{
		CurrentUser: "Tester",
		SeedDemo:    true,
		StoreOptions: []services.Option{
			services.WithClock(func() time.Time { return fixedNow }),
			services.WithIDGenerator(func() string {
				n++
				return fmt.Sprintf("task-%04d-x", n)
			}),
		},
	})
}

// setupTestApp returns an app writing to a buffer
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	app := NewApp(newTestAPI(t))
	out := &bytes.Buffer{}
	app.SetOutput(out)
	return app, out
}

// failingAPI fails every journal read with err
type failingAPI struct {
	api.API
	err error
}

func (f *failingAPI) GetTask(ctx context.Context, id string) (*domain.Task, bool, error) {
	return nil, false, f.err
}

func (f *failingAPI) ResolveTaskID(ctx context.Context, ref string) (string, error) {
	return "", f.err
}

func (f *failingAPI) GetBoard(ctx context.Context, query, category string) (*api.Board, error) {
	return nil, f.err
}

func (f *failingAPI) GetStatistics(ctx context.Context) (domain.Statistics, error) {
	return domain.Statistics{}, f.err
}

func (f *failingAPI) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	return nil, f.err
}
