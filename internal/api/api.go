package api

import (
	"context"
	"strings"

	"work-journal/internal/domain"
	"work-journal/internal/errors"
	"work-journal/internal/logging"
	"work-journal/internal/repository"
	"work-journal/internal/seed"
	"work-journal/internal/services"
	"work-journal/internal/validation"
)

// MinIDPrefix is the shortest id prefix accepted by ResolveTaskID
const MinIDPrefix = 4

// API defines the journal operations available to the command line.
// Every mutating call loads the journal, applies one store operation and
// saves the result only if something changed.
type API interface {
	// Task operations
	CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, bool, error)
	UpdateTask(ctx context.Context, id string, draft domain.TaskDraft) (bool, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
	ResolveTaskID(ctx context.Context, ref string) (string, error)

	// Status and comments
	ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, bool, error)
	AdvanceTask(ctx context.Context, id string) (*domain.Task, bool, error)
	AddComment(ctx context.Context, id string, content string) (*domain.Comment, bool, error)

	// Views
	ListTasks(ctx context.Context, query, category string) ([]domain.Task, error)
	GetBoard(ctx context.Context, query, category string) (*Board, error)
	GetStatistics(ctx context.Context) (domain.Statistics, error)
	Categories() []string
}

// Options carries the external context handed to every task store
type Options struct {
	Categories  []string
	CurrentUser string
	SeedDemo    bool
	Validator   *validation.TaskValidator

	// StoreOptions are appended last, e.g. a fixed clock in tests
	StoreOptions []services.Option
}

type apiImpl struct {
	repo    repository.Repository
	options Options
}

// New creates a new API instance over repo
func New(repo repository.Repository, opts Options) API {
	if len(opts.Categories) == 0 {
		opts.Categories = seed.DefaultCategories()
	}
	opts.Categories = append([]string(nil), opts.Categories...)
	return &apiImpl{repo: repo, options: opts}
}

// loadStore builds a task store from the saved journal, seeding a journal that was never saved
func (a *apiImpl) loadStore(ctx context.Context) (*services.TaskStore, error) {
	snap, err := a.repo.Load(ctx)
	if err != nil {
		return nil, wrapStorage("load journal", err)
	}

	var tasks []domain.Task
	switch {
	case snap != nil:
		tasks = snap.Tasks
	case a.options.SeedDemo:
		logging.Debugln("journal never saved, seeding demo tasks")
		tasks = seed.DemoTasks()
	}

	opts := []services.Option{
		services.WithCategories(a.options.Categories),
		services.WithCurrentUser(a.options.CurrentUser),
		services.WithTasks(tasks),
		services.WithValidator(a.options.Validator),
	}
	return services.NewTaskStore(append(opts, a.options.StoreOptions...)...), nil
}

func (a *apiImpl) save(ctx context.Context, store *services.TaskStore) error {
	if err := a.repo.Save(ctx, store.Snapshot()); err != nil {
		return wrapStorage("save journal", err)
	}
	return nil
}

func (a *apiImpl) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, err
	}

	task, err := store.Create(draft)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, store); err != nil {
		return nil, err
	}

	logging.Debugf("created task %s\n", task.ID)
	return &task, nil
}

func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, bool, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, false, err
	}
	task, ok := store.Get(id)
	if !ok {
		return nil, false, nil
	}
	return &task, true, nil
}

func (a *apiImpl) UpdateTask(ctx context.Context, id string, draft domain.TaskDraft) (bool, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return false, err
	}

	updated, err := store.Update(id, draft)
	if err != nil || !updated {
		return false, err
	}
	return true, a.save(ctx, store)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return false, err
	}

	if !store.Delete(id) {
		return false, nil
	}
	return true, a.save(ctx, store)
}

// ResolveTaskID maps a full id, or a unique prefix of at least MinIDPrefix characters, to a task id
func (a *apiImpl) ResolveTaskID(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.NewInvalidInputError("id", ref, "task id is required")
	}

	store, err := a.loadStore(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := store.Get(ref); ok {
		return ref, nil
	}
	if len(ref) < MinIDPrefix {
		return "", errors.NewNotFoundError("task", ref)
	}

	var matches []string
	for _, task := range store.Tasks() {
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", errors.NewNotFoundError("task", ref)
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewInvalidInputError("id", ref, "prefix matches more than one task")
	}
}

func (a *apiImpl) ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, bool, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, false, err
	}

	changed, err := store.ChangeStatus(id, status)
	if err != nil || !changed {
		return nil, false, err
	}
	if err := a.save(ctx, store); err != nil {
		return nil, true, err
	}
	task, _ := store.Get(id)
	return &task, true, nil
}

func (a *apiImpl) AdvanceTask(ctx context.Context, id string) (*domain.Task, bool, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, false, err
	}

	task, found, err := store.Advance(id)
	if err != nil || !found {
		return nil, found, err
	}
	if err := a.save(ctx, store); err != nil {
		return nil, true, err
	}
	return &task, true, nil
}

func (a *apiImpl) AddComment(ctx context.Context, id string, content string) (*domain.Comment, bool, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, false, err
	}

	comment, found, err := store.AddComment(id, content)
	if err != nil || !found {
		return nil, found, err
	}
	if err := a.save(ctx, store); err != nil {
		return nil, true, err
	}
	return &comment, true, nil
}

func (a *apiImpl) ListTasks(ctx context.Context, query, category string) ([]domain.Task, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, err
	}
	return services.Filter(store.Tasks(), query, category), nil
}

func (a *apiImpl) GetStatistics(ctx context.Context) (domain.Statistics, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	return services.ComputeStatistics(store.Tasks()), nil
}

func (a *apiImpl) Categories() []string {
	return append([]string(nil), a.options.Categories...)
}

func wrapStorage(operation string, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewStorageError(operation, err)
}
