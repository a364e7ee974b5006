package services

import (
	"strings"
	"time"

	"work-journal/internal/domain"
	"work-journal/internal/errors"
	"work-journal/internal/validation"

	"github.com/google/uuid"
)

// maxIDAttempts bounds id regeneration when the generator keeps colliding
const maxIDAttempts = 16

// TaskStore owns an ordered task collection, newest first.
// It is not safe for concurrent use; a store belongs to a single session.
type TaskStore struct {
	tasks       []domain.Task
	categories  []string
	currentUser string
	now         func() time.Time
	newID       func() string
	validator   *validation.TaskValidator
}

// NewTaskStore creates a store configured by opts
func NewTaskStore(opts ...Option) *TaskStore {
	s := &TaskStore{
		tasks:     []domain.Task{},
		now:       time.Now,
		newID:     uuid.NewString,
		validator: validation.NewTaskValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates draft and inserts a new task at the front of the collection
func (s *TaskStore) Create(draft domain.TaskDraft) (domain.Task, error) {
	now := s.now()
	draft = s.validator.NormalizeDraft(draft)
	if draft.AssignedTime.IsZero() {
		draft.AssignedTime = now
	}
	if draft.Status == domain.StatusDone && draft.CompletedTime == nil {
		draft.CompletedTime = &now
	}

	if err := s.validateDraft(draft); err != nil {
		return domain.Task{}, err
	}

	id, err := s.uniqueID(s.hasTask)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{ID: id, Comments: []domain.Comment{}}.ApplyDraft(draft)
	s.tasks = append([]domain.Task{task}, s.tasks...)
	return task.Clone(), nil
}

// Update overwrites the editable fields of the task with the given id.
// ID and comments are kept. A zero AssignedTime or nil CompletedTime in the
// draft carries the current value forward. It reports false if no task matches.
func (s *TaskStore) Update(id string, draft domain.TaskDraft) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	current := s.tasks[i]

	draft = s.validator.NormalizeDraft(draft)
	if draft.AssignedTime.IsZero() {
		draft.AssignedTime = current.AssignedTime
	}
	if draft.CompletedTime == nil && current.CompletedTime != nil {
		completed := *current.CompletedTime
		draft.CompletedTime = &completed
	}
	if draft.Status == domain.StatusDone && draft.CompletedTime == nil {
		now := s.now()
		draft.CompletedTime = &now
	}

	if err := s.validateDraft(draft); err != nil {
		return false, err
	}

	s.tasks[i] = current.ApplyDraft(draft)
	return true, nil
}

// Delete removes the task with the given id, reporting whether it existed
func (s *TaskStore) Delete(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// ChangeStatus moves a task to status. Entering Done stamps CompletedTime with
// the current time; any other status leaves it untouched.
func (s *TaskStore) ChangeStatus(id string, status domain.Status) (bool, error) {
	if err := s.validator.ValidateStatus(status); err != nil {
		return false, wrapValidation(err)
	}
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.tasks[i] = s.tasks[i].WithStatus(status, s.now())
	return true, nil
}

// Advance applies the quick action for the task's current status:
// Pending starts, In Progress completes. A Done task has no quick action.
func (s *TaskStore) Advance(id string) (domain.Task, bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false, nil
	}
	next, ok := domain.NextStatus(s.tasks[i].Status)
	if !ok {
		return domain.Task{}, true, errors.NewInvalidInputError("status", s.tasks[i].Status, "task is already done")
	}
	s.tasks[i] = s.tasks[i].WithStatus(next, s.now())
	return s.tasks[i].Clone(), true, nil
}

// AddComment appends a comment by the current user to a task.
// Content is trimmed and must not be empty.
func (s *TaskStore) AddComment(taskID string, content string) (domain.Comment, bool, error) {
	content = strings.TrimSpace(content)
	if err := s.validator.ValidateCommentContent(content); err != nil {
		return domain.Comment{}, false, wrapValidation(err)
	}

	i := s.indexOf(taskID)
	if i < 0 {
		return domain.Comment{}, false, nil
	}
	task := &s.tasks[i]

	id, err := s.uniqueID(func(id string) bool {
		for _, c := range task.Comments {
			if c.ID == id {
				return true
			}
		}
		return false
	})
	if err != nil {
		return domain.Comment{}, true, err
	}

	comment := domain.Comment{
		ID:        id,
		Author:    s.currentUser,
		Content:   content,
		Timestamp: s.now(),
	}
	task.Comments = append(task.Comments, comment)
	return comment, true, nil
}

// Tasks returns a deep copy of the collection in order
func (s *TaskStore) Tasks() []domain.Task {
	return cloneTasks(s.tasks)
}

// Get returns a copy of the task with the given id
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Categories returns a copy of the category set
func (s *TaskStore) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Snapshot returns the collection in its persisted form
func (s *TaskStore) Snapshot() domain.Snapshot {
	return domain.Snapshot{Tasks: s.Tasks()}
}

func (s *TaskStore) validateDraft(draft domain.TaskDraft) error {
	if err := s.validator.ValidateDraft(draft, s.categories); err != nil {
		return wrapValidation(err)
	}
	return nil
}

func (s *TaskStore) uniqueID(taken func(string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if id := s.newID(); id != "" && !taken(id) {
			return id, nil
		}
	}
	return "", errors.NewInvalidInputError("id", nil, "could not generate a unique id")
}

func (s *TaskStore) hasTask(id string) bool {
	return s.indexOf(id) >= 0
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func wrapValidation(err error) error {
	if ve, ok := validation.AsValidationError(err); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return errors.NewValidationError(err.Error(), err)
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
