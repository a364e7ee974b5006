package services

import (
	"time"

	"work-journal/internal/domain"
	"work-journal/internal/validation"
)

// Option configures a TaskStore
type Option func(*TaskStore)

// WithClock sets the time source used for assigned, completed and comment timestamps
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the generator for task and comment ids
func WithIDGenerator(gen func() string) Option {
	return func(s *TaskStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithCategories sets the category set. The slice is copied.
func WithCategories(categories []string) Option {
	return func(s *TaskStore) {
		s.categories = append([]string(nil), categories...)
	}
}

// WithCurrentUser sets the author recorded on new comments
func WithCurrentUser(name string) Option {
	return func(s *TaskStore) {
		s.currentUser = name
	}
}

// WithTasks sets the initial collection. The tasks are deep-copied.
func WithTasks(tasks []domain.Task) Option {
	return func(s *TaskStore) {
		s.tasks = cloneTasks(tasks)
	}
}

// WithValidator replaces the default task validator, e.g. one carrying configured limits
func WithValidator(v *validation.TaskValidator) Option {
	return func(s *TaskStore) {
		if v != nil {
			s.validator = v
		}
	}
}
