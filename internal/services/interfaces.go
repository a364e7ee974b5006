package services

import (
	"work-journal/internal/domain"
)

// AllCategories is the category filter value that matches every task
const AllCategories = "all"

// CategoryGroup is one partition produced by GroupByCategory
type CategoryGroup struct {
	Category string        `json:"category"`
	Tasks    []domain.Task `json:"tasks"`
}

// Store is the set of operations the journal exposes over its task collection
type Store interface {
	// Mutations
	Create(draft domain.TaskDraft) (domain.Task, error)
	Update(id string, draft domain.TaskDraft) (bool, error)
	Delete(id string) bool
	ChangeStatus(id string, status domain.Status) (bool, error)
	Advance(id string) (domain.Task, bool, error)
	AddComment(taskID string, content string) (domain.Comment, bool, error)

	// Reads
	Tasks() []domain.Task
	Get(id string) (domain.Task, bool)
	Categories() []string
	Snapshot() domain.Snapshot
}

var _ Store = (*TaskStore)(nil)
