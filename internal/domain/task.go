package domain

import (
	"time"
)

// Task represents a unit of tracked work in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	Assignment    string     `json:"assignment" yaml:"assignment"`
	Category      string     `json:"category" yaml:"category"`
	Status        Status     `json:"status" yaml:"status"`
	AssignedTime  time.Time  `json:"assigned_time" yaml:"assigned_time"`
	CompletedTime *time.Time `json:"completed_time,omitempty" yaml:"completed_time,omitempty"`
	Comments      []Comment  `json:"comments" yaml:"comments"`
}

// TaskDraft holds the user-editable fields of a task.
// It is the input of both create and update; ID and comments are owned by the store.
type TaskDraft struct {
	Title         string
	Description   string
	Assignment    string
	Category      string
	Status        Status
	AssignedTime  time.Time
	CompletedTime *time.Time
}

// Draft returns the editable fields of the task.
func (t Task) Draft() TaskDraft {
	return TaskDraft{
		Title:         t.Title,
		Description:   t.Description,
		Assignment:    t.Assignment,
		Category:      t.Category,
		Status:        t.Status,
		AssignedTime:  t.AssignedTime,
		CompletedTime: cloneTime(t.CompletedTime),
	}
}

// ApplyDraft overwrites every draft field, keeping ID and comments.
func (t Task) ApplyDraft(d TaskDraft) Task {
	t.Title = d.Title
	t.Description = d.Description
	t.Assignment = d.Assignment
	t.Category = d.Category
	t.Status = d.Status
	t.AssignedTime = d.AssignedTime
	t.CompletedTime = cloneTime(d.CompletedTime)
	return t
}

// WithStatus returns the task moved to status at the given time.
// Entering Done stamps CompletedTime (overwriting any earlier stamp);
// leaving Done keeps it.
func (t Task) WithStatus(status Status, now time.Time) Task {
	t.Status = status
	if status == StatusDone {
		t.CompletedTime = &now
	}
	return t
}

// IsCompleted reports whether the task has ever been completed.
func (t Task) IsCompleted() bool {
	return t.CompletedTime != nil
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	t.CompletedTime = cloneTime(t.CompletedTime)
	if t.Comments != nil {
		comments := make([]Comment, len(t.Comments))
		copy(comments, t.Comments)
		t.Comments = comments
	}
	return t
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
