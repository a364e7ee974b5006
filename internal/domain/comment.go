package domain

import "time"

// Comment is timestamped feedback attached to a task. Comments are never edited.
type Comment struct {
	ID        string    `json:"id" yaml:"id"`
	Author    string    `json:"author" yaml:"author"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Snapshot is the persisted state of a journal: the ordered task collection.
type Snapshot struct {
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// Statistics holds task counts per status.
type Statistics struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}
