package services

import (
	"fmt"
	"time"

	"work-journal/internal/domain"
)

var testCategories = []string{"Development", "Design", "Meeting", "Documentation"}

// fakeClock returns base and advances one minute per call
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func validDraft(title string) domain.TaskDraft {
	return domain.TaskDraft{
		Title:       title,
		Description: "Some work to do",
		Assignment:  "Emily Davis",
		Category:    "Development",
	}
}

// fourTasks is a collection with 2 Pending, 1 In Progress and 1 Done task
func fourTasks() []domain.Task {
	assigned := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	completed := assigned.Add(24 * time.Hour)
	return []domain.Task{
		{ID: "t1", Title: "Fix login bug", Description: "Session cookie expires early", Assignment: "Ngoc Tram", Category: "Development", Status: domain.StatusDone, AssignedTime: assigned, CompletedTime: &completed, Comments: []domain.Comment{}},
		{ID: "t2", Title: "Dashboard mockups", Description: "Wireframes for the new dashboard", Assignment: "Ngoc Tram", Category: "Design", Status: domain.StatusInProgress, AssignedTime: assigned, Comments: []domain.Comment{}},
		{ID: "t3", Title: "Team sync", Description: "Discuss project progress and blockers.", Assignment: "Emily Davis", Category: "Meeting", Status: domain.StatusPending, AssignedTime: assigned, Comments: []domain.Comment{}},
		{ID: "t4", Title: "Refactor LOGIN form", Description: "Split into components", Assignment: "David Kim", Category: "Development", Status: domain.StatusPending, AssignedTime: assigned, Comments: []domain.Comment{}},
	}
}

func newTestStore(opts ...Option) (*TaskStore, *fakeClock) {
	clock := newFakeClock()
	base := []Option{
		WithClock(clock.Now),
		WithIDGenerator(sequentialIDs("id-")),
		WithCategories(testCategories),
		WithCurrentUser("Ngoc Tram"),
	}
	return NewTaskStore(append(base, opts...)...), clock
}
