// Package seed holds the built-in category list and the demo journal.
package seed

import (
	"time"

	"work-journal/internal/domain"
)

// DefaultCategories returns the categories offered when none are configured
func DefaultCategories() []string {
	return []string{"Development", "Design", "Meeting", "Documentation", "Testing", "Review"}
}

// DemoTasks returns a small journal used to populate a new installation
func DemoTasks() []domain.Task {
	completed := time.Date(2024, 1, 16, 17, 30, 0, 0, time.UTC)

	return []domain.Task{
		{
			ID:            "1",
			Title:         "Implement user authentication",
			Description:   "Add login and logout with session handling.",
			Assignment:    "Ngoc Tram",
			Category:      "Development",
			Status:        domain.StatusDone,
			AssignedTime:  time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			CompletedTime: &completed,
			Comments: []domain.Comment{
				{
					ID:        "c1",
					Author:    "Ngoc Tram",
					Content:   "Great work on the implementation!",
					Timestamp: time.Date(2024, 1, 16, 18, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			ID:           "2",
			Title:        "Design dashboard layout",
			Description:  "Wireframes for the main dashboard.",
			Assignment:   "Ngoc Tram",
			Category:     "Design",
			Status:       domain.StatusInProgress,
			AssignedTime: time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC),
			Comments:     []domain.Comment{},
		},
		{
			ID:           "3",
			Title:        "Team sync",
			Description:  "Discuss project progress and blockers.",
			Assignment:   "Emily Davis",
			Category:     "Meeting",
			Status:       domain.StatusPending,
			AssignedTime: time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC),
			Comments:     []domain.Comment{},
		},
		{
			ID:           "4",
			Title:        "Write API documentation",
			Description:  "Document all REST API endpoints with examples.",
			Assignment:   "David Kim",
			Category:     "Documentation",
			Status:       domain.StatusInProgress,
			AssignedTime: time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
			Comments:     []domain.Comment{},
		},
	}
}
