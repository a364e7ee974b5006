package services

import (
	"strings"

	"work-journal/internal/domain"
)

// Filter returns the tasks whose title or description contains query
// (case-insensitive, whitespace included) and whose category equals category.
// An empty query matches every task; AllCategories matches every category.
// Order is preserved.
func Filter(tasks []domain.Task, query, category string) []domain.Task {
	needle := strings.ToLower(query)
	result := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesCategory(task, category) || !matchesQuery(task, needle) {
			continue
		}
		result = append(result, task)
	}
	return result
}

func matchesCategory(task domain.Task, category string) bool {
	return category == AllCategories || task.Category == category
}

func matchesQuery(task domain.Task, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), needle) ||
		strings.Contains(strings.ToLower(task.Description), needle)
}
