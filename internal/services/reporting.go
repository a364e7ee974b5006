package services

import (
	"work-journal/internal/domain"
)

// GroupByCategory partitions tasks by category. Groups appear in the order
// their category is first seen and keep the relative order of their tasks.
func GroupByCategory(tasks []domain.Task) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, task := range tasks {
		i, ok := index[task.Category]
		if !ok {
			i = len(groups)
			index[task.Category] = i
			groups = append(groups, CategoryGroup{Category: task.Category})
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
	}
	return groups
}

// ComputeStatistics counts tasks per status
func ComputeStatistics(tasks []domain.Task) domain.Statistics {
	stats := domain.Statistics{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case domain.StatusDone:
			stats.Completed++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusPending:
			stats.Pending++
		}
	}
	return stats
}
