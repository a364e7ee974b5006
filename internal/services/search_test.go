package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tasks := fourTasks()

	tests := []struct {
		name     string
		query    string
		category string
		expected []string
	}{
		{"empty query and all", "", AllCategories, []string{"t1", "t2", "t3", "t4"}},
		{"empty category is not a wildcard", "", "", []string{}},
		{"title match is case-insensitive", "login", AllCategories, []string{"t1", "t4"}},
		{"description match", "WIREFRAMES", AllCategories, []string{"t2"}},
		{"query and category", "login", "Development", []string{"t1", "t4"}},
		{"category only", "", "Meeting", []string{"t3"}},
		{"category excludes", "login", "Design", []string{}},
		{"unknown category", "", "Gardening", []string{}},
		{"whitespace is part of the query", " sync", AllCategories, []string{"t3"}},
		{"blank query is a literal", "  ", AllCategories, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, taskIDs(Filter(tasks, tt.query, tt.category)))
		})
	}
}

func TestFilter_SubsetProperty(t *testing.T) {
	tasks := fourTasks()
	queries := []string{"", "o", "login", "dash", "zzz"}
	categories := append([]string{AllCategories}, testCategories...)

	for _, q := range queries {
		all := taskIDs(Filter(tasks, q, AllCategories))
		assert.Subset(t, taskIDs(tasks), all)
		for _, c := range categories {
			assert.Subset(t, all, taskIDs(Filter(tasks, q, c)), "query %q category %q", q, c)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	tasks := fourTasks()
	_ = Filter(tasks, "login", "Development")
	assert.Equal(t, fourTasks(), tasks)
}
