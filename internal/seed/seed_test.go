package seed

import (
	"testing"

	"work-journal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	assert.Equal(t, []string{"Development", "Design", "Meeting", "Documentation", "Testing", "Review"}, categories)

	categories[0] = "changed"
	assert.Equal(t, "Development", DefaultCategories()[0], "each call returns a fresh slice")
}

func TestDemoTasks(t *testing.T) {
	tasks := DemoTasks()
	assert.Len(t, tasks, 4)

	known := map[string]bool{}
	for _, c := range DefaultCategories() {
		known[c] = true
	}

	ids := map[string]bool{}
	for _, task := range tasks {
		assert.False(t, ids[task.ID], "duplicate id %s", task.ID)
		ids[task.ID] = true
		assert.True(t, known[task.Category], "unknown category %s", task.Category)
		assert.True(t, task.Status.IsValid())
		assert.NotNil(t, task.Comments)
		if task.Status == domain.StatusDone {
			assert.NotNil(t, task.CompletedTime)
		}
	}
}
