package sqlite

import (
	"fmt"

	"work-journal/internal/domain"
)

// toTaskRow maps a domain task at the given position to a tasks row
func toTaskRow(task domain.Task, position int) taskRow {
	return taskRow{
		ID:            task.ID,
		Position:      position,
		Title:         task.Title,
		Description:   task.Description,
		Assignment:    task.Assignment,
		Category:      task.Category,
		Status:        string(task.Status),
		AssignedTime:  FormatTimeForDB(task.AssignedTime),
		CompletedTime: FormatTimePtrForDB(task.CompletedTime),
	}
}

// toCommentRow maps a domain comment to a comments row
func toCommentRow(taskID string, comment domain.Comment, position int) commentRow {
	return commentRow{
		ID:        comment.ID,
		TaskID:    taskID,
		Position:  position,
		Author:    comment.Author,
		Content:   comment.Content,
		Timestamp: FormatTimeForDB(comment.Timestamp),
	}
}

// toDomainTask maps a tasks row to a domain task without comments
func toDomainTask(row *taskRow) (domain.Task, error) {
	assigned, err := ParseTimeFromDB(row.AssignedTime)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: invalid assigned_time: %w", row.ID, err)
	}
	completed, err := ParseTimePtrFromDB(row.CompletedTime)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: invalid completed_time: %w", row.ID, err)
	}

	return domain.Task{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Assignment:    row.Assignment,
		Category:      row.Category,
		Status:        domain.Status(row.Status),
		AssignedTime:  assigned,
		CompletedTime: completed,
		Comments:      []domain.Comment{},
	}, nil
}

// toDomainComment maps a comments row to a domain comment
func toDomainComment(row *commentRow) (domain.Comment, error) {
	ts, err := ParseTimeFromDB(row.Timestamp)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("comment %s: invalid timestamp: %w", row.ID, err)
	}
	return domain.Comment{
		ID:        row.ID,
		Author:    row.Author,
		Content:   row.Content,
		Timestamp: ts,
	}, nil
}
