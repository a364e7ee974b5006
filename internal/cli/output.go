package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"work-journal/internal/domain"
	"work-journal/internal/services"
)

// Output formats accepted by format=
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

var taskTableHeader = "ID\tSTATUS\tCATEGORY\tTITLE\tASSIGNED BY\tASSIGNED"

var taskCSVHeader = []string{
	"ID", "Title", "Description", "Assigned By", "Category", "Status",
	"Assigned Time", "Completed Time", "Comments",
}

// writeTaskTable prints one aligned row per task
func writeTaskTable(w io.Writer, tasks []domain.Task, timeFormat string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, taskTableHeader)
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(task.ID),
			task.Status,
			task.Category,
			task.Title,
			task.Assignment,
			task.AssignedTime.Local().Format(timeFormat),
		)
	}
	return tw.Flush()
}

// writeGroupedTable prints a heading and a table for every category group
func writeGroupedTable(w io.Writer, groups []services.CategoryGroup, timeFormat string) error {
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", group.Category, len(group.Tasks))
		if err := writeTaskTable(w, group.Tasks, timeFormat); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeTaskCSV writes tasks as CSV with RFC3339 timestamps
func writeTaskCSV(w io.Writer, tasks []domain.Task) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(taskCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		var completed string
		if task.CompletedTime != nil {
			completed = task.CompletedTime.Format(time.RFC3339)
		}
		row := []string{
			task.ID,
			task.Title,
			task.Description,
			task.Assignment,
			task.Category,
			task.Status.String(),
			task.AssignedTime.Format(time.RFC3339),
			completed,
			strconv.Itoa(len(task.Comments)),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeStatistics prints the per-status counts
func writeStatistics(w io.Writer, stats domain.Statistics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total\t%d\n", stats.Total)
	fmt.Fprintf(tw, "Completed\t%d\n", stats.Completed)
	fmt.Fprintf(tw, "In Progress\t%d\n", stats.InProgress)
	fmt.Fprintf(tw, "Pending\t%d\n", stats.Pending)
	return tw.Flush()
}

// writeTaskCard prints every field of a task followed by its comments
func writeTaskCard(w io.Writer, task domain.Task, timeFormat string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Title)
	fmt.Fprintf(tw, "Status:\t%s\n", task.Status)
	fmt.Fprintf(tw, "Category:\t%s\n", task.Category)
	fmt.Fprintf(tw, "Assigned by:\t%s\n", task.Assignment)
	fmt.Fprintf(tw, "Assigned:\t%s\n", task.AssignedTime.Local().Format(timeFormat))
	if task.CompletedTime != nil {
		fmt.Fprintf(tw, "Completed:\t%s\n", task.CompletedTime.Local().Format(timeFormat))
	}
	if task.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", task.Description)
	}
	if label := domain.ActionLabel(task.Status); label != "" {
		fmt.Fprintf(tw, "Next action:\t%s (wj next %s)\n", label, shortID(task.ID))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(task.Comments) == 0 {
		fmt.Fprintln(w, "\nNo comments")
		return nil
	}
	fmt.Fprintf(w, "\nComments (%d):\n", len(task.Comments))
	for _, comment := range task.Comments {
		fmt.Fprintf(w, "  [%s] %s: %s\n",
			comment.Timestamp.Local().Format(timeFormat), comment.Author, comment.Content)
	}
	return nil
}
