package domain

import "strings"

// Status represents where a task is in its lifecycle.
// Any status can be reached from any other; Done is not terminal.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// AllStatuses lists the statuses in display order.
var AllStatuses = []Status{StatusPending, StatusInProgress, StatusDone}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String returns the display name of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input into a Status.
// Matching is case-insensitive and accepts a few common spellings.
func ParseStatus(s string) (Status, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)

	switch normalized {
	case "pending", "todo", "to do":
		return StatusPending, true
	case "in progress", "inprogress", "progress", "started":
		return StatusInProgress, true
	case "done", "complete", "completed":
		return StatusDone, true
	default:
		return "", false
	}
}

// NextStatus returns the status reached by the quick action on a task card:
// Pending starts the task, In Progress completes it. Done has no quick action.
func NextStatus(s Status) (Status, bool) {
	switch s {
	case StatusPending:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusDone, true
	default:
		return "", false
	}
}

// ActionLabel returns the label of the quick action for a status, if any.
func ActionLabel(s Status) string {
	switch s {
	case StatusPending:
		return "Start"
	case StatusInProgress:
		return "Complete"
	default:
		return ""
	}
}
