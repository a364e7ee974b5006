package cli

import (
	"time"

	"work-journal/internal/domain"
	"work-journal/internal/errors"
)

// draftKeys are the key=value options understood by add and edit
var draftKeys = []string{"title", "description", "by", "category", "status", "assigned", "completed"}

// inputTimeLayouts are accepted for assigned= and completed=
var inputTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// applyDraftOptions overwrites the draft fields named in p
func applyDraftOptions(draft *domain.TaskDraft, p parsedArgs) error {
	if v, ok := p.get("title"); ok {
		draft.Title = v
	}
	if v, ok := p.get("description"); ok {
		draft.Description = v
	}
	if v, ok := p.get("by"); ok {
		draft.Assignment = v
	}
	if v, ok := p.get("category"); ok {
		draft.Category = v
	}
	if v, ok := p.get("status"); ok {
		status, err := parseStatusArg(v)
		if err != nil {
			return err
		}
		draft.Status = status
	}
	if v, ok := p.get("assigned"); ok {
		t, err := parseTimeArg("assigned", v)
		if err != nil {
			return err
		}
		draft.AssignedTime = t
	}
	if v, ok := p.get("completed"); ok {
		t, err := parseTimeArg("completed", v)
		if err != nil {
			return err
		}
		draft.CompletedTime = &t
	}
	return nil
}

func parseStatusArg(s string) (domain.Status, error) {
	status, ok := domain.ParseStatus(s)
	if !ok {
		return "", errors.NewInvalidInputError("status", s, "must be one of Pending, In Progress, Done")
	}
	return status, nil
}

func parseTimeArg(field, s string) (time.Time, error) {
	for _, layout := range inputTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewInvalidInputError(field, s, "expected a date like 2024-01-15 or 2024-01-15 09:00")
}
