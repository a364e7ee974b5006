package validation

import (
	"work-journal/internal/domain"
)

// TaskValidator validates task drafts, statuses and comment content at the store boundary
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// NewTaskValidatorWith creates a task validator backed by v
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	if v == nil {
		v = NewValidator()
	}
	return &TaskValidator{validator: v}
}

// NormalizeDraft trims the text fields of a draft and defaults an empty status to Pending
func (tv *TaskValidator) NormalizeDraft(draft domain.TaskDraft) domain.TaskDraft {
	draft.Title = tv.validator.TrimAndValidateString(draft.Title)
	draft.Description = tv.validator.TrimAndValidateString(draft.Description)
	draft.Assignment = tv.validator.TrimAndValidateString(draft.Assignment)
	draft.Category = tv.validator.TrimAndValidateString(draft.Category)
	if draft.Status == "" {
		draft.Status = domain.StatusPending
	}
	return draft
}

// ValidateDraft validates a normalized draft against the category set.
// All field problems are reported together.
func (tv *TaskValidator) ValidateDraft(draft domain.TaskDraft, categories []string) error {
	validationError := NewValidationError()

	tv.validateText(validationError, "title", draft.Title, tv.validator.TextMaxLength())
	tv.validateText(validationError, "description", draft.Description, tv.validator.DescriptionMaxLength())
	tv.validateText(validationError, "assignment", draft.Assignment, tv.validator.TextMaxLength())

	if !tv.validator.IsNonEmptyString(draft.Category) {
		validationError.AddRequiredError("category")
	} else if !tv.validator.IsKnownCategory(draft.Category, categories) {
		validationError.AddInvalidValueError("category", draft.Category, "must be one of the configured categories")
	}

	if !tv.validator.IsValidStatus(draft.Status) {
		validationError.AddInvalidValueError("status", draft.Status, "must be Pending, In Progress or Done")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateStatus validates a target status for a status change
func (tv *TaskValidator) ValidateStatus(status domain.Status) error {
	if !tv.validator.IsValidStatus(status) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be Pending, In Progress or Done")
		return validationError
	}
	return nil
}

// ValidateCommentContent validates comment text; it must be non-empty after trimming
func (tv *TaskValidator) ValidateCommentContent(content string) error {
	validationError := NewValidationError()
	tv.validateText(validationError, "content", content, tv.validator.CommentMaxLength())
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// validateText requires non-blank text; max of 0 means no length cap
func (tv *TaskValidator) validateText(ve *ValidationError, field, value string, max int) {
	if !tv.validator.IsNonEmptyString(value) {
		ve.AddRequiredError(field)
		return
	}
	if max > 0 && !tv.validator.IsValidStringLength(value, 1, max) {
		ve.AddInvalidLengthError(field, value, 1, max)
	}
}
