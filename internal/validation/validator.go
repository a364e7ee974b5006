package validation

import (
	"strings"
	"unicode/utf8"

	"work-journal/internal/config"
	"work-journal/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance without length caps
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed rune count is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsKnownCategory checks category membership in the caller-owned category set
func (v *Validator) IsKnownCategory(category string, categories []string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidStatus checks that status is one of the known statuses
func (v *Validator) IsValidStatus(status domain.Status) bool {
	return status.IsValid()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TextMaxLength returns the configured cap for title and assignment; 0 means no cap
func (v *Validator) TextMaxLength() int {
	if v.config != nil && v.config.Validation.TextMaxLength > 0 {
		return v.config.Validation.TextMaxLength
	}
	return 0
}

// DescriptionMaxLength returns the configured description cap; 0 means no cap
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil && v.config.Validation.DescriptionMaxLength > 0 {
		return v.config.Validation.DescriptionMaxLength
	}
	return 0
}

// CommentMaxLength returns the configured comment cap; 0 means no cap
func (v *Validator) CommentMaxLength() int {
	if v.config != nil && v.config.Validation.CommentMaxLength > 0 {
		return v.config.Validation.CommentMaxLength
	}
	return 0
}
