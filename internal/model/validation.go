package model

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports caller-supplied data that violates a
// required-field or format rule. Fields names every offending field so
// callers can surface them individually.
type ValidationError struct {
	Fields []string
}

// NewValidationError creates a ValidationError for the given fields
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// RequireFields returns a ValidationError naming every field whose value
// is blank, or nil when all are present. Field ordering is stable.
func RequireFields(fields map[string]string) *ValidationError {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ValidationError{Fields: missing}
}
