package model

import (
	"fmt"
	"sort"
	"strings"
)

// APIError is a request failure reported by the LuxeBid backend.
// Status is the HTTP status code; Fields carries per-field validation
// messages when the backend returned them (field name -> messages).
type APIError struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for f := range e.Fields {
			names = append(names, f)
		}
		sort.Strings(names)
		return fmt.Sprintf("HTTP %d: %s (fields: %s)", e.Status, e.Message, strings.Join(names, ", "))
	}
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// FieldMessages returns the validation messages for a field, or nil.
func (e *APIError) FieldMessages(field string) []string {
	if e.Fields == nil {
		return nil
	}
	return e.Fields[field]
}

// NewValidationError builds a client-side validation failure for a
// single field, matching the shape of backend validation responses.
func NewValidationError(field, message string) *APIError {
	return &APIError{
		Status:  400,
		Message: "validation failed",
		Fields:  map[string][]string{field: {message}},
	}
}
