package services

import (
	"strings"
)

// ValidationError reports a request the client must fix.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingFields(fields []string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
	}
}

func invalidField(field string, err error) *ValidationError {
	return &ValidationError{
		Fields:  []string{field},
		Message: err.Error(),
	}
}

func invalidType(field, value string, allowed []string) *ValidationError {
	return &ValidationError{
		Fields:  []string{field},
		Message: "Invalid " + field + " \"" + value + "\", expected one of: " + strings.Join(allowed, ", "),
	}
}
