package service

import (
	"errors"
	"fmt"
)

// ErrQuizNotFound is returned when the quiz file does not exist.
var ErrQuizNotFound = errors.New("quiz file not found")

// ParseError describes a quiz document that is malformed or misses a
// required field.
type ParseError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "invalid quiz document"
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missingField(field string) *ParseError {
	return &ParseError{Field: field, Reason: "required field is missing"}
}

func invalidField(field, format string, args ...any) *ParseError {
	return &ParseError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
