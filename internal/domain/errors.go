package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotConfigured  = errors.New("llm provider not configured")
	ErrEmptyResult    = errors.New("the model returned no recommendations; try broadening the filters")
)

// MalformedOutputError reports model output that is not parseable JSON. Raw
// keeps the original text for diagnostics.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// SchemaViolationError reports parsed model output that fails the
// recommendation schema. The batch is rejected as a whole.
type SchemaViolationError struct {
	Violations []string
}

func (e *SchemaViolationError) Error() string {
	return "model output violates recommendation schema: " + strings.Join(e.Violations, "; ")
}
