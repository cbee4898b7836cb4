package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ParseError reports malformed XML input.
type ParseError struct {
	File Path
	Line int // 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	var b strings.Builder

	b.WriteString("parse xml")

	if e.File != "" {
		fmt.Fprintf(&b, " %s", e.File)
	}

	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}

	fmt.Fprintf(&b, ": %v", e.Err)

	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ModelMismatchError reports a document no registered data-object can handle.
type ModelMismatchError struct {
	File Path
	Root string
}

func (e *ModelMismatchError) Error() string {
	return fmt.Sprintf("no model registered for %s (root <%s>)", e.File, e.Root)
}

// FieldError reports a source literal that cannot be stored in a typed field.
type FieldError struct {
	Path  string
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s/@%s: invalid value %q: %v", e.Path, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnmappedError lists content a strict decode found no field for.
type UnmappedError struct {
	Paths []string
}

func (e *UnmappedError) Error() string {
	const maxShown = 3

	shown := e.Paths
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}

	msg := "unmapped content: " + strings.Join(shown, ", ")
	if len(e.Paths) > maxShown {
		msg += fmt.Sprintf(", ... (total %d)", len(e.Paths))
	}

	return msg
}
