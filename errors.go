// errors declares the error types reported by the loaders, the transform
// functions and the chart builder. Callers can switch on the concrete type;
// every message carries a "dataplot: " prefix.
package dataplot

import (
	"fmt"
)

// IOError reports a file that could not be opened, read or written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("dataplot: cannot access %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports malformed delimited input, usually a row whose field
// count differs from the header.
type ParseError struct {
	Path string
	Row  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("dataplot: parse %q row %d: %s", e.Path, e.Row, e.Msg)
	}
	return fmt.Sprintf("dataplot: parse %q: %s", e.Path, e.Msg)
}

// DeserializationError reports a corrupt or incompatible object file.
type DeserializationError struct {
	Path string
	Err  error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("dataplot: cannot decode object file %q: %v", e.Path, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// NotFoundError reports a bundled dataset name with no registry entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataplot: no bundled dataset %q", e.Name)
}

// ColumnNotFoundError reports a reference to a column the table does not
// have.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("dataplot: column %q not found", e.Column)
}

// EvaluationError reports a mutate expression that referenced an undefined
// column or read a cell with the wrong type.
type EvaluationError struct {
	Column string
	Msg    string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("dataplot: evaluating %q: %s", e.Column, e.Msg)
}

// MissingChannelError reports a chart layer that does not bind a visual
// channel its geometry requires.
type MissingChannelError struct {
	Geometry string
	Channel  string
}

func (e *MissingChannelError) Error() string {
	return fmt.Sprintf("dataplot: %s layer requires channel %q", e.Geometry, e.Channel)
}

// DuplicateKeyError reports a spread where more than one source row maps to
// the same output cell.
type DuplicateKeyError struct {
	Group string
	Key   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("dataplot: spread: duplicate value for key %q in group %s", e.Key, e.Group)
}

// ConflictError reports a margin label colliding with a real category.
type ConflictError struct {
	Label string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("dataplot: margin label %q collides with an existing category", e.Label)
}
