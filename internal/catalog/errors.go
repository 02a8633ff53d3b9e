package catalog

import (
	"errors"
	"fmt"
)

// ErrInPlaceOverwrite is returned when a stage that is not total asks to write
// its output over its own input file.
var ErrInPlaceOverwrite = errors.New("refusing to overwrite the input catalog in place")

// MissingInputError is returned when a required catalog file does not exist.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("required catalog file not found: %s", e.Path)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// DecodeError is returned when a catalog file cannot be read or parsed.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("read catalog %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteError is returned when the output catalog cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write catalog %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// SchemaDriftError reports a product that lacks a field template expansion needs.
type SchemaDriftError struct {
	ProductID string
	Field     string
}

func (e *SchemaDriftError) Error() string {
	id := e.ProductID
	if id == "" {
		id = "<no id>"
	}
	return fmt.Sprintf("product %s: missing required field %s", id, e.Field)
}
