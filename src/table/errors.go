package table

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the input file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrMalformed indicates the input could not be parsed as a table.
var ErrMalformed = errors.New("malformed table")

// ErrMissingColumn indicates a required column is absent from the header.
var ErrMissingColumn = errors.New("column not found")

// ColumnError names the column that was looked up and what the header offered instead.
type ColumnError struct {
	Column    string
	Available []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}
