// Package parser loads tables from text and xlsx sources and decodes
// formula cells.
package parser

import (
	"errors"
	"fmt"
)

// Load errors. They are returned wrapped in a *LoadError.
var (
	ErrEmptyInput          = errors.New("file is empty")
	ErrCornerNotEmpty      = errors.New("upper left cell must be empty")
	ErrEmptyColumnName     = errors.New("column names must not be empty")
	ErrDuplicateColumn     = errors.New("duplicated column names")
	ErrDigitInColumnName   = errors.New("column names must not contain digits")
	ErrRowLabelNotNumber   = errors.New("row names should be positive numbers")
	ErrRowLabelNotPositive = errors.New("row numbers should be positive")
	ErrDuplicateRowLabel   = errors.New("duplicated row names")
	ErrRowWidth            = errors.New("rows must have the same number of cells")
	ErrInvalidCell         = errors.New("cell contains neither number nor expression")
)

// ErrParse matches every formula parse error.
var ErrParse = errors.New("invalid formula")

// Formula parse errors. All of them match ErrParse with errors.Is.
var (
	ErrInvalidExpression  error = parseError("invalid expression")
	ErrUnknownColumn      error = parseError("invalid column name in expression")
	ErrUnknownRow         error = parseError("invalid row name in expression")
	ErrInvalidOperator    error = parseError("invalid operation in expression")
	ErrTrailingCharacters error = parseError("unexpected characters after expression")
)

type parseError string

func (e parseError) Error() string {
	return string(e)
}

func (e parseError) Is(target error) bool {
	return target == ErrParse
}

// LoadError reports a malformed input table.
type LoadError struct {
	Line int // 1-based input row, 0 when not tied to a row
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("row %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(line int, err error) *LoadError {
	return &LoadError{
		Line: line,
		Err:  err,
	}
}
