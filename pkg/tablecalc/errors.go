package tablecalc

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file could not be opened")

// Evaluation errors. They are returned wrapped in a *CellError.
var (
	ErrCircularReference = errors.New("circular reference in expression")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidOperand    = errors.New("operand is not an integer")
	ErrOverflow          = errors.New("integer overflow")
)

// Formula parse errors, re-exported from the parser package.
var (
	ErrParse              = parser.ErrParse
	ErrInvalidExpression  = parser.ErrInvalidExpression
	ErrUnknownColumn      = parser.ErrUnknownColumn
	ErrUnknownRow         = parser.ErrUnknownRow
	ErrInvalidOperator    = parser.ErrInvalidOperator
	ErrTrailingCharacters = parser.ErrTrailingCharacters
)

// CellError locates an error at the cell being resolved or evaluated.
type CellError struct {
	Location string // column header followed by row label, e.g. "B2"
	Coord    models.Coord
	Err      error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s has %v", e.Location, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// NewCellError creates a new CellError for the cell at c.
func NewCellError(t *models.Table, c models.Coord, err error) *CellError {
	return &CellError{
		Location: t.Location(c),
		Coord:    c,
		Err:      err,
	}
}
