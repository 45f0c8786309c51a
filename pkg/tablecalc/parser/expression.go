package parser

import (
	"fmt"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
)

// Index resolves column headers and row labels to table positions.
// *models.Table implements it.
type Index interface {
	Column(name string) (uint, bool)
	Row(label string) (uint, bool)
}

// ParseFormula decodes a formula of the form =<col><row><op><col><row>,
// e.g. "=A1+B2". Characters after the second operand are ignored unless
// strict is set.
func ParseFormula(expr string, idx Index, strict bool) (models.Formula, error) {
	var f models.Formula
	if len(expr) == 0 || expr[0] != models.FormulaPrefix {
		return f, ErrInvalidExpression
	}

	s := formulaScanner{expr: expr, pos: 1, idx: idx}

	a, err := s.operand()
	if err != nil {
		return f, err
	}
	op, err := s.operator()
	if err != nil {
		return f, err
	}
	b, err := s.operand()
	if err != nil {
		return f, err
	}
	if strict && s.pos < len(s.expr) {
		return f, fmt.Errorf("%w: %q", ErrTrailingCharacters, s.expr[s.pos:])
	}

	return models.Formula{A: a, Op: op, B: b}, nil
}

type formulaScanner struct {
	expr string
	pos  int
	idx  Index
}

// operand reads a column name followed by a row label.
func (s *formulaScanner) operand() (models.Coord, error) {
	start := s.pos
	for s.pos < len(s.expr) && !isDigit(rune(s.expr[s.pos])) {
		s.pos++
	}
	if s.pos >= len(s.expr) {
		return models.Coord{}, ErrInvalidExpression
	}
	name := s.expr[start:s.pos]
	col, ok := s.idx.Column(name)
	if !ok {
		return models.Coord{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	start = s.pos
	for s.pos < len(s.expr) && isDigit(rune(s.expr[s.pos])) {
		s.pos++
	}
	label := s.expr[start:s.pos]
	row, ok := s.idx.Row(label)
	if !ok {
		return models.Coord{}, fmt.Errorf("%w: %q", ErrUnknownRow, label)
	}

	return models.Coord{Row: row, Col: col}, nil
}

func (s *formulaScanner) operator() (models.Operator, error) {
	if s.pos >= len(s.expr) {
		return 0, fmt.Errorf("%w: missing operator", ErrInvalidOperator)
	}
	b := s.expr[s.pos]
	if !models.IsOperator(b) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, b)
	}
	s.pos++
	return models.Operator(b), nil
}
