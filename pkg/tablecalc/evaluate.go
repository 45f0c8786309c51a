package tablecalc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/parser"
)

// EvaluateChain evaluates the formula cells in order and writes each result
// back into the table. Operands must already hold integers, which holds for
// any order produced by Resolve.
func EvaluateChain(t *models.Table, order []models.Coord, opts Options) error {
	log := opts.logger()

	for _, cell := range order {
		f, err := parser.ParseFormula(t.Cell(cell), t, opts.StrictFormulas)
		if err != nil {
			return NewCellError(t, cell, err)
		}

		a, err := operandValue(t, f.A)
		if err != nil {
			return NewCellError(t, cell, err)
		}
		b, err := operandValue(t, f.B)
		if err != nil {
			return NewCellError(t, cell, err)
		}

		v, err := Apply(f.Op, a, b)
		if err != nil {
			return NewCellError(t, cell, err)
		}

		result := strconv.FormatInt(v, 10)
		log.Debug("evaluated cell", "cell", t.Location(cell), "formula", t.Cell(cell), "value", result)
		t.SetCell(cell, result)
	}

	return nil
}

func operandValue(t *models.Table, c models.Coord) (int64, error) {
	v, err := strconv.ParseInt(t.Cell(c), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is %q", ErrInvalidOperand, t.Location(c), t.Cell(c))
	}
	return v, nil
}

// Apply computes a op b on 64-bit integers. Division truncates toward zero.
func Apply(op models.Operator, a, b int64) (int64, error) {
	switch op {
	case models.OpAdd:
		if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
			return 0, ErrOverflow
		}
		return a + b, nil
	case models.OpSub:
		if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
			return 0, ErrOverflow
		}
		return a - b, nil
	case models.OpMul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		p := a * b
		if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, ErrOverflow
		}
		return p, nil
	case models.OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		if a == math.MinInt64 && b == -1 {
			return 0, ErrOverflow
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: %q", parser.ErrInvalidOperator, byte(op))
}
