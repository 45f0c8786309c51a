package models

// FormulaPrefix marks a cell whose content is a formula.
const FormulaPrefix = '='

// Operator is the binary operation of a formula.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

// IsOperator reports whether b is one of the supported operators.
func IsOperator(b byte) bool {
	switch Operator(b) {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

func (o Operator) String() string {
	return string(rune(o))
}

// Formula is a decoded formula cell: a binary operation between two cells.
type Formula struct {
	// A is the left operand.
	A Coord `json:"a"`
	// Op is the operator.
	Op Operator `json:"op"`
	// B is the right operand.
	B Coord `json:"b"`
}

// Operands returns both operand coordinates, left first.
func (f Formula) Operands() [2]Coord {
	return [2]Coord{f.A, f.B}
}
