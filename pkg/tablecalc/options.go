// Package tablecalc evaluates the formula cells of a table.
package tablecalc

import (
	"fmt"
	"io"
	"log/slog"
)

// CycleCheck selects how the resolver detects circular references.
type CycleCheck string

const (
	// CycleCheckRevisit fails whenever a breadth-first walk reaches the same
	// formula cell twice. This also rejects fan-in, where two formulas of one
	// chain share an operand formula.
	CycleCheckRevisit CycleCheck = "revisit"
	// CycleCheckPath fails only when a cell depends on itself, directly or
	// through other cells.
	CycleCheckPath CycleCheck = "path"
)

// ParseCycleCheck converts a mode name to a CycleCheck.
func ParseCycleCheck(s string) (CycleCheck, error) {
	switch CycleCheck(s) {
	case CycleCheckRevisit, CycleCheckPath:
		return CycleCheck(s), nil
	}
	return "", fmt.Errorf("invalid cycle check: %s (must be revisit or path)", s)
}

// Options configures evaluation behavior.
type Options struct {
	// CycleCheck selects the circular reference check. Empty means revisit.
	CycleCheck CycleCheck
	// StrictFormulas rejects characters after the second operand.
	StrictFormulas bool
	// Sheet names the worksheet of xlsx input. Empty selects the first sheet.
	Sheet string
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default evaluation options.
func DefaultOptions() Options {
	return Options{
		CycleCheck: CycleCheckRevisit,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
