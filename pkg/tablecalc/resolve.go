package tablecalc

import (
	"slices"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/parser"
)

// Resolve returns the order in which the formula at target and every formula
// it depends on must be evaluated. Each cell's operands are literals or
// appear earlier in the order; target is always last.
func Resolve(t *models.Table, target models.Coord, opts Options) ([]models.Coord, error) {
	r := resolver{table: t, strict: opts.StrictFormulas}
	if opts.CycleCheck == CycleCheckPath {
		return r.byPath(target)
	}
	return r.byRevisit(target)
}

type resolver struct {
	table  *models.Table
	strict bool
}

func (r *resolver) formula(c models.Coord) (models.Formula, error) {
	f, err := parser.ParseFormula(r.table.Cell(c), r.table, r.strict)
	if err != nil {
		return f, NewCellError(r.table, c, err)
	}
	return f, nil
}

// byRevisit walks the chain breadth first. Visited cells are pushed on a
// stack, so popping it yields the deepest dependencies first.
func (r *resolver) byRevisit(target models.Coord) ([]models.Coord, error) {
	queue := []models.Coord{target}
	visited := make(map[models.Coord]struct{})
	var stack []models.Coord

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		if _, seen := visited[cell]; seen {
			return nil, NewCellError(r.table, cell, ErrCircularReference)
		}
		visited[cell] = struct{}{}
		stack = append(stack, cell)

		f, err := r.formula(cell)
		if err != nil {
			return nil, err
		}
		for _, operand := range f.Operands() {
			if r.table.IsFormula(operand) {
				queue = append(queue, operand)
			}
		}
	}

	slices.Reverse(stack)
	return stack, nil
}

type frame struct {
	cell     models.Coord
	operands [2]models.Coord
	next     int
}

// byPath walks the chain depth first and emits cells in post-order. Only a
// cell reached again while it is still on the current path is a cycle.
func (r *resolver) byPath(target models.Coord) ([]models.Coord, error) {
	const (
		visiting = iota + 1
		done
	)
	state := make(map[models.Coord]int)
	var (
		order []models.Coord
		path  []*frame
	)

	push := func(c models.Coord) error {
		f, err := r.formula(c)
		if err != nil {
			return err
		}
		state[c] = visiting
		path = append(path, &frame{cell: c, operands: f.Operands()})
		return nil
	}

	if err := push(target); err != nil {
		return nil, err
	}
	for len(path) > 0 {
		top := path[len(path)-1]
		if top.next < len(top.operands) {
			operand := top.operands[top.next]
			top.next++
			if !r.table.IsFormula(operand) {
				continue
			}
			switch state[operand] {
			case visiting:
				return nil, NewCellError(r.table, operand, ErrCircularReference)
			case done:
				continue
			}
			if err := push(operand); err != nil {
				return nil, err
			}
			continue
		}

		state[top.cell] = done
		order = append(order, top.cell)
		path = path[:len(path)-1]
	}

	return order, nil
}
