package models

// Table is a rectangular grid of string cells with lookup indexes for its
// column headers and row labels.
//
// Row 0 holds the column headers and column 0 holds the row labels. The
// dimensions of a table never change; only cell contents are rewritten.
type Table struct {
	cells   [][]string
	columns map[string]uint
	rows    map[string]uint
}

// NewTable wraps already validated cells and indexes. The table takes
// ownership of all three arguments.
func NewTable(cells [][]string, columns, rows map[string]uint) *Table {
	return &Table{
		cells:   cells,
		columns: columns,
		rows:    rows,
	}
}

// Rows returns the number of rows including the header row.
func (t *Table) Rows() int {
	return len(t.cells)
}

// Cols returns the number of columns including the label column.
func (t *Table) Cols() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Cell returns the content of the cell at c.
func (t *Table) Cell(c Coord) string {
	return t.cells[c.Row][c.Col]
}

// SetCell replaces the content of the cell at c.
func (t *Table) SetCell(c Coord, value string) {
	t.cells[c.Row][c.Col] = value
}

// IsFormula reports whether the cell at c still holds an unevaluated formula.
func (t *Table) IsFormula(c Coord) bool {
	v := t.Cell(c)
	return len(v) > 0 && v[0] == FormulaPrefix
}

// Column returns the column index of the header name.
func (t *Table) Column(name string) (uint, bool) {
	i, ok := t.columns[name]
	return i, ok
}

// Row returns the row index of the row label.
func (t *Table) Row(label string) (uint, bool) {
	i, ok := t.rows[label]
	return i, ok
}

// Location returns the human readable name of a cell: its column header
// followed by its row label, e.g. "B2".
func (t *Table) Location(c Coord) string {
	return t.cells[0][c.Col] + t.cells[c.Row][0]
}

// Headers returns the column names, without the empty corner cell.
func (t *Table) Headers() []string {
	if len(t.cells) == 0 {
		return nil
	}
	return append([]string(nil), t.cells[0][1:]...)
}

// Records returns a copy of every row, header row first.
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.cells))
	for i, row := range t.cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Clone returns a deep copy of the table. Indexes are shared since they are
// never modified after load.
func (t *Table) Clone() *Table {
	return &Table{
		cells:   t.Records(),
		columns: t.columns,
		rows:    t.rows,
	}
}
