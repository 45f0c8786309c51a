package models

import "testing"

func newTestTable() *Table {
	cells := [][]string{
		{"", "A", "Total"},
		{"1", "1", "2"},
		{"7", "=A1+Total1", "5"},
	}
	columns := map[string]uint{"A": 1, "Total": 2}
	rows := map[string]uint{"1": 1, "7": 2}
	return NewTable(cells, columns, rows)
}

func TestTableLookup(t *testing.T) {
	tbl := newTestTable()

	if tbl.Rows() != 3 || tbl.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", tbl.Rows(), tbl.Cols())
	}
	if col, ok := tbl.Column("Total"); !ok || col != 2 {
		t.Errorf("Column(Total) = %d, %v", col, ok)
	}
	if _, ok := tbl.Column("B"); ok {
		t.Error("Column(B) should not exist")
	}
	if row, ok := tbl.Row("7"); !ok || row != 2 {
		t.Errorf("Row(7) = %d, %v", row, ok)
	}
	if _, ok := tbl.Row("2"); ok {
		t.Error("Row(2) should not exist")
	}
}

func TestTableLocation(t *testing.T) {
	tbl := newTestTable()

	tests := []struct {
		coord    Coord
		expected string
	}{
		{Coord{Row: 1, Col: 1}, "A1"},
		{Coord{Row: 2, Col: 1}, "A7"},
		{Coord{Row: 2, Col: 2}, "Total7"},
	}
	for _, tt := range tests {
		if got := tbl.Location(tt.coord); got != tt.expected {
			t.Errorf("Location(%v) = %q, expected %q", tt.coord, got, tt.expected)
		}
	}
}

func TestTableIsFormula(t *testing.T) {
	tbl := newTestTable()
	c := Coord{Row: 2, Col: 1}

	if !tbl.IsFormula(c) {
		t.Fatalf("%v should be a formula", c)
	}
	tbl.SetCell(c, "3")
	if tbl.IsFormula(c) {
		t.Errorf("%v should no longer be a formula", c)
	}
	if tbl.Cell(c) != "3" {
		t.Errorf("Cell(%v) = %q, expected 3", c, tbl.Cell(c))
	}
}

func TestTableCloneIsIndependent(t *testing.T) {
	tbl := newTestTable()
	clone := tbl.Clone()
	c := Coord{Row: 1, Col: 1}

	clone.SetCell(c, "42")
	if tbl.Cell(c) != "1" {
		t.Errorf("original changed to %q after editing clone", tbl.Cell(c))
	}
	records := tbl.Records()
	records[0][1] = "X"
	if tbl.Headers()[0] != "A" {
		t.Error("Records should return a copy")
	}
}

func TestIsOperator(t *testing.T) {
	for _, b := range []byte("+-*/") {
		if !IsOperator(b) {
			t.Errorf("IsOperator(%q) = false", b)
		}
	}
	for _, b := range []byte("%^=1A ") {
		if IsOperator(b) {
			t.Errorf("IsOperator(%q) = true", b)
		}
	}
}
