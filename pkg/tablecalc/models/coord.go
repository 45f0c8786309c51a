// Package models defines the table data structures shared by the loader,
// the evaluator and the output writers.
package models

import "fmt"

// Coord addresses a single cell of a table.
type Coord struct {
	// Row is the 0-based row index. Row 0 holds the column headers.
	Row uint `json:"row"`
	// Col is the 0-based column index. Column 0 holds the row labels.
	Col uint `json:"col"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
