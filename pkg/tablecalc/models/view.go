package models

// TableView is the serialized form of a resolved table.
type TableView struct {
	// Columns lists the column headers in order.
	Columns []string `json:"columns"`
	// Rows contains every data row in order.
	Rows []RowView `json:"rows"`
}

// RowView represents one data row of a resolved table.
type RowView struct {
	// Label is the row label as written in the input.
	Label string `json:"label"`
	// Values holds the cell values, one per column.
	Values []int64 `json:"values"`
}
