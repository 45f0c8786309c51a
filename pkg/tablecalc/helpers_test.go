package tablecalc

import (
	"strings"
	"testing"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/parser"
)

func mustTable(t *testing.T, input string) *models.Table {
	t.Helper()
	tbl, err := parser.ReadTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	return tbl
}

// render joins the table back into its text form.
func render(tbl *models.Table) string {
	var b strings.Builder
	for _, row := range tbl.Records() {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func at(t *testing.T, tbl *models.Table, location string) models.Coord {
	t.Helper()
	for row := 1; row < tbl.Rows(); row++ {
		for col := 1; col < tbl.Cols(); col++ {
			c := models.Coord{Row: uint(row), Col: uint(col)}
			if tbl.Location(c) == location {
				return c
			}
		}
	}
	t.Fatalf("no cell %s", location)
	return models.Coord{}
}
