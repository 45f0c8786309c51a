package output

import (
	"io"
	"strconv"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet name used when none is given.
const DefaultSheet = "Sheet1"

// ToXLSX writes the table as a single-sheet workbook. Headers and row labels
// are stored as text and data cells as numbers.
func ToXLSX(w io.Writer, t *models.Table, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return err
		}
	}

	for r, record := range t.Records() {
		values := make([]interface{}, len(record))
		for c, cell := range record {
			values[c] = cell
			if r == 0 || c == 0 {
				continue
			}
			if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
				values[c] = v
			}
		}

		start, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}
