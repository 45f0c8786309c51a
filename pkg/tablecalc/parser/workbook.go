package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads a table from one sheet of an xlsx file. An empty sheet
// name selects the first sheet.
func ReadWorkbook(path, sheet string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSheet(f, sheet)
}

// ReadSheet loads a table from a sheet of an open workbook. Cells holding an
// Excel formula are read as "=" followed by the formula text; every other
// cell is read as its raw value. Short rows are padded to the header width.
func ReadSheet(f *excelize.File, sheet string) (*models.Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, NewLoadError(0, ErrEmptyInput)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, NewLoadError(0, ErrEmptyInput)
	}

	width := len(rows[0])
	records := make([][]string, len(rows))
	for r, row := range rows {
		if len(row) > width {
			return nil, NewLoadError(r+1, fmt.Errorf("%w: got %d, want %d", ErrRowWidth, len(row), width))
		}
		record := make([]string, width)
		copy(record, row)

		if r > 0 {
			for c := 1; c < width; c++ {
				formula, err := cellFormula(f, sheet, c, r)
				if err != nil {
					return nil, err
				}
				if formula != "" {
					record[c] = formula
				}
			}
		}
		records[r] = record
	}

	return ParseTable(records)
}

// cellFormula returns the formula stored at the 0-based position, with the
// leading "=", or "" when the cell holds a plain value.
func cellFormula(f *excelize.File, sheet string, col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", err
	}
	formula, err := f.GetCellFormula(sheet, name)
	if err != nil {
		return "", fmt.Errorf("reading formula %s!%s: %w", sheet, name, err)
	}
	if formula == "" {
		return "", nil
	}
	return string(models.FormulaPrefix) + strings.TrimPrefix(formula, "="), nil
}
