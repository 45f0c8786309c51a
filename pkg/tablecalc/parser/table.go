package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
)

// maxRowSize bounds the length of a single input row.
const maxRowSize = 16 << 20

// ReadTable reads a table from r. Rows are separated by whitespace and the
// cells of a row by commas.
func ReadTable(r io.Reader) (*models.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowSize)
	scanner.Split(bufio.ScanWords)

	var records [][]string
	for scanner.Scan() {
		records = append(records, SplitRow(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	return ParseTable(records)
}

// SplitRow splits a row into cells. A single empty cell left by a trailing
// comma is dropped, so "1,2," has two cells.
func SplitRow(row string) []string {
	cells := strings.Split(row, ",")
	if len(cells) > 1 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// ParseTable validates raw records and builds the column and row indexes.
// The first record is the header row. ParseTable takes ownership of records.
func ParseTable(records [][]string) (*models.Table, error) {
	if len(records) == 0 {
		return nil, NewLoadError(0, ErrEmptyInput)
	}

	header := records[0]
	columns, err := indexColumns(header)
	if err != nil {
		return nil, NewLoadError(1, err)
	}

	rows := make(map[string]uint, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		line := i + 1

		if len(record) != len(header) {
			return nil, NewLoadError(line, fmt.Errorf("%w: got %d, want %d", ErrRowWidth, len(record), len(header)))
		}

		label := record[0]
		n, err := strconv.Atoi(label)
		if err != nil {
			return nil, NewLoadError(line, fmt.Errorf("%w: %q", ErrRowLabelNotNumber, label))
		}
		if n <= 0 {
			return nil, NewLoadError(line, fmt.Errorf("%w: %q", ErrRowLabelNotPositive, label))
		}
		if _, exists := rows[label]; exists {
			return nil, NewLoadError(line, fmt.Errorf("%w: %q", ErrDuplicateRowLabel, label))
		}
		rows[label] = uint(i)

		for col := 1; col < len(record); col++ {
			if !validCell(record[col]) {
				return nil, NewLoadError(line, fmt.Errorf("%s%s %w", header[col], label, ErrInvalidCell))
			}
		}
	}

	return models.NewTable(records, columns, rows), nil
}

// indexColumns validates the header row and maps each column name to its
// index.
func indexColumns(header []string) (map[string]uint, error) {
	if header[0] != "" {
		return nil, ErrCornerNotEmpty
	}

	columns := make(map[string]uint, len(header)-1)
	for i := 1; i < len(header); i++ {
		name := header[i]
		if name == "" {
			return nil, ErrEmptyColumnName
		}
		if _, exists := columns[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		if strings.IndexFunc(name, isDigit) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDigitInColumnName, name)
		}
		columns[name] = uint(i)
	}
	return columns, nil
}

// validCell reports whether s is a formula or an integer literal.
func validCell(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == models.FormulaPrefix {
		return true
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
