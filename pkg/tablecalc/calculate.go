package tablecalc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/parser"
)

// Calculate loads the table at path and evaluates every formula in it.
// Files with an .xlsx extension are read as workbooks, anything else as text.
func Calculate(path string, opts Options) (*models.Table, error) {
	t, err := load(path, opts)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("loaded table", "path", path, "rows", t.Rows(), "cols", t.Cols())

	if err := Evaluate(t, opts); err != nil {
		return nil, err
	}
	return t, nil
}

// CalculateReader reads a text table from r and evaluates it.
func CalculateReader(r io.Reader, opts Options) (*models.Table, error) {
	t, err := parser.ReadTable(r)
	if err != nil {
		return nil, err
	}
	if err := Evaluate(t, opts); err != nil {
		return nil, err
	}
	return t, nil
}

func load(path string, opts Options) (*models.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return parser.ReadWorkbook(path, opts.Sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return parser.ReadTable(f)
}

// Evaluate resolves and evaluates every formula cell of t in row-major
// order. Cells already resolved as part of an earlier chain are skipped.
func Evaluate(t *models.Table, opts Options) error {
	log := opts.logger()

	for row := 1; row < t.Rows(); row++ {
		for col := 1; col < t.Cols(); col++ {
			cell := models.Coord{Row: uint(row), Col: uint(col)}
			if !t.IsFormula(cell) {
				continue
			}

			order, err := Resolve(t, cell, opts)
			if err != nil {
				return err
			}
			log.Debug("resolved formula chain", "cell", t.Location(cell), "length", len(order))

			if err := EvaluateChain(t, order, opts); err != nil {
				return err
			}
		}
	}

	return nil
}
