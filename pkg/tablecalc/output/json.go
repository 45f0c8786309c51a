package output

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
)

// ToView converts a resolved table to its serialized form. Every data cell
// must hold an integer.
func ToView(t *models.Table) (*models.TableView, error) {
	records := t.Records()
	view := &models.TableView{
		Columns: t.Headers(),
		Rows:    make([]models.RowView, 0, len(records)),
	}
	if len(records) > 0 {
		records = records[1:]
	}

	for _, record := range records {
		row := models.RowView{
			Label:  record[0],
			Values: make([]int64, len(record)-1),
		}
		for i, cell := range record[1:] {
			v, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("cell %s%s is not resolved: %q", view.Columns[i], record[0], cell)
			}
			row.Values[i] = v
		}
		view.Rows = append(view.Rows, row)
	}

	return view, nil
}

// ToJSON serializes a resolved table to JSON.
func ToJSON(t *models.Table, pretty bool) ([]byte, error) {
	view, err := ToView(t)
	if err != nil {
		return nil, err
	}
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
