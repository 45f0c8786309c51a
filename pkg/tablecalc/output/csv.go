// Package output serializes resolved tables.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
)

// ToCSV writes the table as comma-separated rows, one per line, in the same
// form the text loader reads.
func ToCSV(w io.Writer, t *models.Table) error {
	bw := bufio.NewWriter(w)
	for _, row := range t.Records() {
		if _, err := bw.WriteString(strings.Join(row, ",")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
