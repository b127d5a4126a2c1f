package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
)

// WriteCSV writes a header of the variable names and the expression followed
// by one 0/1 record per row.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := append(append([]string(nil), t.Variables...), t.Expression)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header %v: %w", header, err)
	}

	for i, row := range t.Rows {
		record := lo.Map(row.Cells(), func(cell int, _ int) string {
			return strconv.Itoa(cell)
		})
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
