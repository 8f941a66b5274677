package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

// WriteCSV writes t with a header row of its column names.
func WriteCSV(w io.Writer, t models.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, row := range t.Rows {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = cellString(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
