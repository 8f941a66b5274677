package parser

import (
	"fmt"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

// numericColumns are coerced to numbers; anything non-numeric becomes nil.
var numericColumns = map[string]bool{
	models.ColumnChange: true,
}

// textColumns are always held as strings so join keys and filters compare
// like with like even when a title or code is numeric.
var textColumns = map[string]bool{
	models.ColumnFilm:        true,
	models.ColumnCountry:     true,
	models.ColumnDistributor: true,
}

// ExtractTable reads rowCount rows from startRow into a table named by
// schema. columns selects the source columns; nil means the first
// len(schema) columns.
func ExtractTable(g grid.Grid, startRow, rowCount int, schema []string, columns []int) (models.Table, error) {
	if columns == nil {
		columns = grid.Columns(len(schema))
	}
	if len(columns) != len(schema) {
		return models.Table{}, fmt.Errorf("extract table: %d source columns for %d column names", len(columns), len(schema))
	}
	if rowCount < 0 {
		return models.Table{}, fmt.Errorf("extract table: negative row count %d at row index %d", rowCount, startRow)
	}

	region := grid.ReadRegion(g, startRow, rowCount, columns)
	rows := make([][]any, len(region))
	for i, cells := range region {
		row := make([]any, len(schema))
		for j, cell := range cells {
			row[j] = convertCell(schema[j], cell)
		}
		rows[i] = row
	}
	return models.NewTable(schema, rows), nil
}

func convertCell(column string, v grid.Value) any {
	switch {
	case numericColumns[column]:
		if f, ok := v.Float(); ok {
			return f
		}
		return nil
	case textColumns[column]:
		if v.IsEmpty() {
			return nil
		}
		return v.String()
	default:
		if v.IsEmpty() {
			return nil
		}
		return v.Any()
	}
}
