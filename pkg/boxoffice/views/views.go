// Package views derives the filtered, merged and display-ready tables of a
// parsed report.
package views

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

// ErrSchemaMismatch indicates two tables with different columns were merged.
var ErrSchemaMismatch = errors.New("table schemas differ")

// CountryDelimiter separates multiple countries of origin.
const CountryDelimiter = "/"

// FilterByCountry keeps rows whose country of origin, split on "/", has a
// part equal to token.
func FilterByCountry(t models.Table, token string) models.Table {
	col := t.ColumnIndex(models.ColumnCountry)
	return filter(t, func(row []any) bool {
		if col < 0 {
			return false
		}
		s, ok := row[col].(string)
		if !ok {
			return false
		}
		return slices.Contains(strings.Split(s, CountryDelimiter), token)
	})
}

// FilterByWeeksOnRelease keeps rows whose weeks on release equals n.
func FilterByWeeksOnRelease(t models.Table, n int) models.Table {
	col := t.ColumnIndex(models.ColumnWeeks)
	return filter(t, func(row []any) bool {
		if col < 0 {
			return false
		}
		f, ok := row[col].(float64)
		return ok && f == float64(n)
	})
}

func filter(t models.Table, keep func(row []any) bool) models.Table {
	var rows [][]any
	for _, row := range t.Rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return models.NewTable(t.Columns, rows)
}

// MergeTables returns the rows of primary followed by the rows of
// secondary. Both tables must have the same columns in the same order.
func MergeTables(primary, secondary models.Table) (models.Table, error) {
	if !slices.Equal(primary.Columns, secondary.Columns) {
		return models.Table{}, fmt.Errorf("%w: %q and %q", ErrSchemaMismatch, primary.Columns, secondary.Columns)
	}
	rows := make([][]any, 0, primary.Len()+secondary.Len())
	rows = append(rows, primary.Rows...)
	rows = append(rows, secondary.Rows...)
	return models.NewTable(primary.Columns, rows), nil
}

// JoinNotes left-joins notes onto t by film name as a trailing Notes
// column. Films without notes get nil.
func JoinNotes(t models.Table, notes models.Notes) models.Table {
	film := t.ColumnIndex(models.ColumnFilm)
	columns := append(slices.Clone(t.Columns), models.ColumnNotes)
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		r := append(slices.Clone(row), nil)
		if film >= 0 {
			if name, ok := row[film].(string); ok {
				if text, ok := notes.Get(name); ok {
					r[len(r)-1] = text
				}
			}
		}
		rows[i] = r
	}
	return models.NewTable(columns, rows)
}
