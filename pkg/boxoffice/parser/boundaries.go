package parser

import (
	"fmt"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
)

// IsBlankRow reports whether every cell of row is empty. A row beyond the
// sheet is blank.
func IsBlankRow(g grid.Grid, row int) bool {
	for _, v := range g.Row(row) {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

// RowContains reports whether any cell of row is exactly text.
func RowContains(g grid.Grid, row int, text string) bool {
	for _, v := range g.Row(row) {
		if v.Kind == grid.KindText && v.Text == text {
			return true
		}
	}
	return false
}

// ExpectSentinelAt fails unless row contains sentinel.
func ExpectSentinelAt(g grid.Grid, row int, sentinel string) error {
	if RowContains(g, row, sentinel) {
		return nil
	}
	return &LayoutError{Expected: fmt.Sprintf("sentinel %q", sentinel), FromRow: row, ToRow: row}
}

// FindSentinelRow returns the first row at or after startRow that contains
// sentinel.
func FindSentinelRow(g grid.Grid, startRow int, sentinel string) (int, error) {
	n := g.NumRows()
	for row := startRow; row < n; row++ {
		if RowContains(g, row, sentinel) {
			return row, nil
		}
	}
	return -1, &LayoutError{
		Expected: fmt.Sprintf("sentinel %q", sentinel),
		FromRow:  startRow,
		ToRow:    n - 1,
		Detail:   "string not found before the end of the sheet",
	}
}

// FindNextBlankRow returns the first blank row at or after startRow.
func FindNextBlankRow(g grid.Grid, startRow int) (int, error) {
	n := g.NumRows()
	for row := startRow; row < n; row++ {
		if IsBlankRow(g, row) {
			return row, nil
		}
	}
	return -1, &LayoutError{
		Expected: "a blank separator row",
		FromRow:  startRow,
		ToRow:    n - 1,
		Detail:   "no blank row before the end of the sheet",
	}
}
