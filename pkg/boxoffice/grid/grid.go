// Package grid provides typed, coordinate-based access to the first sheet
// of a spreadsheet document.
package grid

// Grid is read-only access to one sheet. Rows and columns are 0-based.
type Grid interface {
	// Cell returns the value at (row, col), or Empty outside the sheet.
	Cell(row, col int) Value
	// Row returns the values of a row. The slice may be shorter than the
	// widest row of the sheet; missing trailing cells are Empty.
	Row(row int) []Value
	// NumRows returns the number of rows in the sheet.
	NumRows() int
}

// Memory is a Grid held entirely in memory.
type Memory struct {
	rows [][]Value
}

// NewMemory returns a grid over rows. The rows are not copied.
func NewMemory(rows [][]Value) *Memory {
	return &Memory{rows: rows}
}

// FromRows builds a grid from loosely typed cells: nil is Empty, strings
// are kept as text, numeric Go types become numbers and Value is used as-is.
func FromRows(rows [][]any) *Memory {
	out := make([][]Value, len(rows))
	for r, row := range rows {
		vals := make([]Value, len(row))
		for c, cell := range row {
			vals[c] = toValue(cell)
		}
		out[r] = vals
	}
	return NewMemory(out)
}

func toValue(cell any) Value {
	switch v := cell.(type) {
	case nil:
		return Empty
	case Value:
		return v
	case string:
		if v == "" {
			return Empty
		}
		return Text(v)
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	default:
		return Empty
	}
}

// Cell implements Grid.
func (m *Memory) Cell(row, col int) Value {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return Empty
	}
	return m.rows[row][col]
}

// Row implements Grid.
func (m *Memory) Row(row int) []Value {
	if row < 0 || row >= len(m.rows) {
		return nil
	}
	out := make([]Value, len(m.rows[row]))
	copy(out, m.rows[row])
	return out
}

// NumRows implements Grid.
func (m *Memory) NumRows() int {
	return len(m.rows)
}

// ReadHeader returns the text of the given columns of a header row.
func ReadHeader(g Grid, row int, columns []int) []string {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = g.Cell(row, col).String()
	}
	return names
}

// ReadRegion reads rowCount rows starting at startRow, keeping only the
// given columns in the given order. Every returned row has exactly
// len(columns) cells regardless of how long the source row is.
func ReadRegion(g Grid, startRow, rowCount int, columns []int) [][]Value {
	if rowCount < 0 {
		rowCount = 0
	}
	region := make([][]Value, rowCount)
	for i := range region {
		row := make([]Value, len(columns))
		for j, col := range columns {
			row[j] = g.Cell(startRow+i, col)
		}
		region[i] = row
	}
	return region
}

// Columns returns the column indices [0, n).
func Columns(n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}
	return cols
}
