package models

import (
	"bytes"
	"encoding/json"
)

// Table is an ordered sequence of records sharing one column schema. Cells
// hold nil, string or float64.
type Table struct {
	Columns []string
	Rows    [][]any
}

// NewTable returns a table over columns and rows. Every row is padded or
// truncated to len(columns).
func NewTable(columns []string, rows [][]any) Table {
	cols := append([]string(nil), columns...)
	out := make([][]any, len(rows))
	for i, row := range rows {
		r := make([]any, len(cols))
		copy(r, row)
		out[i] = r
	}
	return Table{Columns: cols, Rows: out}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell of row in column name.
func (t Table) Value(row int, name string) (any, bool) {
	col := t.ColumnIndex(name)
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[row][col], true
}

// Column returns every value of column name in row order.
func (t Table) Column(name string) []any {
	col := t.ColumnIndex(name)
	if col < 0 {
		return nil
	}
	out := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[col]
	}
	return out
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	return NewTable(t.Columns, t.Rows)
}

// Records returns one record per row, in row order.
func (t Table) Records() []Record {
	out := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = Record{Columns: t.Columns, Values: row}
	}
	return out
}

// Record is one row as a mapping from column name to value that keeps the
// column order of its table.
type Record struct {
	Columns []string
	Values  []any
}

// Get returns the value of column name, or nil.
func (r Record) Get(name string) any {
	for i, c := range r.Columns {
		if c == name && i < len(r.Values) {
			return r.Values[i]
		}
	}
	return nil
}

// MarshalJSON encodes the record as an object in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, c); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		var v any
		if i < len(r.Values) {
			v = r.Values[i]
		}
		if err := writeJSON(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON encodes v without HTML escaping, so film titles such as
// "Deadpool & Wolverine" stay readable.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
