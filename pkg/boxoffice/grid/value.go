package grid

import (
	"math"
	"strconv"
)

// Kind identifies what a cell holds.
type Kind int

const (
	// KindEmpty is a cell with no value.
	KindEmpty Kind = iota
	// KindText is a cell holding a string.
	KindText
	// KindNumber is a cell holding a number.
	KindNumber
)

// Value is a single typed cell value.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
}

// Empty is the zero cell.
var Empty = Value{}

// Text returns a text cell.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric cell.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// IsEmpty reports whether the cell is missing or holds the empty string.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty || (v.Kind == KindText && v.Text == "")
}

// String renders the cell the way a plain spreadsheet read would.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Any returns nil, a string or a float64.
func (v Value) Any() any {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	default:
		return nil
	}
}

// Float returns the numeric content of the cell. Text cells that spell a
// finite number are accepted.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Number, true
	case KindText:
		if p := ParseValue(v.Text); p.Kind == KindNumber {
			return p.Number, true
		}
	}
	return 0, false
}

// ParseValue converts a raw cell string as returned by a spreadsheet
// backend into a typed value. Strings that parse as finite numbers become
// numbers, the empty string becomes Empty, anything else stays text.
func ParseValue(s string) Value {
	if s == "" {
		return Empty
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	return Text(s)
}
