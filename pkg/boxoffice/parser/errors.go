package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrLayoutAssumptionViolated indicates a sentinel, fixed cell or blank
	// separator row was not where the report layout puts it.
	ErrLayoutAssumptionViolated = errors.New("layout assumption violated")
	// ErrNoteFormatViolated indicates a note line does not follow
	// "<Film> (<Distributor>) - <note>".
	ErrNoteFormatViolated = errors.New("note format violated")
	// ErrMissingRequiredValue indicates a fixed cell holding a total was empty.
	ErrMissingRequiredValue = errors.New("missing required value")
)

// LayoutError describes what was expected and which rows were searched.
// Rows are 0-based; ToRow is inclusive.
type LayoutError struct {
	Expected string
	FromRow  int
	ToRow    int
	Detail   string
}

func (e *LayoutError) Error() string {
	var where string
	switch {
	case e.ToRow < e.FromRow:
		where = fmt.Sprintf("from row index %d (sheet ended)", e.FromRow)
	case e.FromRow == e.ToRow:
		where = fmt.Sprintf("at row index %d (Excel row %d)", e.FromRow, e.FromRow+1)
	default:
		where = fmt.Sprintf("in row indices %d-%d (Excel rows %d-%d)", e.FromRow, e.ToRow, e.FromRow+1, e.ToRow+1)
	}
	msg := fmt.Sprintf("%v: expected %s %s", ErrLayoutAssumptionViolated, e.Expected, where)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *LayoutError) Unwrap() error {
	return ErrLayoutAssumptionViolated
}

// NoteFormatError carries the offending note line. Row is -1 when the line
// did not come from a sheet.
type NoteFormatError struct {
	Line   string
	Row    int
	Reason string
}

func (e *NoteFormatError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row index %d: %s: %q", ErrNoteFormatViolated, e.Row, e.Reason, e.Line)
	}
	return fmt.Sprintf("%v: %s: %q", ErrNoteFormatViolated, e.Reason, e.Line)
}

func (e *NoteFormatError) Unwrap() error {
	return ErrNoteFormatViolated
}

// MissingValueError names the cell, in A1 notation, that should have held
// a value.
type MissingValueError struct {
	Cell        string
	Description string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%v: expected cell %s to contain the %s; check the document layout, coordinates may have changed",
		ErrMissingRequiredValue, e.Cell, e.Description)
}

func (e *MissingValueError) Unwrap() error {
	return ErrMissingRequiredValue
}

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
