package boxoffice

import (
	"fmt"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/grid"
	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/parser"
)

// Errors returned by Parse, usable with errors.Is.
var (
	// ErrDocumentFormatUnsupported indicates the input is not a legacy xls workbook.
	ErrDocumentFormatUnsupported = grid.ErrDocumentFormatUnsupported
	// ErrMalformedWorkbook indicates an xls file whose records could not be read.
	ErrMalformedWorkbook = grid.ErrMalformedWorkbook
	// ErrLayoutAssumptionViolated indicates the sheet does not have the expected layout.
	ErrLayoutAssumptionViolated = parser.ErrLayoutAssumptionViolated
	// ErrNoteFormatViolated indicates a note line does not follow "<Film> (<Distributor>) - <note>".
	ErrNoteFormatViolated = parser.ErrNoteFormatViolated
	// ErrMissingRequiredValue indicates a fixed total cell was empty.
	ErrMissingRequiredValue = parser.ErrMissingRequiredValue
)

// ExtractionError represents a failure while reading a report.
type ExtractionError struct {
	Path  string // empty when the report was read from a grid
	Stage string // "open" or one of the parser stage names
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, stage string, err error) *ExtractionError {
	return &ExtractionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
