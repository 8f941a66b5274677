package grid

import (
	"errors"
	"fmt"
)

// ErrDocumentFormatUnsupported indicates the input is not a legacy binary
// (.xls) workbook.
var ErrDocumentFormatUnsupported = errors.New("document format unsupported")

// ErrMalformedWorkbook indicates an .xls workbook stream could not be decoded.
var ErrMalformedWorkbook = errors.New("malformed xls workbook")

// FormatError reports the format that was found instead of .xls.
type FormatError struct {
	Path     string
	Detected Format
}

func (e *FormatError) Error() string {
	if e.Detected == FormatXLSX {
		return fmt.Sprintf("%s: %v: file is an xlsx workbook, only legacy xls reports are read; convert it to xls first or enable xlsx conversion",
			e.Path, ErrDocumentFormatUnsupported)
	}
	return fmt.Sprintf("%s: %v: detected %s", e.Path, ErrDocumentFormatUnsupported, e.Detected)
}

func (e *FormatError) Unwrap() error {
	return ErrDocumentFormatUnsupported
}
