package grid

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
	"github.com/xuri/excelize/v2"
)

// Format is a spreadsheet container format.
type Format string

const (
	// FormatXLS is the legacy BIFF workbook inside an OLE2 compound file.
	FormatXLS Format = "xls"
	// FormatXLSX is the Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatUnknown is anything else.
	FormatUnknown Format = "unknown"
)

var (
	cfbSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipSignature = []byte("PK\x03\x04")
)

// DetectFormat inspects the file at path and reports its workbook format.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	head := make([]byte, len(cfbSignature))
	if _, err := io.ReadFull(f, head); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return FormatUnknown, nil
		}
		return FormatUnknown, fmt.Errorf("read signature: %w", err)
	}

	switch {
	case bytes.Equal(head, cfbSignature):
		if hasWorkbookStream(f) {
			return FormatXLS, nil
		}
	case bytes.HasPrefix(head, zipSignature):
		if isWorkbookPackage(path) {
			return FormatXLSX, nil
		}
	}
	return FormatUnknown, nil
}

// hasWorkbookStream reports whether the compound file carries a BIFF
// workbook stream ("Workbook" for BIFF8, "Book" for BIFF5).
func hasWorkbookStream(ra io.ReaderAt) bool {
	doc, err := mscfb.New(ra)
	if err != nil {
		return false
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name == "Workbook" || entry.Name == "Book" {
			return true
		}
	}
	return false
}

func isWorkbookPackage(path string) bool {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return false
	}
	defer f.Close()
	return len(f.GetSheetList()) > 0
}

// Open detects the format of path and loads its first sheet. An xlsx
// workbook is rejected with a FormatError unless convertXLSX is set, in
// which case its raw cell values are read into memory.
func Open(path string, convertXLSX bool) (Grid, Format, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, format, err
	}
	switch format {
	case FormatXLS:
		g, err := OpenXLS(path)
		return g, format, err
	case FormatXLSX:
		if !convertXLSX {
			return nil, format, &FormatError{Path: path, Detected: format}
		}
		g, err := OpenXLSX(path)
		return g, format, err
	default:
		return nil, format, &FormatError{Path: path, Detected: format}
	}
}
