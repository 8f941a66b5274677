package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// FromExcelize reads a sheet of an open xlsx workbook into memory. Raw cell
// values are used so number formats do not leak into the grid.
func FromExcelize(f *excelize.File, sheetName string) (*Memory, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	out := make([][]Value, len(rows))
	for rowIdx, row := range rows {
		vals := make([]Value, len(row))
		for colIdx, cellValue := range row {
			vals[colIdx] = ParseValue(cellValue)
		}
		out[rowIdx] = vals
	}
	return NewMemory(out), nil
}

// OpenXLSX converts the first sheet of an xlsx workbook into memory.
func OpenXLSX(path string) (*Memory, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("open xlsx: %s has no sheets", path)
	}
	return FromExcelize(f, sheets[0])
}
