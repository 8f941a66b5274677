package grid

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/richardlehane/mscfb"
)

// OpenXLS loads the first worksheet of a legacy .xls workbook into memory.
// Numbers keep their stored value whatever the cell format, and formula
// cells hold their cached result.
func OpenXLS(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return nil, fmt.Errorf("open xls: %w: %v", ErrMalformedWorkbook, err)
	}
	stream, err := readWorkbookStream(doc)
	if err != nil {
		return nil, fmt.Errorf("open xls %s: %w", path, err)
	}
	g, err := readWorkbook(stream)
	if err != nil {
		return nil, fmt.Errorf("open xls %s: %w", path, err)
	}
	return g, nil
}

func readWorkbookStream(doc *mscfb.Reader) ([]byte, error) {
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "Workbook":
			buf := make([]byte, entry.Size)
			if _, err := io.ReadFull(entry, buf); err != nil {
				return nil, fmt.Errorf("read Workbook stream: %w", err)
			}
			return buf, nil
		case "Book":
			return nil, fmt.Errorf("%w: BIFF5 workbook (Excel 95 or earlier)", ErrDocumentFormatUnsupported)
		}
	}
	return nil, malformed("no Workbook stream in compound file")
}

// readWorkbook decodes a BIFF8 workbook stream.
func readWorkbook(stream []byte) (*Memory, error) {
	r := &recordReader{stream: stream}
	globals, err := readGlobals(r)
	if err != nil {
		return nil, err
	}
	if globals.sheetOffset >= len(stream) {
		return nil, malformed("worksheet offset %d is past the end of the stream", globals.sheetOffset)
	}
	r.pos = globals.sheetOffset
	return readSheet(r, globals.sst)
}

type sheetBuilder struct {
	rows [][]Value
}

func (b *sheetBuilder) put(row, col int, v Value) {
	if v.IsEmpty() {
		return
	}
	for len(b.rows) <= row {
		b.rows = append(b.rows, nil)
	}
	cells := b.rows[row]
	for len(cells) <= col {
		cells = append(cells, Empty)
	}
	cells[col] = v
	b.rows[row] = cells
}

type cellRef struct {
	row, col int
}

func readSheet(r *recordReader, sst []string) (*Memory, error) {
	first, ok := r.next()
	if !ok {
		return nil, malformed("worksheet substream is empty")
	}
	if err := checkBOF(first, bofWorksheet); err != nil {
		return nil, err
	}

	var b sheetBuilder
	// pending is the formula cell whose string result follows in a STRING record.
	var pending *cellRef
	depth := 1
	for depth > 0 {
		rec, ok := r.next()
		if !ok {
			return nil, malformed("worksheet ends without EOF record")
		}
		switch rec.code {
		case recBOF:
			depth++
			continue
		case recEOF:
			depth--
			continue
		}
		// Embedded chart substreams carry no cells of this sheet.
		if depth > 1 {
			continue
		}

		data := rec.data
		switch rec.code {
		case recNumber:
			if len(data) < 14 {
				return nil, malformed("short NUMBER record")
			}
			row, col := cellAt(data)
			b.put(row, col, Number(math.Float64frombits(binary.LittleEndian.Uint64(data[6:]))))
		case recRK:
			if len(data) < 10 {
				return nil, malformed("short RK record")
			}
			row, col := cellAt(data)
			b.put(row, col, Number(decodeRK(binary.LittleEndian.Uint32(data[6:]))))
		case recMulRK:
			if len(data) < 6 || (len(data)-6)%6 != 0 {
				return nil, malformed("bad MULRK record length %d", len(data))
			}
			row := int(binary.LittleEndian.Uint16(data))
			col := int(binary.LittleEndian.Uint16(data[2:]))
			for i := 0; i < (len(data)-6)/6; i++ {
				rk := binary.LittleEndian.Uint32(data[4+6*i+2:])
				b.put(row, col+i, Number(decodeRK(rk)))
			}
		case recLabelSST:
			if len(data) < 10 {
				return nil, malformed("short LABELSST record")
			}
			idx := int(binary.LittleEndian.Uint32(data[6:]))
			if idx >= len(sst) {
				return nil, malformed("shared string index %d out of range (%d strings)", idx, len(sst))
			}
			row, col := cellAt(data)
			b.put(row, col, Text(sst[idx]))
		case recLabel:
			if len(data) < 6 {
				return nil, malformed("short LABEL record")
			}
			s, err := (&continuedReader{blocks: [][]byte{data[6:]}}).unicodeString()
			if err != nil {
				return nil, malformed("LABEL record: %v", err)
			}
			row, col := cellAt(data)
			b.put(row, col, Text(s))
		case recBoolErr:
			if len(data) < 8 {
				return nil, malformed("short BOOLERR record")
			}
			// Error values such as #DIV/0! are read as empty cells.
			if data[7] == 0 {
				row, col := cellAt(data)
				b.put(row, col, Number(float64(data[6])))
			}
		case recFormula:
			if len(data) < 20 {
				return nil, malformed("short FORMULA record")
			}
			pending = nil
			row, col := cellAt(data)
			if data[12] != 0xFF || data[13] != 0xFF {
				b.put(row, col, Number(math.Float64frombits(binary.LittleEndian.Uint64(data[6:]))))
				continue
			}
			switch data[6] {
			case 0x00:
				pending = &cellRef{row: row, col: col}
			case 0x01:
				b.put(row, col, Number(float64(data[8])))
			}
		case recString:
			if pending == nil {
				continue
			}
			s, err := (&continuedReader{blocks: [][]byte{data}}).unicodeString()
			if err != nil {
				return nil, malformed("STRING record: %v", err)
			}
			b.put(pending.row, pending.col, Text(s))
			pending = nil
		}
	}
	return NewMemory(b.rows), nil
}

// cellAt returns the 0-based row and column that open every cell record.
func cellAt(data []byte) (int, int) {
	return int(binary.LittleEndian.Uint16(data)), int(binary.LittleEndian.Uint16(data[2:]))
}
