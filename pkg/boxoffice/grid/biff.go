package grid

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// BIFF8 record types read from a workbook stream.
const (
	recFormula    = 0x0006
	recEOF        = 0x000A
	recFilePass   = 0x002F
	recContinue   = 0x003C
	recBoundSheet = 0x0085
	recMulRK      = 0x00BD
	recSST        = 0x00FC
	recLabelSST   = 0x00FD
	recNumber     = 0x0203
	recLabel      = 0x0204
	recBoolErr    = 0x0205
	recString     = 0x0207
	recRK         = 0x027E
	recBOF        = 0x0809
)

const (
	biff8Version = 0x0600

	bofGlobals   = 0x0005
	bofWorksheet = 0x0010
)

type record struct {
	code uint16
	data []byte
}

// recordReader walks the records of a workbook stream.
type recordReader struct {
	stream []byte
	pos    int
}

func (r *recordReader) next() (record, bool) {
	if r.pos+4 > len(r.stream) {
		return record{}, false
	}
	code := binary.LittleEndian.Uint16(r.stream[r.pos:])
	size := int(binary.LittleEndian.Uint16(r.stream[r.pos+2:]))
	start := r.pos + 4
	if start+size > len(r.stream) {
		return record{}, false
	}
	r.pos = start + size
	return record{code: code, data: r.stream[start : start+size]}, true
}

func (r *recordReader) peek() (uint16, bool) {
	if r.pos+4 > len(r.stream) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(r.stream[r.pos:]), true
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedWorkbook, fmt.Sprintf(format, args...))
}

// checkBOF validates a BOF record of the given substream type.
func checkBOF(rec record, kind uint16) error {
	if rec.code != recBOF || len(rec.data) < 4 {
		return malformed("expected BOF record, found %#04x", rec.code)
	}
	if v := binary.LittleEndian.Uint16(rec.data); v != biff8Version {
		return fmt.Errorf("%w: BIFF version %#04x, only BIFF8 (Excel 97 and later) is read", ErrDocumentFormatUnsupported, v)
	}
	if got := binary.LittleEndian.Uint16(rec.data[2:]); got != kind {
		return malformed("BOF substream type %#04x, want %#04x", got, kind)
	}
	return nil
}

// workbookGlobals holds what the sheet reader needs from the globals substream.
type workbookGlobals struct {
	sst         []string
	sheetOffset int
}

func readGlobals(r *recordReader) (workbookGlobals, error) {
	g := workbookGlobals{sheetOffset: -1}

	first, ok := r.next()
	if !ok {
		return g, malformed("empty workbook stream")
	}
	if err := checkBOF(first, bofGlobals); err != nil {
		return g, err
	}

	for {
		rec, ok := r.next()
		if !ok {
			return g, malformed("workbook globals end without EOF record")
		}
		switch rec.code {
		case recFilePass:
			return g, malformed("workbook is encrypted")
		case recBoundSheet:
			// The first worksheet wins; chart and macro sheets are skipped.
			if len(rec.data) >= 6 && rec.data[5] == 0 && g.sheetOffset < 0 {
				g.sheetOffset = int(binary.LittleEndian.Uint32(rec.data))
			}
		case recSST:
			if len(rec.data) < 8 {
				return g, malformed("short SST record")
			}
			blocks := [][]byte{rec.data[8:]}
			for code, ok := r.peek(); ok && code == recContinue; code, ok = r.peek() {
				cont, _ := r.next()
				blocks = append(blocks, cont.data)
			}
			count := int(binary.LittleEndian.Uint32(rec.data[4:]))
			sst, err := readSST(&continuedReader{blocks: blocks}, count)
			if err != nil {
				return g, err
			}
			g.sst = sst
		case recEOF:
			if g.sheetOffset < 0 {
				return g, malformed("workbook has no worksheet")
			}
			return g, nil
		}
	}
}

func readSST(c *continuedReader, count int) ([]string, error) {
	sst := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := c.unicodeString()
		if err != nil {
			return nil, malformed("shared string %d of %d: %v", i, count, err)
		}
		sst = append(sst, s)
	}
	return sst, nil
}

// continuedReader reads a record body that may continue in CONTINUE
// records. The blocks are the record bodies in stream order.
type continuedReader struct {
	blocks [][]byte
	block  int
	pos    int
}

func (c *continuedReader) advance() bool {
	for c.block < len(c.blocks) && c.pos >= len(c.blocks[c.block]) {
		c.pos -= len(c.blocks[c.block])
		c.block++
	}
	return c.block < len(c.blocks)
}

func (c *continuedReader) bytes(n int) ([]byte, error) {
	out := make([]byte, 0, n)
	for n > 0 {
		if !c.advance() {
			return nil, fmt.Errorf("record data ends early")
		}
		b := c.blocks[c.block]
		k := min(n, len(b)-c.pos)
		out = append(out, b[c.pos:c.pos+k]...)
		c.pos += k
		n -= k
	}
	return out, nil
}

func (c *continuedReader) u16() (uint16, error) {
	b, err := c.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *continuedReader) u32() (uint32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// chars reads n characters. When the characters run into the next block,
// that block starts with a fresh option byte selecting the width.
func (c *continuedReader) chars(n int, wide bool) (string, error) {
	var sb strings.Builder
	for n > 0 {
		if c.block >= len(c.blocks) {
			return "", fmt.Errorf("string data ends early")
		}
		b := c.blocks[c.block]
		width := 1
		if wide {
			width = 2
		}
		k := min(n, (len(b)-c.pos)/width)
		s, err := decodeChars(b[c.pos:c.pos+k*width], wide)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
		c.pos += k * width
		n -= k
		if n == 0 {
			break
		}

		c.block++
		if c.block >= len(c.blocks) || len(c.blocks[c.block]) == 0 {
			return "", fmt.Errorf("string data ends early")
		}
		wide = c.blocks[c.block][0]&0x01 != 0
		c.pos = 1
	}
	return sb.String(), nil
}

// unicodeString reads an XLUnicodeRichExtendedString. Formatting runs and
// phonetic data are skipped.
func (c *continuedReader) unicodeString() (string, error) {
	n, err := c.u16()
	if err != nil {
		return "", err
	}
	options, err := c.bytes(1)
	if err != nil {
		return "", err
	}
	flags := options[0]

	var runs uint16
	var ext uint32
	if flags&0x08 != 0 {
		if runs, err = c.u16(); err != nil {
			return "", err
		}
	}
	if flags&0x04 != 0 {
		if ext, err = c.u32(); err != nil {
			return "", err
		}
	}

	s, err := c.chars(int(n), flags&0x01 != 0)
	if err != nil {
		return "", err
	}
	if _, err := c.bytes(4*int(runs) + int(ext)); err != nil {
		return "", err
	}
	return s, nil
}

// decodeChars decodes compressed (Latin-1) or UTF-16LE character data.
func decodeChars(b []byte, wide bool) (string, error) {
	if !wide {
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return string(utf16.Decode(units)), nil
}

// decodeRK expands an RK number: either a 30-bit signed integer or the top
// 30 bits of an IEEE double, optionally divided by 100.
func decodeRK(rk uint32) float64 {
	var f float64
	if rk&0x02 != 0 {
		f = float64(int32(rk) >> 2)
	} else {
		f = math.Float64frombits(uint64(rk&0xFFFFFFFC) << 32)
	}
	if rk&0x01 != 0 {
		f /= 100
	}
	return f
}
