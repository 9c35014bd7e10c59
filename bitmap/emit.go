package bitmap

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// Emitter renders packed bitmaps as text, one output line per bitmap row.
//
// Every byte of a row is written as BytePrefix, eight runes (Marker for a
// set bit, Blank for an unset one, MSB first) and ByteSuffix. Each line
// starts with Prefix.
type Emitter struct {
	Prefix     string // start of every line, e.g. "\t"
	BytePrefix string // written before each byte, e.g. "0b"
	ByteSuffix string // written after each byte, e.g. ","
	Marker     rune   // rune for a set pixel
	Blank      rune   // rune for an unset pixel
}

// CEmitter renders rows with the bit-pattern macro names of a C font
// header: "XX___XX_," per byte.
var CEmitter = Emitter{Prefix: "\t", ByteSuffix: ",", Marker: 'X', Blank: '_'}

// Commented returns a copy of e with every line turned into a line comment.
func (e Emitter) Commented() Emitter {
	e.Prefix += "//"
	return e
}

// Emit writes bm.Height() lines to w.
//
// If verticalOffset is positive, the rendering starts with verticalOffset
// blank lines followed by the first Height()-verticalOffset rows of bm. If
// it is negative, the glyph sticks out above the cell: rendering starts with
// row |verticalOffset| of bm, and |verticalOffset| blank lines close the
// cell.
// Offsets with |verticalOffset| ≥ Height() render blank lines only.
//
// Emit returns the number of lines written.
func (e Emitter) Emit(w io.Writer, bm *Packed, verticalOffset int) (int, error) {
	h := bm.Height()
	pad := verticalOffset
	if pad < 0 {
		pad = -pad
	}
	if pad > h {
		pad = h
	}
	drawn := h - pad
	blank := e.blankLine(bm.Stride())
	rows := 0
	writeBlanks := func() error {
		for i := 0; i < pad; i++ {
			if _, err := io.WriteString(w, blank); err != nil {
				return err
			}
			rows++
		}
		return nil
	}
	if verticalOffset > 0 {
		if err := writeBlanks(); err != nil {
			return rows, err
		}
	}
	first := 0 // rows above the cell are clipped
	if verticalOffset < 0 {
		first = pad
	}
	var sb strings.Builder
	for y := first; y < first+drawn; y++ {
		sb.Reset()
		if err := e.renderRow(&sb, bm.Row(y)); err != nil {
			return rows, err
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return rows, err
		}
		rows++
	}
	if verticalOffset < 0 {
		if err := writeBlanks(); err != nil {
			return rows, err
		}
	}
	return rows, nil
}

// RenderRow renders a single row of packed bytes, without line prefix and
// newline.
func (e Emitter) RenderRow(row []byte) string {
	var sb strings.Builder
	e.Prefix = ""
	_ = e.renderRow(&sb, row)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (e Emitter) renderRow(sb *strings.Builder, row []byte) error {
	r := bitio.NewReader(bytes.NewReader(row))
	sb.WriteString(e.Prefix)
	for range row {
		sb.WriteString(e.BytePrefix)
		for i := 0; i < 8; i++ {
			set, err := r.ReadBool()
			if err != nil {
				return fmt.Errorf("bitmap: rendering row: %w", err)
			}
			if set {
				sb.WriteRune(e.Marker)
			} else {
				sb.WriteRune(e.Blank)
			}
		}
		sb.WriteString(e.ByteSuffix)
	}
	sb.WriteByte('\n')
	return nil
}

func (e Emitter) blankLine(stride int) string {
	var sb strings.Builder
	sb.WriteString(e.Prefix)
	for i := 0; i < stride; i++ {
		sb.WriteString(e.BytePrefix)
		for j := 0; j < 8; j++ {
			sb.WriteRune(e.Blank)
		}
		sb.WriteString(e.ByteSuffix)
	}
	sb.WriteByte('\n')
	return sb.String()
}
