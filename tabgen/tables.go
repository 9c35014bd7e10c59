package tabgen

import (
	"errors"
	"fmt"

	"github.com/npillmayer/bdftab/bdf"
)

var errSealed = errors.New("tabgen: tables are sealed")

// Tables holds the width and the encoding of every glyph, in the order the
// glyphs appear in the font. Entries are appended while the font is read;
// once the font is complete, the tables are sealed and do not change any
// more.
type Tables struct {
	widths    []int
	encodings []int
	declared  int
	sealed    bool
}

// NewTables creates tables for a font declaring count glyphs.
func NewTables(count int) *Tables {
	return &Tables{
		widths:    make([]int, 0, count),
		encodings: make([]int, 0, count),
		declared:  count,
	}
}

// Append adds the entry for the glyph with the given index. Glyphs have to
// be appended in order. An index at or beyond the declared glyph count
// results in an error wrapping [bdf.ErrGlyphCountExceeded].
func (t *Tables) Append(index, width, encoding int) error {
	if t.sealed {
		return errSealed
	}
	if index >= t.declared {
		return fmt.Errorf("%w: glyph #%d, %d declared", bdf.ErrGlyphCountExceeded, index, t.declared)
	}
	if index != len(t.widths) {
		return fmt.Errorf("tabgen: glyph #%d appended out of order, expected #%d", index, len(t.widths))
	}
	t.widths = append(t.widths, width)
	t.encodings = append(t.encodings, encoding)
	return nil
}

func (t *Tables) seal() {
	t.sealed = true
}

// Len returns the number of glyphs in the tables.
func (t *Tables) Len() int {
	return len(t.widths)
}

// Declared returns the number of glyphs the font header declares.
func (t *Tables) Declared() int {
	return t.declared
}

// Widths returns the effective width of every glyph.
func (t *Tables) Widths() []int {
	return append([]int(nil), t.widths...)
}

// Encodings returns the encoding of every glyph.
func (t *Tables) Encodings() []int {
	return append([]int(nil), t.encodings...)
}

// MaxWidth returns the largest glyph width, or 0 for empty tables.
func (t *Tables) MaxWidth() int {
	m := 0
	for _, w := range t.widths {
		m = max(m, w)
	}
	return m
}
