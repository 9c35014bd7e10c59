package bdf

import "fmt"

// BBox is a glyph bounding box, relative to the glyph origin on the
// baseline. X and Y locate the lower left corner.
type BBox struct {
	W, H, X, Y int
}

func (b BBox) String() string {
	return fmt.Sprintf("bbx %d, bby %d, bbw %d, bbh %d", b.X, b.Y, b.W, b.H)
}

// GlyphRecord holds the metadata of one glyph.
//
// DeclaredWidth and DeclaredBBox are the values found in the font. When the
// bitmap starts, the device width is widened to hold the bounding box, see
// [GlyphRecord.ResolveWidth]; DeviceWidth and BBox hold the results.
type GlyphRecord struct {
	Name          string
	Encoding      int         // code point, -1 if not given
	DeviceWidth   Option[int] // horizontal advance
	BBox          BBox
	DeclaredWidth Option[int]
	DeclaredBBox  BBox
	Index         int // position in encounter order, 0-based
	Rows          int // number of bitmap rows read
	Line          int // line of STARTCHAR
}

// newGlyphRecord creates a record with the provisional defaults for a font:
// the device width is the cell width, the bounding box is the cell.
func newGlyphRecord(name string, hdr *FontHeader) GlyphRecord {
	cell := BBox{W: hdr.CellWidth, H: hdr.CellHeight, X: hdr.XOffset, Y: hdr.YOffset}
	return GlyphRecord{
		Name:        name,
		Encoding:    -1,
		DeviceWidth: Some(hdr.CellWidth),
		BBox:        cell,
	}
}

// Width returns the device width, or 0 if unresolved.
func (g *GlyphRecord) Width() int {
	return g.DeviceWidth.Or(0)
}

// ResolveWidth adjusts the device width to the bounding box. A negative x
// offset widens the glyph by |x| and moves the box to x=0. A box extending
// beyond the device width widens the glyph to the right edge of the box.
//
// If no device width is known, ResolveWidth returns [ErrMissingWidth].
func (g *GlyphRecord) ResolveWidth() error {
	g.DeclaredWidth = g.DeviceWidth
	g.DeclaredBBox = g.BBox
	w, ok := g.DeviceWidth.Unwrap()
	if !ok {
		return ErrMissingWidth
	}
	if g.BBox.X < 0 {
		w -= g.BBox.X
		g.BBox.X = 0
	}
	if g.BBox.X+g.BBox.W > w {
		w = g.BBox.X + g.BBox.W
	}
	g.DeviceWidth = Some(w)
	return nil
}

func (g GlyphRecord) String() string {
	return fmt.Sprintf("glyph #%d %q enc=%d width=%d %s", g.Index, g.Name, g.Encoding, g.Width(), g.BBox)
}
