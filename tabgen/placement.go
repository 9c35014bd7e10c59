package tabgen

import (
	"github.com/npillmayer/bdftab/bdf"
)

// Placement tells where a glyph goes within the font's cell.
//
// Glyph bitmaps start at the top left of their bounding box, while the cell
// is located by the font bounding box offsets. ShiftX is the number of
// pixels the bitmap has to move right, VerticalOffset the number of cell
// rows above the bitmap (negative if the bitmap sticks out above the cell).
type Placement struct {
	ShiftX         int
	VerticalOffset int
	Shifted        bool // bounding box does not coincide with the cell placement
	Overflow       bool // bounding box exceeds the cell
}

// Place computes the placement of glyph g within the cell of hdr.
func Place(g *bdf.GlyphRecord, hdr *bdf.FontHeader) Placement {
	b := g.BBox
	pl := Placement{
		ShiftX:         b.X - hdr.XOffset,
		VerticalOffset: hdr.CellHeight - (b.Y - hdr.YOffset + b.H),
	}
	if b.X != hdr.XOffset {
		pl.Shifted = true
	}
	if b.Y+b.H != hdr.YOffset+hdr.CellHeight {
		pl.Shifted = true
	}
	if b.X < hdr.XOffset || b.X+b.W > hdr.XOffset+hdr.CellWidth {
		pl.Overflow = true
	}
	if b.Y < hdr.YOffset || b.Y+b.H > hdr.YOffset+hdr.CellHeight {
		pl.Overflow = true
	}
	return pl
}
