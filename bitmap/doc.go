/*
Package bitmap holds packed 1-bit glyph bitmaps and the transformations
applied to them while building embeddable font tables.

A [Packed] bitmap stores rows of ceil(width/8) bytes, row after row. Within
a byte, bit 7 (MSB) is the leftmost pixel. Bits beyond width in the last
byte of a row are padding; they are never read as pixels by [Packed.Outline]
but are rendered by the [Emitter], which works on whole bytes.

Bitmaps are meant to be scratch buffers: allocate once per font with [New],
then [Packed.Clear] between glyphs. The allocation reserves a second plane
of the same size, which [Packed.Outline] uses as its work area, so no
allocation happens per glyph.

# Transformations

[Packed.Rotate] moves every row to the right by a number of bits, filling
with zeros from the left. [Packed.Outline] replaces the bitmap by the
outline of its set pixels: every unset pixel with a set 4-neighbour becomes
set, and every originally set pixel becomes unset.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bitmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bdftab.bitmap'
func tracer() tracing.Trace {
	return tracing.Select("bdftab.bitmap")
}
