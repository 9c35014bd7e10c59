/*
Package preview draws a contact sheet of all glyphs of a converted font.

A [Sheet] is fed glyph by glyph while the tables are generated. Every glyph
gets a cell of the font's cell size, scaled up and labelled with its
encoding in hex. Glyphs which had to be moved within the cell get a tinted
background, glyphs exceeding the cell a red one, so placement problems are
easy to spot. The sheet is written as PNG or, for file names ending in
".ppm", as a binary portable pixmap.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package preview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bdftab.preview'
func tracer() tracing.Trace {
	return tracing.Select("bdftab.preview")
}
