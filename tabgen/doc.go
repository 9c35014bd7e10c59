/*
Package tabgen assembles the packed bitmap table of a BDF font, together
with the width and encoding tables, for embedding into programs.

A [Driver] reads a font in two passes. The first pass reads the font
header, the second streams the glyphs. Every glyph is decoded into a single
scratch bitmap of the font's cell size, moved to its place within the cell
and, in outline mode, replaced by its outline. It is then handed to a
[Formatter], which writes it to the output, and to an optional [Observer]
such as a preview image.

Formatters for C and Go source live in sub-packages cformat and goformat.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tabgen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bdftab.tabgen'
func tracer() tracing.Trace {
	return tracing.Select("bdftab.tabgen")
}
