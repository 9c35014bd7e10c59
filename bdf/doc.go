/*
Package bdf reads fonts in the Glyph Bitmap Distribution Format (BDF).

BDF is a line oriented text format. Every line starts with a directive,
followed by whitespace separated arguments. Directive names are matched
case-insensitively. A font starts with a header holding, amongst others,
the font-wide bounding box and the number of glyphs:

	STARTFONT 2.1
	FONT -misc-fixed-medium-r-normal--13-120-75-75-c-80-iso8859-1
	FONTBOUNDINGBOX 8 13 0 -2
	CHARS 1

followed by the glyphs, each with metadata and one line of hex digits per
bitmap row:

	STARTCHAR A
	ENCODING 65
	DWIDTH 8 0
	BBX 8 13 0 -2
	BITMAP
	00
	38
	...
	ENDCHAR

Package bdf does not build a font object in memory. [ReadHeader] extracts
the header, and a [Parser] streams glyph records one at a time, decoding
bitmap rows directly into a caller-owned [bitmap.Packed] scratch buffer.
This lets clients process fonts of arbitrary size with a single glyph
buffer.

# Errors

Fatal conditions are reported as [*ParseError] values wrapping one of the
sentinel errors [ErrMissingHeader], [ErrMissingWidth], [ErrMalformedRow]
or [ErrGlyphCountExceeded]. Anomalies the parser can work around are
collected as warnings of major or minor severity, see [FontHeader.Warnings]
and [Parser.Warnings].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bdf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bdftab.bdf'
func tracer() tracing.Trace {
	return tracing.Select("bdftab.bdf")
}
