/*
Package bdftab converts bitmap fonts in BDF format into packed bitmap
tables for embedding into programs, e.g. firmware for small displays.

The conversion is done in three steps, each in its own package:

▪︎ Package bdf reads the font header and streams the glyphs.

▪︎ Package bitmap holds the packed glyph bitmaps, moves glyphs within
their cell, creates outlined variants and renders bitmap rows as text.

▪︎ Package tabgen drives the conversion and collects the width and
encoding tables; sub-packages cformat and goformat write C or Go source.

Package preview draws a contact sheet of the converted glyphs.

This package loads font sources. The conversion reads a font twice, first
the header, then the glyphs, so a [Source] keeps the font in memory and
hands out fresh readers. BDF files are ASCII by definition, but comments
and font names are found in ISO 8859-1 as well; these are transcoded to
UTF-8 on loading.

# Links

BDF specification, version 2.1:
https://adobe-type-tools.github.io/font-tech-notes/pdfs/5005.BDF_Spec.pdf

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bdftab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bdftab'
func tracer() tracing.Trace {
	return tracing.Select("bdftab")
}
