/*
Package cformat writes font tables as C source.

The generated source includes "font.h" and defines a bitmap array, a width
table, an index table and a struct bitmap_font. Bitmap rows are written with
the bit-pattern macros of the header file, e.g. "__XXX___," for 0x38.
[WriteHeaderFile] creates that header.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cformat

import (
	"fmt"
	"io"

	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/bitmap"
	"github.com/npillmayer/bdftab/tabgen"
)

// NoEncoding is written to the index table for glyphs without an encoding.
const NoEncoding = 0xffff

// Formatter writes C source. The zero value is ready to use.
type Formatter struct {
	Include string // header file to include, defaults to "font.h"
}

var _ tabgen.Formatter = Formatter{}

// errWriter keeps the first write error and skips all further writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Prologue writes the include and opens the bitmap array.
func (f Formatter) Prologue(w io.Writer, name string, hdr *bdf.FontHeader) error {
	include := f.Include
	if include == "" {
		include = "font.h"
	}
	ew := &errWriter{w: w}
	ew.printf("// Created by bdftab from %s\n\n", fontName(hdr))
	ew.printf("#include \"%s\"\n\n", include)
	ew.printf("\t/// character bitmap for each encoding\n")
	ew.printf("static const unsigned char __%s_bitmap__[] = {\n", name)
	ew.printf("// %s\n", hdr)
	return ew.err
}

// GlyphComment writes the encoding, name and metrics of g as found in the
// font.
func (f Formatter) GlyphComment(w io.Writer, g *bdf.GlyphRecord) error {
	ew := &errWriter{w: w}
	ew.printf("// %3d $%02x '%s'\n", g.Encoding, g.Encoding, g.Name)
	b := g.DeclaredBBox
	ew.printf("//\twidth %d, bbx %d, bby %d, bbw %d, bbh %d\n",
		g.DeclaredWidth.Or(g.Width()), b.X, b.Y, b.W, b.H)
	return ew.err
}

// Emitter renders rows as bit-pattern macros.
func (f Formatter) Emitter() bitmap.Emitter {
	return bitmap.CEmitter
}

// Epilogue closes the bitmap array and writes the width table, the index
// table and the font structure.
func (f Formatter) Epilogue(w io.Writer, name string, hdr *bdf.FontHeader, t *tabgen.Tables) error {
	ew := &errWriter{w: w}
	ew.printf("};\n\n")
	ew.printf("\t/// character width for each encoding\n")
	ew.printf("static const unsigned char __%s_widths__[] = {\n", name)
	for _, wd := range t.Widths() {
		ew.printf("\t%d,\n", wd)
	}
	ew.printf("};\n\n")
	ew.printf("\t/// character encoding for each index entry\n")
	ew.printf("static const unsigned short __%s_index__[] = {\n", name)
	for _, enc := range t.Encodings() {
		if enc < 0 {
			enc = NoEncoding
		}
		ew.printf("\t%d,\n", enc)
	}
	ew.printf("};\n\n")
	ew.printf("\t/// bitmap font structure\n")
	ew.printf("const struct bitmap_font %s = {\n", name)
	ew.printf("\t.Width = %d, .Height = %d,\n", hdr.CellWidth, hdr.CellHeight)
	ew.printf("\t.Chars = %d,\n", t.Len())
	ew.printf("\t.Widths = __%s_widths__,\n", name)
	ew.printf("\t.Index = __%s_index__,\n", name)
	ew.printf("\t.Bitmap = __%s_bitmap__,\n", name)
	ew.printf("};\n\n")
	return ew.err
}

// WriteHeaderFile writes the declaration of struct bitmap_font and a macro
// for each of the 256 bit patterns of a byte.
func WriteHeaderFile(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("// Created by bdftab\n\n")
	ew.printf("\t/// bitmap font structure\n")
	ew.printf("struct bitmap_font {\n")
	ew.printf("\tunsigned char Width;\t\t///< max. character width\n")
	ew.printf("\tunsigned char Height;\t\t///< character height\n")
	ew.printf("\tunsigned short Chars;\t\t///< number of characters in font\n")
	ew.printf("\tconst unsigned char *Widths;\t///< width of each character\n")
	ew.printf("\tconst unsigned short *Index;\t///< encoding to character index\n")
	ew.printf("\tconst unsigned char *Bitmap;\t///< bitmap of all characters\n")
	ew.printf("};\n\n")
	ew.printf("\t/// @{ defines to have human readable font files\n")
	e := bitmap.CEmitter
	for i := 0; i < 256; i++ {
		ew.printf("#define %s 0x%02X\n", e.RenderRow([]byte{byte(i)})[:8], i)
	}
	ew.printf("\t/// @}\n")
	return ew.err
}

func fontName(hdr *bdf.FontHeader) string {
	if hdr.Name == "" {
		return "unnamed font"
	}
	return hdr.Name
}
