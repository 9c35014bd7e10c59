/*
Package goformat writes font tables as Go source.

The generated file declares a byte slice with the packed bitmap of all
glyphs, one binary literal per byte and one line per row, a width table, an
index table and a variable of type BitmapFont. The raw output is not
gofmt-ed; pass it through [Source] before writing it to a file.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package goformat

import (
	"fmt"
	"go/format"
	"go/token"
	"io"

	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/bitmap"
	"github.com/npillmayer/bdftab/tabgen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bdftab.tabgen'
func tracer() tracing.Trace {
	return tracing.Select("bdftab.tabgen")
}

// Emitter renders rows as binary literals.
var Emitter = bitmap.Emitter{Prefix: "\t", BytePrefix: "0b", ByteSuffix: ", ", Marker: '1', Blank: '0'}

// Formatter writes Go source.
type Formatter struct {
	Package  string // package clause, defaults to "font"
	OmitType bool   // do not declare type BitmapFont
}

var _ tabgen.Formatter = Formatter{}

// Prologue writes the package clause, the font type and opens the bitmap
// slice. name has to be a valid Go identifier.
func (f Formatter) Prologue(w io.Writer, name string, hdr *bdf.FontHeader) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("goformat: font name %q is not a Go identifier", name)
	}
	pkg := f.Package
	if pkg == "" {
		pkg = "font"
	}
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("goformat: package name %q is not a Go identifier", pkg)
	}
	ew := &errWriter{w: w}
	ew.printf("// Code generated by bdftab from %s. DO NOT EDIT.\n\n", quoteName(hdr))
	ew.printf("package %s\n\n", pkg)
	if !f.OmitType {
		ew.printf("%s\n", fontType)
	}
	ew.printf("// %s\nvar %sBitmap = []byte{\n", hdr, name)
	return ew.err
}

const fontType = `// BitmapFont is a bitmap font with glyphs in cells of Width×Height pixels.
// Every row of a glyph takes (Width+7)/8 bytes of Bitmap; glyph i starts at
// i*Height*((Width+7)/8). Index holds the code point of every glyph, -1 if
// the glyph has none.
type BitmapFont struct {
	Width, Height int
	Chars         int
	Widths        []uint16
	Index         []rune
	Bitmap        []byte
}
`

// GlyphComment writes the encoding, name and metrics of g as found in the
// font.
func (f Formatter) GlyphComment(w io.Writer, g *bdf.GlyphRecord) error {
	ew := &errWriter{w: w}
	if g.Encoding >= 0 {
		ew.printf("\t// %3d %U %q\n", g.Encoding, g.Encoding, g.Name)
	} else {
		ew.printf("\t// no encoding %q\n", g.Name)
	}
	b := g.DeclaredBBox
	ew.printf("\t// width %d, bbx %d, bby %d, bbw %d, bbh %d\n",
		g.DeclaredWidth.Or(g.Width()), b.X, b.Y, b.W, b.H)
	return ew.err
}

// Emitter returns the binary literal emitter.
func (f Formatter) Emitter() bitmap.Emitter {
	return Emitter
}

// Epilogue closes the bitmap slice and writes the tables and the font
// variable.
func (f Formatter) Epilogue(w io.Writer, name string, hdr *bdf.FontHeader, t *tabgen.Tables) error {
	ew := &errWriter{w: w}
	ew.printf("}\n\n")
	ew.printf("var %sWidths = []uint16{", name)
	for i, wd := range t.Widths() {
		ew.printf("%s%d,", lineBreak(i), wd)
	}
	ew.printf("\n}\n\n")
	ew.printf("var %sIndex = []rune{", name)
	for i, enc := range t.Encodings() {
		ew.printf("%s%d,", lineBreak(i), enc)
	}
	ew.printf("\n}\n\n")
	ew.printf("var %s = BitmapFont{\n", name)
	ew.printf("Width: %d, Height: %d,\n", hdr.CellWidth, hdr.CellHeight)
	ew.printf("Chars: %d,\n", t.Len())
	ew.printf("Widths: %sWidths,\n", name)
	ew.printf("Index: %sIndex,\n", name)
	ew.printf("Bitmap: %sBitmap,\n", name)
	ew.printf("}\n")
	return ew.err
}

// Source formats generated source with gofmt.
func Source(raw []byte) ([]byte, error) {
	src, err := format.Source(raw)
	if err != nil {
		tracer().Errorf("generated Go source does not parse: %v", err)
		return nil, fmt.Errorf("goformat: %w", err)
	}
	return src, nil
}

// lineBreak starts a new line every 16 table entries.
func lineBreak(i int) string {
	if i%16 == 0 {
		return "\n"
	}
	return " "
}

func quoteName(hdr *bdf.FontHeader) string {
	if hdr.Name == "" {
		return "an unnamed font"
	}
	return hdr.Name
}

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
