package bdf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bdftab/bitmap"
)

// Parser streams the glyphs of a BDF font.
//
// A parser is created for an input positioned anywhere before the first
// STARTCHAR, usually the start of the font. Header directives are not
// interpreted by the parser, clients read the header with [ReadHeader]
// first.
//
//	hdr, err := bdf.ReadHeader(r)
//	...
//	r.Seek(0, io.SeekStart)
//	p := bdf.NewParser(r, hdr)
//	bm := bitmap.New(hdr.CellWidth, hdr.CellHeight)
//	for {
//	    g, err := p.Next(bm)
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
type Parser struct {
	hdr      *FontHeader
	ls       *lineScanner
	state    State
	glyph    GlyphRecord
	count    int            // glyphs which reached BITMAP
	bm       *bitmap.Packed // target of bitmap rows, set during Next only
	scanline int            // next bitmap row to fill
	leading  int            // blank rows to reserve above each bitmap
	done     bool
	warnings warningCollector
}

// NewParser creates a parser reading glyphs from r, for a font with header
// hdr.
func NewParser(r io.Reader, hdr *FontHeader) *Parser {
	return &Parser{
		hdr:   hdr,
		ls:    newLineScanner(r),
		state: AwaitGlyph,
	}
}

// SetLeadingRows makes the parser leave the first n rows of every glyph
// bitmap blank, decoding the first bitmap row into row n.
func (p *Parser) SetLeadingRows(n int) {
	if n >= 0 {
		p.leading = n
	}
}

// State returns the current state of the parser.
func (p *Parser) State() State {
	return p.state
}

// Count returns the number of glyphs whose bitmap has been started so far.
func (p *Parser) Count() int {
	return p.count
}

// Warnings returns the non-fatal issues found so far.
func (p *Parser) Warnings() []Warning {
	return p.warnings.warnings
}

// Next reads the next glyph. Its bitmap rows are decoded into bm, which is
// cleared when the bitmap starts. Rows beyond bm's height and bytes beyond
// bm's stride are dropped with a warning. bm is not retained after Next
// returns.
//
// Next returns io.EOF when the input or the font ends. Other errors are
// fatal; they are of type [*ParseError].
func (p *Parser) Next(bm *bitmap.Packed) (GlyphRecord, error) {
	if bm == nil {
		return GlyphRecord{}, errors.New("bdf: parser needs a bitmap to decode into")
	}
	p.bm = bm
	defer func() { p.bm = nil }()
	for !p.done && p.ls.next() {
		handler, ok := glyphDirectives[p.state][p.ls.directive()]
		if !ok {
			if p.state == InGlyphBitmap {
				if err := p.row(); err != nil {
					return GlyphRecord{}, err
				}
			}
			continue // other directives are ignored
		}
		finished, err := handler(p)
		if err != nil {
			return GlyphRecord{}, err
		}
		if finished {
			return p.glyph, nil
		}
	}
	if err := p.ls.err(); err != nil {
		return GlyphRecord{}, fmt.Errorf("bdf: reading glyphs: %w", err)
	}
	switch p.state {
	case InGlyphBitmap:
		p.warnings.addWarning(p.ls.line, p.glyph.Name, "end of input before ENDCHAR")
		p.done = true
		return p.finish(), nil
	case InGlyphMetadata:
		p.warnings.addWarning(p.ls.line, p.glyph.Name, "end of input before BITMAP, glyph dropped")
		p.state = AwaitGlyph
	}
	p.done = true
	return GlyphRecord{}, io.EOF
}

// --- Directive handlers ----------------------------------------------------

// glyphHandler handles a directive. It returns true if a glyph is complete.
type glyphHandler func(p *Parser) (bool, error)

// glyphDirectives maps directives to handlers, per state. Directives not
// listed are ignored, except in state InGlyphBitmap, where every other line
// is a bitmap row.
var glyphDirectives = map[State]map[string]glyphHandler{
	AwaitGlyph: {
		"STARTCHAR": startChar,
		"ENCODING":  outsideGlyph,
		"DWIDTH":    outsideGlyph,
		"BBX":       outsideGlyph,
		"BITMAP":    bitmapOutsideGlyph,
		"ENDFONT":   endFont,
	},
	InGlyphMetadata: {
		"STARTCHAR": restartChar,
		"ENCODING":  encoding,
		"DWIDTH":    dwidth,
		"BBX":       bbx,
		"BITMAP":    startBitmap,
		"ENDCHAR":   endCharWithoutBitmap,
	},
	InGlyphBitmap: {
		"ENDCHAR":   endChar,
		"STARTCHAR": missingEndChar,
		"ENDFONT":   endFontInBitmap,
	},
}

func startChar(p *Parser) (bool, error) {
	p.glyph = newGlyphRecord(p.ls.rest, p.hdr)
	p.glyph.Line = p.ls.line
	p.state = InGlyphMetadata
	return false, nil
}

func restartChar(p *Parser) (bool, error) {
	p.warnings.addWarning(p.ls.line, p.glyph.Name, "STARTCHAR before BITMAP, glyph dropped")
	return startChar(p)
}

func endFont(p *Parser) (bool, error) {
	p.done = true
	return false, nil
}

func outsideGlyph(p *Parser) (bool, error) {
	p.warnings.addMinor(p.ls.line, "", "%s outside of glyph ignored", p.ls.directive())
	return false, nil
}

func bitmapOutsideGlyph(p *Parser) (bool, error) {
	return false, p.errorf(ErrMissingWidth, "BITMAP without STARTCHAR")
}

func encoding(p *Parser) (bool, error) {
	if v, ok := atoiArgs(p.ls.fields[1:], 1); ok {
		p.glyph.Encoding = v[0]
	} else {
		p.warnings.addWarning(p.ls.line, p.glyph.Name, "cannot read ENCODING %q", p.ls.rest)
	}
	return false, nil
}

// dwidth sets the device width from the first DWIDTH value. A value which
// cannot be read leaves the width unresolved.
func dwidth(p *Parser) (bool, error) {
	if v, ok := atoiArgs(p.ls.fields[1:], 1); ok {
		p.glyph.DeviceWidth = Some(v[0])
	} else {
		p.glyph.DeviceWidth = None[int]()
		p.warnings.addWarning(p.ls.line, p.glyph.Name, "cannot read DWIDTH %q", p.ls.rest)
	}
	return false, nil
}

func bbx(p *Parser) (bool, error) {
	if v, ok := atoiArgs(p.ls.fields[1:], 4); ok {
		p.glyph.BBox = BBox{W: v[0], H: v[1], X: v[2], Y: v[3]}
	} else {
		p.warnings.addWarning(p.ls.line, p.glyph.Name, "cannot read BBX %q", p.ls.rest)
	}
	return false, nil
}

func startBitmap(p *Parser) (bool, error) {
	if err := p.glyph.ResolveWidth(); err != nil {
		return false, p.errorf(ErrMissingWidth, "DWIDTH unresolved")
	}
	if p.count >= p.hdr.GlyphCount {
		tracer().Errorf("too many bitmaps for characters, chars=%d, line=%d", p.hdr.GlyphCount, p.ls.line)
		return false, p.errorf(ErrGlyphCountExceeded, "CHARS declares %d glyphs", p.hdr.GlyphCount)
	}
	p.glyph.Index = p.count
	p.count++
	p.bm.Clear()
	p.scanline = p.leading
	p.state = InGlyphBitmap
	return false, nil
}

func endCharWithoutBitmap(p *Parser) (bool, error) {
	p.warnings.addWarning(p.ls.line, p.glyph.Name, "ENDCHAR without BITMAP, glyph dropped")
	p.state = AwaitGlyph
	return false, nil
}

func endChar(p *Parser) (bool, error) {
	p.finish()
	return true, nil
}

// missingEndChar completes the current glyph and re-reads the STARTCHAR
// line for the next one.
func missingEndChar(p *Parser) (bool, error) {
	p.warnings.addWarning(p.ls.line, p.glyph.Name, "STARTCHAR before ENDCHAR")
	p.ls.pushBack()
	p.finish()
	return true, nil
}

// endFontInBitmap completes the current glyph and ends the stream.
func endFontInBitmap(p *Parser) (bool, error) {
	p.warnings.addWarning(p.ls.line, p.glyph.Name, "ENDFONT before ENDCHAR")
	p.done = true
	p.finish()
	return true, nil
}

func (p *Parser) finish() GlyphRecord {
	p.state = AwaitGlyph
	tracer().Debugf("%s, %d rows", p.glyph, p.glyph.Rows)
	return p.glyph
}

// row decodes the current line as the next bitmap row.
func (p *Parser) row() error {
	dst := p.bm.Row(p.scanline)
	n, err := DecodeHexRow(dst, p.ls.fields[0])
	if err != nil {
		return p.errorf(ErrMalformedRow, "%s", strings.TrimPrefix(err.Error(), ErrMalformedRow.Error()+": "))
	}
	if dst == nil {
		p.warnings.addWarning(p.ls.line, p.glyph.Name,
			"bitmap row %d beyond cell height %d ignored", p.scanline, p.bm.Height())
	} else if n > len(dst) {
		p.warnings.addWarning(p.ls.line, p.glyph.Name,
			"bitmap row of %d bytes clipped to %d", n, len(dst))
	}
	p.scanline++
	p.glyph.Rows++
	return nil
}

func (p *Parser) errorf(sentinel error, format string, args ...any) *ParseError {
	pe := &ParseError{
		Line:     p.ls.line,
		Issue:    fmt.Sprintf(format, args...),
		Severity: SeverityCritical,
		Err:      sentinel,
	}
	if p.state != AwaitGlyph {
		pe.Glyph = p.glyph.Name
	}
	return pe
}
