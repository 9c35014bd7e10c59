package bdf

import (
	"fmt"
	"io"
	"strings"
)

// State is a state of the BDF reader.
type State int

// States of the BDF reader. The header is read in states AwaitFontHeader and
// AwaitGlyphCount, glyphs cycle through AwaitGlyph, InGlyphMetadata and
// InGlyphBitmap.
const (
	AwaitFontHeader State = iota
	AwaitGlyphCount
	AwaitGlyph
	InGlyphMetadata
	InGlyphBitmap
)

var stateNames = [...]string{"AwaitFontHeader", "AwaitGlyphCount", "AwaitGlyph",
	"InGlyphMetadata", "InGlyphBitmap"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// FontHeader holds the font-wide information of a BDF font.
type FontHeader struct {
	Name       string // from FONT
	Version    string // from STARTFONT
	CellWidth  int    // FONTBOUNDINGBOX width
	CellHeight int    // FONTBOUNDINGBOX height
	XOffset    int    // FONTBOUNDINGBOX x offset of the cell origin
	YOffset    int    // FONTBOUNDINGBOX y offset of the cell origin
	GlyphCount int    // from CHARS
	PointSize  int    // SIZE point size
	XRes, YRes int    // SIZE resolution
	Properties map[string]string
	Comments   []string
	Warnings   []Warning // non-fatal issues found while reading the header
}

// Validate checks that the cell and the glyph count are positive.
func (h *FontHeader) Validate() error {
	if err := h.validate(); err != nil {
		return err
	}
	return nil
}

func (h *FontHeader) validate() *ParseError {
	if h.CellWidth <= 0 || h.CellHeight <= 0 {
		return &ParseError{Issue: "need to know the character size",
			Severity: SeverityCritical, Err: ErrMissingHeader}
	}
	if h.GlyphCount <= 0 {
		return &ParseError{Issue: "need to know the number of characters",
			Severity: SeverityCritical, Err: ErrMissingHeader}
	}
	return nil
}

func (h *FontHeader) String() string {
	return fmt.Sprintf("FONTBOUNDINGBOX %d %d %d %d", h.CellWidth, h.CellHeight, h.XOffset, h.YOffset)
}

// --- Header reader ---------------------------------------------------------

type headerReader struct {
	hdr        *FontHeader
	state      State
	properties int // number of property lines still expected
	warnings   warningCollector
}

type headerHandler func(hr *headerReader, ls *lineScanner)

// headerDirectives maps directives to handlers, per header state.
// Directives not listed are ignored.
var headerDirectives = map[State]map[string]headerHandler{
	AwaitFontHeader: {
		"STARTFONT":       func(hr *headerReader, ls *lineScanner) { hr.hdr.Version = ls.rest },
		"FONT":            func(hr *headerReader, ls *lineScanner) { hr.hdr.Name = ls.rest },
		"COMMENT":         comment,
		"SIZE":            size,
		"STARTPROPERTIES": startProperties,
		"FONTBOUNDINGBOX": fontBoundingBox,
		"CHARS":           chars,
	},
	AwaitGlyphCount: {
		"FONT":            func(hr *headerReader, ls *lineScanner) { hr.hdr.Name = ls.rest },
		"COMMENT":         comment,
		"SIZE":            size,
		"STARTPROPERTIES": startProperties,
		"FONTBOUNDINGBOX": fontBoundingBox,
		"CHARS":           chars,
	},
}

// ReadHeader reads the header of a BDF font, up to and including the CHARS
// directive. It fails with an error wrapping [ErrMissingHeader] if the input
// ends before CHARS, or if the font bounding box or the glyph count are not
// positive.
func ReadHeader(r io.Reader) (*FontHeader, error) {
	hr := &headerReader{
		hdr:   &FontHeader{Properties: make(map[string]string)},
		state: AwaitFontHeader,
	}
	ls := newLineScanner(r)
	for hr.state != AwaitGlyph && ls.next() {
		if hr.properties > 0 {
			hr.property(ls)
			continue
		}
		if handler, ok := headerDirectives[hr.state][ls.directive()]; ok {
			handler(hr, ls)
		}
	}
	if err := ls.err(); err != nil {
		return nil, fmt.Errorf("bdf: reading header: %w", err)
	}
	if hr.state != AwaitGlyph {
		return nil, &ParseError{Line: ls.line, Issue: "end of input before CHARS",
			Severity: SeverityCritical, Err: ErrMissingHeader}
	}
	if err := hr.hdr.validate(); err != nil {
		err.Line = ls.line
		return nil, err
	}
	hr.hdr.Warnings = hr.warnings.warnings
	tracer().Debugf("font %q: %s, %d glyphs", hr.hdr.Name, hr.hdr, hr.hdr.GlyphCount)
	return hr.hdr, nil
}

func comment(hr *headerReader, ls *lineScanner) {
	hr.hdr.Comments = append(hr.hdr.Comments, ls.rest)
}

func size(hr *headerReader, ls *lineScanner) {
	if v, ok := atoiArgs(ls.fields[1:], 3); ok {
		hr.hdr.PointSize, hr.hdr.XRes, hr.hdr.YRes = v[0], v[1], v[2]
	}
}

func fontBoundingBox(hr *headerReader, ls *lineScanner) {
	v, ok := atoiArgs(ls.fields[1:], 4)
	if !ok {
		hr.warnings.addMinor(ls.line, "", "cannot read FONTBOUNDINGBOX %q", ls.rest)
		return
	}
	hr.hdr.CellWidth, hr.hdr.CellHeight = v[0], v[1]
	hr.hdr.XOffset, hr.hdr.YOffset = v[2], v[3]
	hr.state = AwaitGlyphCount
}

func chars(hr *headerReader, ls *lineScanner) {
	if v, ok := atoiArgs(ls.fields[1:], 1); ok {
		hr.hdr.GlyphCount = v[0]
	}
	hr.state = AwaitGlyph
}

func startProperties(hr *headerReader, ls *lineScanner) {
	if v, ok := atoiArgs(ls.fields[1:], 1); ok && v[0] > 0 {
		hr.properties = v[0]
	}
}

// property reads one line of a STARTPROPERTIES block.
func (hr *headerReader) property(ls *lineScanner) {
	if ls.directive() == "ENDPROPERTIES" {
		if hr.properties > 0 {
			hr.warnings.addMinor(ls.line, "", "%d properties missing", hr.properties)
		}
		hr.properties = 0
		return
	}
	hr.hdr.Properties[ls.fields[0]] = strings.Trim(ls.rest, `"`)
	hr.properties--
}
