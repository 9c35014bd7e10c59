package bdftab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/bitmap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding is the character encoding of a font file.
type Encoding int

const (
	Auto   Encoding = iota // UTF-8 if valid, ISO 8859-1 otherwise
	UTF8                   // taken as is
	Latin1                 // ISO 8859-1, transcoded to UTF-8
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case Latin1:
		return "latin1"
	}
	return "auto"
}

// ParseEncoding maps a name to an encoding. The empty name selects Auto.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Auto, nil
	case "utf-8", "utf8", "ascii":
		return UTF8, nil
	case "latin1", "latin-1", "iso8859-1", "iso-8859-1":
		return Latin1, nil
	}
	return Auto, fmt.Errorf("bdftab: unknown encoding %q", name)
}

// ErrGlyphNotFound is returned by [Source.Lookup].
var ErrGlyphNotFound = errors.New("bdftab: glyph not found")

// Source is a BDF font held in memory.
type Source struct {
	Name     string   // file name, or "-" for fonts read from a stream
	Encoding Encoding // encoding found in the file
	data     []byte
}

// Open loads a font file.
func Open(path string, enc Encoding) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := Load(f, enc)
	if err != nil {
		return nil, err
	}
	src.Name = filepath.Base(path)
	return src, nil
}

// Load reads a font from r.
func Load(r io.Reader, enc Encoding) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bdftab: reading font: %w", err)
	}
	if enc == Auto {
		enc = UTF8
		if !utf8.Valid(data) {
			enc = Latin1
		}
	}
	if enc == Latin1 {
		data, _, err = transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("bdftab: decoding latin1: %w", err)
		}
	}
	tracer().Debugf("loaded %d bytes of font data, %s", len(data), enc)
	return &Source{Name: "-", Encoding: enc, data: data}, nil
}

// Reader returns a new reader positioned at the start of the font.
func (s *Source) Reader() *bytes.Reader {
	return bytes.NewReader(s.data)
}

// Len returns the size of the font data in bytes.
func (s *Source) Len() int {
	return len(s.data)
}

// Header reads the font header.
func (s *Source) Header() (*bdf.FontHeader, error) {
	return bdf.ReadHeader(s.Reader())
}

// Glyphs calls fn for every glyph of the font, in font order, with the
// glyph's bitmap in a cell of the font's size. bm is reused between calls.
// Iteration stops at the first error, which is returned; fn returning
// [io.EOF] stops without error.
func (s *Source) Glyphs(fn func(g bdf.GlyphRecord, bm *bitmap.Packed) error) error {
	hdr, err := s.Header()
	if err != nil {
		return err
	}
	p := bdf.NewParser(s.Reader(), hdr)
	bm := bitmap.New(hdr.CellWidth, hdr.CellHeight)
	for {
		g, err := p.Next(bm)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := fn(g, bm); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// Lookup finds a glyph by encoding or by name. A key starting with a digit
// is taken as an encoding, either decimal or in Go syntax ("0x41");
// "U+0041" is accepted as well. Any other key is compared to the glyph
// names.
func (s *Source) Lookup(key string) (bdf.GlyphRecord, *bitmap.Packed, error) {
	match := matcher(key)
	var found bdf.GlyphRecord
	var glyph *bitmap.Packed
	err := s.Glyphs(func(g bdf.GlyphRecord, bm *bitmap.Packed) error {
		if !match(&g) {
			return nil
		}
		found = g
		glyph = bitmap.New(bm.Width(), bm.Height())
		if err := glyph.CopyFrom(bm); err != nil {
			return err
		}
		return io.EOF
	})
	if err != nil {
		return found, nil, err
	}
	if glyph == nil {
		return found, nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, key)
	}
	return found, glyph, nil
}

func matcher(key string) func(*bdf.GlyphRecord) bool {
	num := key
	if rest, ok := strings.CutPrefix(strings.ToUpper(key), "U+"); ok {
		num = "0x" + rest
	}
	if num != "" && num[0] >= '0' && num[0] <= '9' {
		if enc, err := strconv.ParseInt(num, 0, 32); err == nil {
			return func(g *bdf.GlyphRecord) bool { return g.Encoding == int(enc) }
		}
	}
	return func(g *bdf.GlyphRecord) bool { return g.Name == key }
}
