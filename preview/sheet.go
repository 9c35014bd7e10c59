package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/bdftab/bitmap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrNoSheet is returned by [Sheet.Finalize] and [Sheet.Encode] if Init has
// not succeeded.
var ErrNoSheet = errors.New("preview: sheet not initialized")

// Colors used on a sheet.
var (
	Paper     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Ink       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	CellColor = color.RGBA{0xee, 0xee, 0xee, 0xff}
	Shifted   = color.RGBA{0xff, 0xf0, 0xb0, 0xff}
	Overflow  = color.RGBA{0xff, 0xb0, 0xb0, 0xff}
)

// Options control the layout of a sheet.
type Options struct {
	Scale   int // pixel size of a font pixel, defaults to 4
	Columns int // cells per row, defaults to 16
}

const (
	pad       = 4  // space around a cell
	labelSkip = 13 // height of basicfont.Face7x13
)

// Sheet collects glyphs into an image. It implements the observer interface
// of the table generator.
type Sheet struct {
	opts       Options
	path       string
	name       string
	count      int
	cellWidth  int
	cellHeight int
	boxW, boxH int // size of a cell on the sheet, including label
	titleH     int
	img        *image.RGBA
	glyph      *image.RGBA // single cell at scale 1
	n          int
}

// NewSheet creates an empty sheet.
func NewSheet(opts Options) *Sheet {
	if opts.Scale <= 0 {
		opts.Scale = 4
	}
	if opts.Columns <= 0 {
		opts.Columns = 16
	}
	return &Sheet{opts: opts}
}

// Init allocates the sheet for glyphCount glyphs of cellWidth×cellHeight
// pixels. path is where Finalize writes the image to; its extension selects
// the file format.
func (s *Sheet) Init(path string, glyphCount, cellWidth, cellHeight int, fontName string) error {
	if path == "" {
		return errors.New("preview: no output path")
	}
	if glyphCount <= 0 || cellWidth <= 0 || cellHeight <= 0 {
		return fmt.Errorf("preview: cannot lay out %d glyphs of %dx%d", glyphCount, cellWidth, cellHeight)
	}
	s.path, s.name, s.count = path, fontName, glyphCount
	s.cellWidth, s.cellHeight = cellWidth, cellHeight
	s.boxW = max(cellWidth*s.opts.Scale, 3*7) + 2*pad // room for a 3-digit label
	s.boxH = cellHeight*s.opts.Scale + labelSkip + 2*pad
	s.titleH = labelSkip + 2*pad
	cols := min(s.opts.Columns, glyphCount)
	rows := (glyphCount + cols - 1) / cols
	s.img = image.NewRGBA(image.Rect(0, 0, cols*s.boxW, s.titleH+rows*s.boxH))
	s.glyph = image.NewRGBA(image.Rect(0, 0, cellWidth, cellHeight))
	s.n = 0
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(Paper), image.Point{}, draw.Src)
	s.label(pad, pad+labelSkip-2, fontName)
	tracer().Debugf("preview sheet %dx%d for %d glyphs", s.img.Bounds().Dx(), s.img.Bounds().Dy(), glyphCount)
	return nil
}

// Add draws the next glyph. Bit (x,y) of bm is drawn at (x+xOffset,
// y+yOffset) of the cell; pixels outside the cell are clipped.
func (s *Sheet) Add(bm *bitmap.Packed, cellWidth, cellHeight, xOffset, yOffset, encoding int,
	shifted, overflow bool) {
	//
	if s.img == nil {
		return
	}
	if s.n >= s.count {
		tracer().Infof("preview: glyph %d beyond %d cells ignored", s.n, s.count)
		return
	}
	bg := CellColor
	if overflow {
		bg = Overflow
	} else if shifted {
		bg = Shifted
	}
	draw.Draw(s.glyph, s.glyph.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.Bit(x, y) {
				s.glyph.SetRGBA(x+xOffset, y+yOffset, Ink) // clipped by SetRGBA
			}
		}
	}
	col, row := s.n%s.opts.Columns, s.n/s.opts.Columns
	x0, y0 := col*s.boxW+pad, s.titleH+row*s.boxH+pad
	dst := image.Rect(x0, y0, x0+s.cellWidth*s.opts.Scale, y0+s.cellHeight*s.opts.Scale)
	draw.NearestNeighbor.Scale(s.img, dst, s.glyph, s.glyph.Bounds(), draw.Src, nil)
	if encoding >= 0 {
		s.label(x0, dst.Max.Y+labelSkip-2, fmt.Sprintf("%02X", encoding))
	}
	s.n++
}

func (s *Sheet) label(x, y int, text string) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(Ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Image returns the sheet, or nil before Init.
func (s *Sheet) Image() *image.RGBA {
	return s.img
}

// Len returns the number of glyphs drawn.
func (s *Sheet) Len() int {
	return s.n
}

// Finalize writes the sheet to the path given to Init.
func (s *Sheet) Finalize() error {
	if s.img == nil {
		return ErrNoSheet
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := s.Encode(f, FormatFor(s.path)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	tracer().Infof("preview of %d glyphs written to %s", s.n, s.path)
	return nil
}

// Format is an image file format.
type Format int

const (
	PNG Format = iota
	PPM
)

// FormatFor selects the format by file extension: PPM for ".ppm", PNG
// otherwise.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return PPM
	}
	return PNG
}

// Encode writes the sheet to w.
func (s *Sheet) Encode(w io.Writer, format Format) error {
	if s.img == nil {
		return ErrNoSheet
	}
	if format == PPM {
		return EncodePPM(w, s.img)
	}
	return png.Encode(w, s.img)
}
