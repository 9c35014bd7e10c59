package tabgen

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/bitmap"
)

// Formatter writes the textual form of the tables.
//
// The driver calls Prologue once, then GlyphComment and renders the glyph
// rows with the formatter's Emitter for every glyph, and finally calls
// Epilogue with the completed tables.
type Formatter interface {
	Prologue(w io.Writer, name string, hdr *bdf.FontHeader) error
	GlyphComment(w io.Writer, g *bdf.GlyphRecord) error
	Emitter() bitmap.Emitter
	Epilogue(w io.Writer, name string, hdr *bdf.FontHeader, t *Tables) error
}

// Observer is notified of every glyph after it has been placed in its cell.
// A preview image is the typical observer.
//
// Init is called once before the first glyph. If it fails, the observer is
// not used any further; this does not affect the tables. Add is called per
// glyph with the cell dimensions, the offset of the bitmap within the cell
// and the glyph's flags. The bitmap is only valid during the call. Finalize
// is called after the last glyph.
type Observer interface {
	Init(path string, glyphCount, cellWidth, cellHeight int, fontName string) error
	Add(bm *bitmap.Packed, cellWidth, cellHeight, xOffset, yOffset, encoding int, shifted, overflow bool)
	Finalize() error
}

// Options configures a driver run.
type Options struct {
	Name        string // variable name of the font in the generated source
	Outline     bool   // generate an outlined font
	PreviewPath string // passed to the observer's Init
}

// Result summarizes a driver run.
type Result struct {
	Header   *bdf.FontHeader // font header as read from the font
	Cell     *bdf.FontHeader // header with the cell used for output
	Tables   *Tables
	Shifted  int           // number of glyphs moved within the cell
	Overflow int           // number of glyphs exceeding the cell
	Warnings []bdf.Warning // from header, glyphs and transforms, in line order
}

// Driver converts a BDF font to tables.
type Driver struct {
	format   Formatter
	observer Observer
	opts     Options
}

// NewDriver creates a driver writing with format.
func NewDriver(format Formatter, opts Options) *Driver {
	if opts.Name == "" {
		opts.Name = "font"
	}
	return &Driver{format: format, opts: opts}
}

// WithObserver sets an observer for the glyphs.
func (d *Driver) WithObserver(obs Observer) *Driver {
	d.observer = obs
	return d
}

// Run reads the font from src and writes the tables to out.
//
// The header is read first; if it lacks a positive bounding box or glyph
// count, Run fails before anything is written. Then src is rewound and the
// glyphs are streamed. Any error from the parser aborts the run; the output
// written so far is incomplete and should be discarded.
func (d *Driver) Run(src io.ReadSeeker, out io.Writer) (*Result, error) {
	hdr, err := bdf.ReadHeader(src)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("tabgen: cannot rewind font source: %w", err)
	}
	cell := *hdr
	if d.opts.Outline { // reserve space for the outline border
		cell.CellWidth++
		cell.CellHeight++
	}
	res := &Result{Header: hdr, Cell: &cell, Tables: NewTables(hdr.GlyphCount)}
	obs := d.initObserver(&cell)
	if err := d.format.Prologue(out, d.opts.Name, &cell); err != nil {
		return nil, err
	}
	p := bdf.NewParser(src, hdr)
	if d.opts.Outline {
		p.SetLeadingRows(1)
	}
	bm := bitmap.New(cell.CellWidth, cell.CellHeight)
	for {
		g, err := p.Next(bm)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		if err := d.glyph(&g, bm, hdr, out, obs, res); err != nil {
			return nil, err
		}
	}
	res.Warnings = mergeWarnings(hdr.Warnings, p.Warnings(), res.Warnings)
	res.Tables.seal()
	if n := res.Tables.Len(); n != hdr.GlyphCount {
		tracer().Infof("font declares %d glyphs, found %d", hdr.GlyphCount, n)
	}
	if err := d.format.Epilogue(out, d.opts.Name, &cell, res.Tables); err != nil {
		return nil, err
	}
	if obs != nil {
		if err := obs.Finalize(); err != nil {
			tracer().Errorf("preview: %v", err)
		}
	}
	tracer().Infof("converted %d glyphs, %d shifted, %d overflowing", res.Tables.Len(), res.Shifted, res.Overflow)
	return res, nil
}

func (d *Driver) initObserver(cell *bdf.FontHeader) Observer {
	if d.observer == nil {
		return nil
	}
	err := d.observer.Init(d.opts.PreviewPath, cell.GlyphCount, cell.CellWidth, cell.CellHeight, cell.Name)
	if err != nil {
		tracer().Errorf("preview disabled: %v", err)
		return nil
	}
	return d.observer
}

// glyph places, transforms and writes a single glyph.
func (d *Driver) glyph(g *bdf.GlyphRecord, bm *bitmap.Packed, hdr *bdf.FontHeader,
	out io.Writer, obs Observer, res *Result) error {
	//
	width := g.Width()
	if d.opts.Outline {
		width++
	}
	if err := res.Tables.Append(g.Index, width, g.Encoding); err != nil {
		return err
	}
	if err := d.format.GlyphComment(out, g); err != nil {
		return err
	}
	pl := Place(g, hdr)
	if pl.Shifted {
		res.Shifted++
	}
	emitter := d.format.Emitter()
	if pl.Overflow {
		res.Overflow++
		tracer().Debugf("glyph %q exceeds the font bounding box", g.Name)
		if _, err := emitter.Commented().Emit(out, bm, 0); err != nil {
			return err
		}
	}
	if pl.ShiftX != 0 {
		if err := bm.Rotate(pl.ShiftX, 0); err != nil {
			tracer().Errorf("glyph %q (%s): %v; ignored", g.Name, g.BBox, err)
			res.skipped(g, err)
		}
	}
	if d.opts.Outline {
		if err := bm.Rotate(1, 0); err != nil {
			tracer().Errorf("glyph %q: %v; ignored", g.Name, err)
			res.skipped(g, err)
		}
		bm.Outline()
	}
	if obs != nil {
		obs.Add(bm, bm.Width(), bm.Height(), 0, pl.VerticalOffset, g.Encoding, pl.Shifted, pl.Overflow)
	}
	_, err := emitter.Emit(out, bm, pl.VerticalOffset)
	return err
}

// skipped records a transform which was not applied to glyph g.
func (res *Result) skipped(g *bdf.GlyphRecord, err error) {
	res.Warnings = append(res.Warnings, bdf.Warning{
		Line:     g.Line,
		Glyph:    g.Name,
		Issue:    err.Error(),
		Severity: bdf.SeverityMinor,
	})
}

func mergeWarnings(lists ...[]bdf.Warning) []bdf.Warning {
	var all []bdf.Warning
	for _, l := range lists {
		all = append(all, l...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Line < all[j].Line })
	return all
}
