package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/bdftab"
	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/bitmap"
	"github.com/npillmayer/bdftab/tabgen"
	"github.com/pterm/pterm"
)

// artEmitter draws glyph rows for the terminal.
var artEmitter = bitmap.Emitter{Prefix: "  ", Marker: '#', Blank: '.'}

func helpOp(intp *Intp, op *Op) (bool, error) {
	pterm.Info.Println("Commands")
	pterm.Println(`
	info             font header and properties
	list [n]         first n glyphs (default all)
	glyph <key>      draw a glyph placed in its cell
	outline <key>    draw the outlined variant of a glyph
	quit             leave

	<key> is an encoding (65, 0x41, U+0041) or a glyph name.
	`)
	return false, nil
}

func infoOp(intp *Intp, op *Op) (bool, error) {
	h := intp.hdr
	data := [][]string{
		{"Property", "Value"},
		{"Font", h.Name},
		{"Version", h.Version},
		{"Bounding box", fmt.Sprintf("%d %d %d %d", h.CellWidth, h.CellHeight, h.XOffset, h.YOffset)},
		{"Glyphs", fmt.Sprintf("%d", h.GlyphCount)},
		{"Encoding", intp.src.Encoding.String()},
	}
	for k, v := range h.Properties {
		data = append(data, []string{k, v})
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func listOp(intp *Intp, op *Op) (bool, error) {
	limit := -1
	if op.arg != "" {
		if _, err := fmt.Sscanf(op.arg, "%d", &limit); err != nil {
			return false, fmt.Errorf("list: %q is not a number", op.arg)
		}
	}
	data, err := listGlyphs(intp.src, intp.hdr, limit)
	if err != nil {
		return false, err
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// listGlyphs tabulates up to limit glyphs, all of them for limit < 0.
func listGlyphs(src *bdftab.Source, hdr *bdf.FontHeader, limit int) ([][]string, error) {
	data := [][]string{{"#", "Enc", "Name", "Width", "Shift", "VOffset"}}
	err := src.Glyphs(func(g bdf.GlyphRecord, bm *bitmap.Packed) error {
		if limit >= 0 && g.Index >= limit {
			return errStop
		}
		pl := tabgen.Place(&g, hdr)
		data = append(data, []string{
			fmt.Sprintf("%d", g.Index),
			fmt.Sprintf("%d", g.Encoding),
			g.Name,
			fmt.Sprintf("%d", g.Width()),
			fmt.Sprintf("%d", pl.ShiftX),
			fmt.Sprintf("%d", pl.VerticalOffset),
		})
		return nil
	})
	if errors.Is(err, errStop) {
		err = nil
	}
	return data, err
}

var errStop = errors.New("stop")

func glyphOp(intp *Intp, op *Op) (bool, error) {
	return false, intp.showGlyph(op.arg, false)
}

func outlineOp(intp *Intp, op *Op) (bool, error) {
	return false, intp.showGlyph(op.arg, true)
}

func (intp *Intp) showGlyph(key string, outline bool) error {
	if key == "" {
		key = intp.last
	}
	if key == "" {
		return errors.New("which glyph? give an encoding or a name")
	}
	g, art, err := glyphArt(intp.src, intp.hdr, key, outline)
	if err != nil {
		return err
	}
	intp.last = key
	pterm.Info.Printf("%s\n", g)
	pterm.Println(art)
	return nil
}

// glyphArt draws a glyph the way the table generator places it in the
// font's cell.
func glyphArt(src *bdftab.Source, hdr *bdf.FontHeader, key string, outline bool) (bdf.GlyphRecord, string, error) {
	g, bm, err := src.Lookup(key)
	if err != nil {
		return g, "", err
	}
	pl := tabgen.Place(&g, hdr)
	if pl.ShiftX != 0 {
		if err := bm.Rotate(pl.ShiftX, 0); err != nil {
			tracer().Infof("glyph %q: %v", g.Name, err)
		}
	}
	if outline {
		bm = outlined(bm)
	}
	var sb strings.Builder
	if _, err := artEmitter.Emit(&sb, bm, pl.VerticalOffset); err != nil {
		return g, "", err
	}
	return g, sb.String(), nil
}

// outlined copies bm into a bitmap with an extra row on top and an extra
// column on the left and replaces it by its outline.
func outlined(bm *bitmap.Packed) *bitmap.Packed {
	o := bitmap.New(bm.Width()+1, bm.Height()+1)
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.Bit(x, y) {
				o.Set(x+1, y+1)
			}
		}
	}
	o.Outline()
	return o
}
