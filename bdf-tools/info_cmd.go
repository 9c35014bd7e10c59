package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/bdftab"
	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/bitmap"
	"github.com/npillmayer/bdftab/tabgen"
	"github.com/npillmayer/bdftab/tabgen/cformat"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runHeaderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	var buf bytes.Buffer
	if err := cformat.WriteHeaderFile(&buf); err != nil {
		fatalf("%v", err)
	}
	if err := writeOutput(mustFlagString(flags["output"], "output"), buf.Bytes()); err != nil {
		fatalf("%v", err)
	}
}

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	if err := setupTracing(mustFlagString(flags["trace"], "trace")); err != nil {
		fatalf("%v", err)
	}
	enc, err := bdftab.ParseEncoding(mustFlagString(flags["encoding"], "encoding"))
	if err != nil {
		fatalf("%v", err)
	}
	src, err := bdftab.Open(fontPath, enc)
	if err != nil {
		fatalf("cannot read font %s: %v", fontPath, err)
	}
	hdr, err := src.Header()
	if err != nil {
		fatalf("%s: %v", fontPath, err)
	}
	printHeader(fontPath, src, hdr)
	data, err := glyphTable(src)
	if err != nil {
		fatalf("%s: %v", fontPath, err)
	}
	fmt.Printf("Glyphs: %d of %d declared\n", len(data)-1, hdr.GlyphCount)
	if mustFlagBool(flags["glyphs"], "glyphs") {
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			fatalf("%v", err)
		}
	}
}

func printHeader(path string, src *bdftab.Source, hdr *bdf.FontHeader) {
	fmt.Printf("Path: %s\n", path)
	fmt.Printf("Encoding: %s\n", src.Encoding)
	if hdr.Name != "" {
		fmt.Printf("Font: %s\n", hdr.Name)
	}
	if hdr.Version != "" {
		fmt.Printf("BDF version: %s\n", hdr.Version)
	}
	fmt.Printf("Cell: %dx%d, offset %d,%d\n", hdr.CellWidth, hdr.CellHeight, hdr.XOffset, hdr.YOffset)
	for _, w := range hdr.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	if hdr.PointSize > 0 {
		fmt.Printf("Size: %dpt at %dx%d dpi\n", hdr.PointSize, hdr.XRes, hdr.YRes)
	}
	keys := make([]string, 0, len(hdr.Properties))
	for k := range hdr.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %s\n", k, hdr.Properties[k])
	}
}

// glyphTable summarizes every glyph in a table with a header row.
func glyphTable(src *bdftab.Source) ([][]string, error) {
	hdr, err := src.Header()
	if err != nil {
		return nil, err
	}
	data := [][]string{
		{"Index", "Encoding", "Name", "Width", "BBX", "Flags"},
	}
	err = src.Glyphs(func(g bdf.GlyphRecord, bm *bitmap.Packed) error {
		pl := tabgen.Place(&g, hdr)
		var flags []string
		if pl.Shifted {
			flags = append(flags, "shifted")
		}
		if pl.Overflow {
			flags = append(flags, "overflow")
		}
		if bm.IsEmpty() {
			flags = append(flags, "empty")
		}
		enc := "-"
		if g.Encoding >= 0 {
			enc = fmt.Sprintf("%d %U", g.Encoding, g.Encoding)
		}
		b := g.DeclaredBBox
		data = append(data, []string{
			fmt.Sprintf("%d", g.Index),
			enc,
			g.Name,
			fmt.Sprintf("%d", g.Width()),
			fmt.Sprintf("%d %d %d %d", b.W, b.H, b.X, b.Y),
			strings.Join(flags, ","),
		})
		return nil
	})
	return data, err
}
