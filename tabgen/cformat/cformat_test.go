package cformat

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/tabgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.tabgen")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, WriteHeaderFile(&buf))
	out := buf.String()
	assert.Contains(t, out, "struct bitmap_font {\n")
	assert.Equal(t, 256, strings.Count(out, "#define "))
	assert.Contains(t, out, "#define ________ 0x00\n")
	assert.Contains(t, out, "#define __XXX___ 0x38\n")
	assert.Contains(t, out, "#define X______X 0x81\n")
	assert.Contains(t, out, "#define XXXXXXXX 0xFF\n")
}

func TestGlyphComment(t *testing.T) {
	g := &bdf.GlyphRecord{
		Name:          "period",
		Encoding:      46,
		DeviceWidth:   bdf.Some(5),
		DeclaredWidth: bdf.Some(4),
		DeclaredBBox:  bdf.BBox{W: 2, H: 2, X: -1, Y: 0},
	}
	var buf bytes.Buffer
	require.NoError(t, Formatter{}.GlyphComment(&buf, g))
	assert.Equal(t, "//  46 $2e 'period'\n//\twidth 4, bbx -1, bby 0, bbw 2, bbh 2\n", buf.String())
}

func TestPrologueAndEpilogue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.tabgen")
	defer teardown()
	//
	hdr := &bdf.FontHeader{Name: "tiny", CellWidth: 5, CellHeight: 7, XOffset: 0, YOffset: -1, GlyphCount: 2}
	var buf bytes.Buffer
	f := Formatter{Include: "fonts/font.h"}
	require.NoError(t, f.Prologue(&buf, "tiny", hdr))
	assert.Equal(t, "// Created by bdftab from tiny\n\n#include \"fonts/font.h\"\n\n"+
		"\t/// character bitmap for each encoding\n"+
		"static const unsigned char __tiny_bitmap__[] = {\n"+
		"// FONTBOUNDINGBOX 5 7 0 -1\n", buf.String())
	//
	tab := tabgen.NewTables(2)
	require.NoError(t, tab.Append(0, 5, 32))
	require.NoError(t, tab.Append(1, 4, -1))
	buf.Reset()
	require.NoError(t, f.Epilogue(&buf, "tiny", hdr, tab))
	assert.Equal(t, "};\n\n"+
		"\t/// character width for each encoding\n"+
		"static const unsigned char __tiny_widths__[] = {\n\t5,\n\t4,\n};\n\n"+
		"\t/// character encoding for each index entry\n"+
		"static const unsigned short __tiny_index__[] = {\n\t32,\n\t65535,\n};\n\n"+
		"\t/// bitmap font structure\n"+
		"const struct bitmap_font tiny = {\n"+
		"\t.Width = 5, .Height = 7,\n"+
		"\t.Chars = 2,\n"+
		"\t.Widths = __tiny_widths__,\n"+
		"\t.Index = __tiny_index__,\n"+
		"\t.Bitmap = __tiny_bitmap__,\n"+
		"};\n\n", buf.String())
}

type failingWriter struct{ n int }

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.n == 0 {
		return 0, errors.New("disk full")
	}
	fw.n--
	return len(p), nil
}

func TestWriteErrorsAreReported(t *testing.T) {
	assert.Error(t, WriteHeaderFile(&failingWriter{n: 20}))
	hdr := &bdf.FontHeader{CellWidth: 5, CellHeight: 7, GlyphCount: 1}
	assert.Error(t, Formatter{}.Prologue(&failingWriter{}, "f", hdr))
}
