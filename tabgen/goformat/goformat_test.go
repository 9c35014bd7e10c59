package goformat_test

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/tabgen"
	"github.com/npillmayer/bdftab/tabgen/goformat"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoSourceOfLetterA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.tabgen")
	defer teardown()
	//
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "a8x13.bdf"))
	require.NoError(t, err)
	var raw bytes.Buffer
	d := tabgen.NewDriver(goformat.Formatter{Package: "fixed"}, tabgen.Options{Name: "fixed8x13"})
	_, err = d.Run(bytes.NewReader(data), &raw)
	require.NoError(t, err)
	src, err := goformat.Source(raw.Bytes())
	require.NoError(t, err, raw.String())
	//
	out := string(src)
	assert.Contains(t, out, "// Code generated by bdftab from -misc-fixed-medium-r-normal--13-120-75-75-c-80-iso8859-1. DO NOT EDIT.")
	assert.Contains(t, out, "package fixed\n")
	assert.Contains(t, out, "type BitmapFont struct {")
	assert.Contains(t, out, "\t//  65 U+0041 \"A\"\n")
	assert.Contains(t, out, "\t0b00111000,\n\t0b01111100,\n")
	assert.Contains(t, out, "var fixed8x13Widths = []uint16{\n\t8,\n}")
	assert.Contains(t, out, "var fixed8x13Index = []rune{\n\t65,\n}")
	assert.Regexp(t, `Chars:\s+1,`, out)
	//
	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "fixed.go", src, parser.ParseComments)
	assert.NoError(t, err)
}

func TestMixedFontParses(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "mixed.bdf"))
	require.NoError(t, err)
	var raw bytes.Buffer
	d := tabgen.NewDriver(goformat.Formatter{OmitType: true}, tabgen.Options{Name: "mixed", Outline: true})
	_, err = d.Run(bytes.NewReader(data), &raw)
	require.NoError(t, err)
	src, err := goformat.Source(raw.Bytes())
	require.NoError(t, err, raw.String())
	assert.NotContains(t, string(src), "type BitmapFont")
	assert.Contains(t, string(src), "package font\n")
}

func TestNoEncoding(t *testing.T) {
	g := &bdf.GlyphRecord{Name: "x", Encoding: -1, DeviceWidth: bdf.Some(3), DeclaredWidth: bdf.Some(3)}
	var buf bytes.Buffer
	require.NoError(t, goformat.Formatter{}.GlyphComment(&buf, g))
	assert.Contains(t, buf.String(), "no encoding \"x\"")
}

func TestInvalidNames(t *testing.T) {
	hdr := &bdf.FontHeader{CellWidth: 8, CellHeight: 8, GlyphCount: 1}
	var buf bytes.Buffer
	assert.Error(t, goformat.Formatter{}.Prologue(&buf, "my-font", hdr))
	assert.Error(t, goformat.Formatter{Package: "9lives"}.Prologue(&buf, "font", hdr))
	_, err := goformat.Source([]byte("package x\nvar = {"))
	assert.Error(t, err)
}
