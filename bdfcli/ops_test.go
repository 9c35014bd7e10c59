package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/bdftab"
	"github.com/npillmayer/bdftab/internal/fontload"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name string) *Intp {
	src, err := fontload.LoadTestFont(name)
	require.NoError(t, err)
	hdr, err := src.Header()
	require.NoError(t, err)
	return &Intp{src: src, hdr: hdr}
}

func TestGlyphArt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.cli")
	defer teardown()
	//
	intp := load(t, "a8x13.bdf")
	g, art, err := glyphArt(intp.src, intp.hdr, "A", false)
	require.NoError(t, err)
	assert.Equal(t, 65, g.Encoding)
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "  ..###...", lines[1])
	assert.Equal(t, "  #######.", lines[6])
}

func TestGlyphArtPlacedAndOutlined(t *testing.T) {
	intp := load(t, "mixed.bdf")
	_, art, err := glyphArt(intp.src, intp.hdr, "46", false)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "  ........", lines[5])
	assert.Equal(t, "  ...##...", lines[6], "moved right by 3 and down to the baseline")
	assert.Equal(t, "  ...##...", lines[7])
	//
	_, art, err = glyphArt(intp.src, intp.hdr, "period", true)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "  ....##..........", lines[6])
	assert.Equal(t, "  ...#..#.........", lines[7])
	assert.Equal(t, "  ...#..#.........", lines[8])
	assert.Equal(t, "  ....##..........", lines[9])
	//
	_, _, err = glyphArt(intp.src, intp.hdr, "U+FFFF", false)
	assert.ErrorIs(t, err, bdftab.ErrGlyphNotFound)
}

func TestListGlyphs(t *testing.T) {
	intp := load(t, "mixed.bdf")
	data, err := listGlyphs(intp.src, intp.hdr, 2)
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"0", "46", "period", "8", "3", "6"}, data[1])
	assert.Equal(t, "bar", data[2][2])
	data, err = listGlyphs(intp.src, intp.hdr, -1)
	require.NoError(t, err)
	assert.Len(t, data, 5)
}

func TestParseCommand(t *testing.T) {
	op := parseCommand("Glyph  U+0041")
	assert.Equal(t, GLYPH, op.code)
	assert.Equal(t, "U+0041", op.arg)
	assert.Equal(t, HELP, parseCommand("frobnicate").code)
	quit, err := (&Intp{}).execute(parseCommand("quit"))
	assert.NoError(t, err)
	assert.True(t, quit)
	_, err = (&Intp{}).execute(Op{code: 99})
	assert.Error(t, err)
}
