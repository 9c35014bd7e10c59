package bdf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.bdf")
	defer teardown()
	//
	f, err := os.Open(filepath.Join("..", "testdata", "a8x13.bdf"))
	require.NoError(t, err)
	defer f.Close()
	hdr, err := ReadHeader(f)
	require.NoError(t, err)
	assert.Equal(t, "-misc-fixed-medium-r-normal--13-120-75-75-c-80-iso8859-1", hdr.Name)
	assert.Equal(t, "2.1", hdr.Version)
	assert.Equal(t, 8, hdr.CellWidth)
	assert.Equal(t, 13, hdr.CellHeight)
	assert.Equal(t, 0, hdr.XOffset)
	assert.Equal(t, -2, hdr.YOffset)
	assert.Equal(t, 1, hdr.GlyphCount)
	assert.Equal(t, 13, hdr.PointSize)
	assert.Equal(t, 75, hdr.YRes)
	assert.Equal(t, "11", hdr.Properties["FONT_ASCENT"])
	assert.Equal(t, "2", hdr.Properties["FONT_DESCENT"])
	assert.Len(t, hdr.Comments, 1)
	assert.Equal(t, "FONTBOUNDINGBOX 8 13 0 -2", hdr.String())
}

func TestReadHeaderCaseInsensitive(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader("fontboundingbox 5 7 0 -1\nChars 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, hdr.CellWidth)
	assert.Equal(t, 3, hdr.GlyphCount)
}

func TestReadHeaderMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.bdf")
	defer teardown()
	//
	inputs := []string{
		"",
		"STARTFONT 2.1\nFONT x\n",
		"FONTBOUNDINGBOX 8 13 0 -2\n",                    // no CHARS
		"CHARS 10\n",                                     // no bounding box
		"FONTBOUNDINGBOX 0 13 0 -2\nCHARS 10\n",          // zero width
		"FONTBOUNDINGBOX 8 -1 0 -2\nCHARS 10\n",          // negative height
		"FONTBOUNDINGBOX 8 13 0 -2\nCHARS 0\n",           // no glyphs
		"FONTBOUNDINGBOX 8 13 zero -2\nCHARS 10\n",       // unreadable box
		"FONTBOUNDINGBOX 8 13 0 -2\nSTARTCHAR A\nCHAR\n", // CHARS misspelled
	}
	for _, in := range inputs {
		_, err := ReadHeader(strings.NewReader(in))
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrMissingHeader), "input %q: %v", in, err)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, SeverityCritical, pe.Severity)
	}
}

func TestReadHeaderWarnings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.bdf")
	defer teardown()
	//
	in := "FONTBOUNDINGBOX 8 x 0 -2\nFONTBOUNDINGBOX 8 13 0 -2\n" +
		"STARTPROPERTIES 3\nFONT_ASCENT 11\nENDPROPERTIES\nCHARS 1\n"
	hdr, err := ReadHeader(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 13, hdr.CellHeight)
	require.Len(t, hdr.Warnings, 2)
	assert.Equal(t, 1, hdr.Warnings[0].Line)
	assert.Equal(t, "2 properties missing", hdr.Warnings[1].Issue)
	assert.Equal(t, SeverityMinor, hdr.Warnings[1].Severity)
	assert.Equal(t, "[MINOR] line 5: 2 properties missing", hdr.Warnings[1].String())
	//
	hdr, err = ReadHeader(strings.NewReader("FONTBOUNDINGBOX 8 13 0 -2\nCHARS 1\n"))
	require.NoError(t, err)
	assert.Empty(t, hdr.Warnings)
}

func TestHeaderValidate(t *testing.T) {
	hdr := &FontHeader{CellWidth: 1, CellHeight: 1, GlyphCount: 1}
	assert.NoError(t, hdr.Validate())
	hdr.GlyphCount = 0
	assert.ErrorIs(t, hdr.Validate(), ErrMissingHeader)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "InGlyphBitmap", InGlyphBitmap.String())
	assert.Equal(t, "State(9)", State(9).String())
}
