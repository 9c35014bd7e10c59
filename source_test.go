package bdftab_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bdftab"
	"github.com/npillmayer/bdftab/bdf"
	"github.com/npillmayer/bdftab/bitmap"
	"github.com/npillmayer/bdftab/internal/fontload"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLatin1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab")
	defer teardown()
	//
	src, err := fontload.LoadTestFont("latin1.bdf")
	require.NoError(t, err)
	assert.Equal(t, "latin1.bdf", src.Name)
	assert.Equal(t, bdftab.Latin1, src.Encoding, "invalid UTF-8 selects latin1")
	hdr, err := src.Header()
	require.NoError(t, err)
	assert.Equal(t, "latin1-é", hdr.Name)
	assert.Equal(t, []string{"Copyright © test"}, hdr.Comments)
	//
	p, err := fontload.Path("latin1.bdf")
	require.NoError(t, err)
	raw, err := bdftab.Open(p, bdftab.UTF8)
	require.NoError(t, err)
	hdr, err = raw.Header()
	require.NoError(t, err)
	assert.Equal(t, "latin1-\xe9", hdr.Name, "UTF8 takes bytes as they are")
}

func TestLoadUTF8(t *testing.T) {
	src, err := bdftab.Load(strings.NewReader("FONT ÄÖÜ\nFONTBOUNDINGBOX 1 1 0 0\nCHARS 1\n"), bdftab.Auto)
	require.NoError(t, err)
	assert.Equal(t, bdftab.UTF8, src.Encoding)
	assert.Equal(t, "-", src.Name)
	hdr, err := src.Header()
	require.NoError(t, err)
	assert.Equal(t, "ÄÖÜ", hdr.Name)
	//
	src, err = bdftab.Load(strings.NewReader("FONT \xc4\n"), bdftab.Latin1)
	require.NoError(t, err)
	assert.Equal(t, "FONT Ä\n", readAll(t, src))
}

func TestParseEncoding(t *testing.T) {
	for name, want := range map[string]bdftab.Encoding{
		"": bdftab.Auto, "Latin1": bdftab.Latin1, "ISO-8859-1": bdftab.Latin1, "utf8": bdftab.UTF8,
	} {
		enc, err := bdftab.ParseEncoding(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, enc, name)
	}
	_, err := bdftab.ParseEncoding("ebcdic")
	assert.Error(t, err)
	assert.Equal(t, "latin1", bdftab.Latin1.String())
}

func TestGlyphsAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab")
	defer teardown()
	//
	src, err := fontload.LoadTestFont("mixed.bdf")
	require.NoError(t, err)
	var names []string
	err = src.Glyphs(func(g bdf.GlyphRecord, bm *bitmap.Packed) error {
		names = append(names, g.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"period", "bar", "neg", "space"}, names)
	//
	for _, key := range []string{"46", "0x2e", "U+002E", "period"} {
		g, bm, err := src.Lookup(key)
		require.NoError(t, err, key)
		assert.Equal(t, "period", g.Name, key)
		assert.Equal(t, []byte{0xc0, 0xc0}, bm.Bytes()[:2], key)
	}
	_, _, err = src.Lookup("nothing")
	assert.ErrorIs(t, err, bdftab.ErrGlyphNotFound)
	//
	stop := errors.New("stop")
	err = src.Glyphs(func(g bdf.GlyphRecord, bm *bitmap.Packed) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func readAll(t *testing.T, src *bdftab.Source) string {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(src.Reader())
	require.NoError(t, err)
	assert.Equal(t, src.Len(), buf.Len())
	return buf.String()
}
