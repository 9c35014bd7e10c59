package preview

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/npillmayer/bdftab/bitmap"
	"github.com/npillmayer/bdftab/tabgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ tabgen.Observer = (*Sheet)(nil)

func dot(t *testing.T) *bitmap.Packed {
	bm := bitmap.New(3, 3)
	bm.Set(1, 1)
	return bm
}

func TestSheetLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdftab.preview")
	defer teardown()
	//
	s := NewSheet(Options{Scale: 2, Columns: 2})
	require.NoError(t, s.Init("x.png", 3, 3, 3, "dots"))
	b := s.Image().Bounds()
	boxW := max(3*2, 21) + 2*pad
	boxH := 3*2 + labelSkip + 2*pad
	assert.Equal(t, 2*boxW, b.Dx())
	assert.Equal(t, labelSkip+2*pad+2*boxH, b.Dy())
	//
	s.Add(dot(t), 3, 3, 0, 0, 0x41, false, false)
	s.Add(dot(t), 3, 3, 0, 1, 0x42, true, false)
	s.Add(dot(t), 3, 3, 0, -2, 0x43, true, true)
	s.Add(dot(t), 3, 3, 0, 0, 0x44, false, false)
	assert.Equal(t, 3, s.Len(), "glyphs beyond the declared count are ignored")
	//
	img := s.Image()
	x0, y0 := pad, labelSkip+2*pad+pad
	assert.Equal(t, CellColor, img.RGBAAt(x0, y0))
	assert.Equal(t, Ink, img.RGBAAt(x0+2, y0+2), "pixel (1,1) scaled by 2")
	assert.Equal(t, Ink, img.RGBAAt(x0+3, y0+3))
	x1 := boxW + pad
	assert.Equal(t, Shifted, img.RGBAAt(x1, y0))
	assert.Equal(t, Ink, img.RGBAAt(x1+2, y0+4), "moved down by one row")
	y1 := y0 + boxH
	assert.Equal(t, Overflow, img.RGBAAt(x0+2, y1+2), "pixel moved above the cell is clipped")
}

func TestSheetFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"sheet.png", "sheet.PPM"} {
		path := filepath.Join(dir, name)
		s := NewSheet(Options{})
		require.NoError(t, s.Init(path, 1, 3, 3, "dots"))
		s.Add(dot(t), 3, 3, 0, 0, 0x41, false, false)
		require.NoError(t, s.Finalize())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		b := s.Image().Bounds()
		if FormatFor(path) == PPM {
			header := []byte("P6\n")
			assert.True(t, bytes.HasPrefix(data, header))
			assert.Greater(t, len(data), b.Dx()*b.Dy()*3)
			continue
		}
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, b, img.Bounds())
	}
}

func TestSheetErrors(t *testing.T) {
	s := NewSheet(Options{})
	assert.ErrorIs(t, s.Finalize(), ErrNoSheet)
	assert.Error(t, s.Init("", 1, 3, 3, ""))
	assert.Error(t, s.Init("x.png", 0, 3, 3, ""))
	s.Add(dot(t), 3, 3, 0, 0, 0, false, false) // no-op before Init
	assert.Equal(t, 0, s.Len())
	var buf bytes.Buffer
	assert.ErrorIs(t, s.Encode(&buf, PNG), ErrNoSheet)
	require.NoError(t, s.Init(filepath.Join(t.TempDir(), "missing", "x.png"), 1, 3, 3, ""))
	assert.Error(t, s.Finalize(), "directory does not exist")
}

func TestEncodePPM(t *testing.T) {
	s := NewSheet(Options{Scale: 1, Columns: 1})
	require.NoError(t, s.Init("x.ppm", 1, 1, 1, ""))
	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, PPM))
	b := s.Image().Bounds()
	header := []byte("P6\n" + strconv.Itoa(b.Dx()) + " " + strconv.Itoa(b.Dy()) + "\n255\n")
	assert.Equal(t, header, buf.Bytes()[:len(header)])
	assert.Equal(t, len(header)+3*b.Dx()*b.Dy(), buf.Len())
	assert.Equal(t, []byte{0xff, 0xff, 0xff}, buf.Bytes()[len(header):len(header)+3])
}
