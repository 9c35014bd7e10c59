package bitmap

import (
	"fmt"
)

// Packed is a 1-bit-per-pixel, row-major bitmap of fixed size.
//
// The zero value is an empty bitmap of size 0×0. Use [New] to create a
// bitmap of a given cell size.
type Packed struct {
	width, height int
	stride        int
	buf           []byte // pixel plane followed by an equally sized work plane
}

// New allocates a bitmap for a cell of width × height pixels. Non-positive
// dimensions result in an empty bitmap.
func New(width, height int) *Packed {
	if width <= 0 || height <= 0 {
		return &Packed{}
	}
	stride := (width + 7) / 8
	return &Packed{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, 2*stride*height),
	}
}

// Width returns the width of the bitmap in pixels.
func (bm *Packed) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *Packed) Height() int { return bm.height }

// Stride returns the number of bytes per row.
func (bm *Packed) Stride() int { return bm.stride }

// Bytes returns the pixel plane, Stride()·Height() bytes. The slice aliases
// the bitmap and is valid until the next call to a mutating method.
func (bm *Packed) Bytes() []byte {
	return bm.buf[:bm.stride*bm.height]
}

// Row returns the bytes of row y, or nil if y is out of range.
func (bm *Packed) Row(y int) []byte {
	if y < 0 || y >= bm.height {
		return nil
	}
	return bm.buf[y*bm.stride : (y+1)*bm.stride]
}

// Clear zeroes all pixels.
func (bm *Packed) Clear() {
	clear(bm.buf[:bm.stride*bm.height])
}

// Bit reports whether the pixel at (x, y) is set. Coordinates outside the
// bitmap report false.
func (bm *Packed) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return false
	}
	return bm.buf[y*bm.stride+x/8]&(0x80>>(x%8)) != 0
}

// Set sets the pixel at (x, y). Coordinates outside the bitmap are ignored.
func (bm *Packed) Set(x, y int) {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return
	}
	bm.buf[y*bm.stride+x/8] |= 0x80 >> (x % 8)
}

// CopyFrom copies the pixels of src into bm. Both bitmaps must have the same
// dimensions.
func (bm *Packed) CopyFrom(src *Packed) error {
	if src.width != bm.width || src.height != bm.height {
		return fmt.Errorf("bitmap: cannot copy %dx%d bitmap into %dx%d bitmap",
			src.width, src.height, bm.width, bm.height)
	}
	copy(bm.Bytes(), src.Bytes())
	return nil
}

// IsEmpty reports whether no pixel is set.
func (bm *Packed) IsEmpty() bool {
	for _, b := range bm.Bytes() {
		if b != 0 {
			return false
		}
	}
	return true
}

func (bm *Packed) String() string {
	return fmt.Sprintf("bitmap(%dx%d)", bm.width, bm.height)
}

// work returns the work plane, the same size as the pixel plane.
func (bm *Packed) work() []byte {
	n := bm.stride * bm.height
	return bm.buf[n : 2*n]
}
