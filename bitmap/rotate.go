package bitmap

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTransform is returned by [Packed.Rotate] for shift values it
// does not handle. The bitmap is left untouched in that case.
var ErrUnsupportedTransform = errors.New("bitmap: unsupported transform")

// Rotate shifts every row of the bitmap shiftX bits to the right, i.e.
// towards higher byte offsets and less significant bits. Bits moved past the
// end of a row are lost, vacated bits on the left are zero.
//
// Supported are 0 ≤ shiftX < Width() and shiftY ≤ 0. Vertical placement is
// handled by the emitter, so shiftY is only validated. For any other values
// Rotate returns an error wrapping [ErrUnsupportedTransform] and does not
// modify the bitmap.
func (bm *Packed) Rotate(shiftX, shiftY int) error {
	if shiftX < 0 || shiftX >= bm.width {
		return fmt.Errorf("%w: shiftx=%d outside [0,%d)", ErrUnsupportedTransform, shiftX, bm.width)
	}
	if shiftY > 0 {
		return fmt.Errorf("%w: shifty=%d > 0", ErrUnsupportedTransform, shiftY)
	}
	if shiftX == 0 {
		return nil
	}
	tracer().Debugf("rotate %s by %d", bm, shiftX)
	byteShift := shiftX / 8 // whole bytes
	bitShift := uint(shiftX % 8)
	for y := 0; y < bm.height; y++ {
		row := bm.Row(y)
		// walk backwards so every source byte is read before it is overwritten
		for d := len(row) - 1; d >= 0; d-- {
			s := d - byteShift
			var val byte
			if s >= 0 {
				val = row[s] >> bitShift
				if bitShift > 0 && s > 0 {
					val |= row[s-1] << (8 - bitShift)
				}
			}
			row[d] = val
		}
	}
	return nil
}
