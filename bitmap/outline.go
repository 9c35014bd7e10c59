package bitmap

// Outline replaces the bitmap by its outline. A pixel of the result is set
// if and only if it is unset in the source and at least one of its
// neighbours above, left, right or below is set. Neighbours outside the
// bitmap count as unset.
//
// This is a single pass over the source; the result is not dilated any
// further. Callers wanting the outline to stay inside the cell have to
// reserve a free border row and column before (see [Packed.Rotate]).
func (bm *Packed) Outline() {
	out := bm.work()
	clear(out)
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Bit(x, y) {
				continue
			}
			if bm.Bit(x, y-1) || bm.Bit(x-1, y) || bm.Bit(x+1, y) || bm.Bit(x, y+1) {
				out[y*bm.stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	copy(bm.Bytes(), out)
}
