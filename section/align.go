package section

import "math"

// AlignUp rounds offset up to the next multiple of alignment; an offset
// that is already a multiple is returned unchanged.
func AlignUp(offset, alignment int) int {
	rem := offset % alignment
	if rem == 0 {
		return offset
	}

	return offset + (alignment - rem)
}

// PadTo appends zero bytes to buf until its length is a multiple of alignment.
func PadTo(buf []byte, alignment int) []byte {
	n := AlignUp(len(buf), alignment) - len(buf)
	for i := 0; i < n; i++ {
		buf = append(buf, 0)
	}

	return buf
}

func f32bits(v float32) uint32     { return math.Float32bits(v) }
func f32frombits(b uint32) float32 { return math.Float32frombits(b) }
