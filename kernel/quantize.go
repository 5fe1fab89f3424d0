package kernel

import (
	"math"

	"github.com/skelcodec/animclip/vecmath"
)

// QuantizeUnit maps v, assumed to lie in [0,1], to the nearest integer
// representable in bits bits, clamping against rounding error at either
// end of the range.
func QuantizeUnit(v float64, bits int) uint32 {
	max := unitMax(bits)
	q := math.Round(v * max)
	return clampU32(q, max)
}

// DequantizeUnit inverts QuantizeUnit.
func DequantizeUnit(q uint32, bits int) float64 {
	return float64(q) / unitMax(bits)
}

// QuantizeSigned maps v, assumed to lie in [-1,1], to the nearest integer
// representable in bits bits. Used only for tracks quantized without
// per-clip range reduction, where the value's natural range is already
// [-1,1] (an already-unit-length quaternion axis component, for example).
func QuantizeSigned(v float64, bits int) uint32 {
	max := unitMax(bits)
	q := math.Round((v + 1) * 0.5 * max)
	return clampU32(q, max)
}

// DequantizeSigned inverts QuantizeSigned.
func DequantizeSigned(q uint32, bits int) float64 {
	return float64(q)/unitMax(bits)*2 - 1
}

func unitMax(bits int) float64 {
	return float64(uint32(1)<<uint(bits) - 1)
}

func clampU32(q, max float64) uint32 {
	if q < 0 {
		return 0
	}
	if q > max {
		return uint32(max)
	}
	return uint32(q)
}

// QuantizeVec3To16 quantizes a unit-range [0,1] vector into three 16-bit
// lanes, the on-disk form of the 48-bit rotation and translation formats.
func QuantizeVec3To16(v vecmath.Vec3) (x, y, z uint16) {
	return uint16(QuantizeUnit(v.X, 16)), uint16(QuantizeUnit(v.Y, 16)), uint16(QuantizeUnit(v.Z, 16))
}

// DequantizeVec3From16 inverts QuantizeVec3To16.
func DequantizeVec3From16(x, y, z uint16) vecmath.Vec3 {
	return vecmath.Vec3{
		X: DequantizeUnit(uint32(x), 16),
		Y: DequantizeUnit(uint32(y), 16),
		Z: DequantizeUnit(uint32(z), 16),
	}
}

// Bit widths for the packed 32-bit rotation and translation formats: x and
// y each get 11 bits, z gets the remaining 10.
const (
	packedXBits = 11
	packedYBits = 11
	packedZBits = 10

	packedXShift = 0
	packedYShift = packedXBits
	packedZShift = packedXBits + packedYBits
)

// QuantizeVec3To32 packs a unit-range [0,1] vector into a single u32 using
// an 11/11/10 bit split (x: bits 0-10, y: bits 11-21, z: bits 22-31), the
// on-disk form of the 32-bit rotation and translation formats.
func QuantizeVec3To32(v vecmath.Vec3) uint32 {
	x := QuantizeUnit(v.X, packedXBits)
	y := QuantizeUnit(v.Y, packedYBits)
	z := QuantizeUnit(v.Z, packedZBits)
	return x<<packedXShift | y<<packedYShift | z<<packedZShift
}

// DequantizeVec3From32 inverts QuantizeVec3To32.
func DequantizeVec3From32(packed uint32) vecmath.Vec3 {
	x := (packed >> packedXShift) & (1<<packedXBits - 1)
	y := (packed >> packedYShift) & (1<<packedYBits - 1)
	z := (packed >> packedZShift) & (1<<packedZBits - 1)
	return vecmath.Vec3{
		X: DequantizeUnit(x, packedXBits),
		Y: DequantizeUnit(y, packedYBits),
		Z: DequantizeUnit(z, packedZBits),
	}
}
