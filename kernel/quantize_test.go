package kernel

import (
	"testing"

	"github.com/skelcodec/animclip/vecmath"
	"github.com/stretchr/testify/require"
)

func TestQuantizeUnitRoundTrips(t *testing.T) {
	require := require.New(t)

	q := QuantizeUnit(0.5, 16)
	require.InDelta(0.5, DequantizeUnit(q, 16), 1e-4)
}

func TestQuantizeUnitClampsOutOfRange(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(0), QuantizeUnit(-1, 8))
	require.Equal(uint32(255), QuantizeUnit(2, 8))
}

func TestQuantizeSignedRoundTrips(t *testing.T) {
	require := require.New(t)

	q := QuantizeSigned(-0.5, 16)
	require.InDelta(-0.5, DequantizeSigned(q, 16), 1e-4)
}

func TestQuantizeVec3To16RoundTrips(t *testing.T) {
	require := require.New(t)

	v := vecmath.Vec3{X: 0.1, Y: 0.5, Z: 0.9}
	x, y, z := QuantizeVec3To16(v)
	got := DequantizeVec3From16(x, y, z)

	require.InDelta(v.X, got.X, 1e-4)
	require.InDelta(v.Y, got.Y, 1e-4)
	require.InDelta(v.Z, got.Z, 1e-4)
}

func TestQuantizeVec3To32PacksNonOverlappingFields(t *testing.T) {
	require := require.New(t)

	packed := QuantizeVec3To32(vecmath.Vec3{X: 1, Y: 0, Z: 0})
	require.Equal(uint32(1<<packedXBits-1), packed&(1<<packedXBits-1))
	require.Equal(uint32(0), packed>>packedYShift)
}

func TestQuantizeVec3To32RoundTrips(t *testing.T) {
	require := require.New(t)

	v := vecmath.Vec3{X: 0.2, Y: 0.8, Z: 0.5}
	packed := QuantizeVec3To32(v)
	got := DequantizeVec3From32(packed)

	require.InDelta(v.X, got.X, 1e-2)
	require.InDelta(v.Y, got.Y, 1e-2)
	require.InDelta(v.Z, got.Z, 1e-2)
}
