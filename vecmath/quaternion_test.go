package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityQuatRotatesNothing(t *testing.T) {
	require := require.New(t)

	v := Vec3{X: 1, Y: 2, Z: 3}
	got := IdentityQuat().RotateVector(v)

	require.InDelta(v.X, got.X, 1e-12)
	require.InDelta(v.Y, got.Y, 1e-12)
	require.InDelta(v.Z, got.Z, 1e-12)
}

func TestQuatFromAxisAngleRotatesQuarterTurn(t *testing.T) {
	require := require.New(t)

	q := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/2)
	got := q.RotateVector(Vec3{X: 1})

	require.InDelta(0, got.X, 1e-9)
	require.InDelta(1, got.Y, 1e-9)
	require.InDelta(0, got.Z, 1e-9)
}

func TestAxisAngleRoundTrips(t *testing.T) {
	require := require.New(t)

	want := QuatFromAxisAngle(Vec3{X: 0.2, Y: 0.6, Z: 0.3}, 1.1)
	axis, angle := want.AxisAngle()
	got := QuatFromAxisAngle(axis, angle)

	require.InDelta(want.Dot(got), 1, 1e-6)
}

func TestLengthSquaredIsFourTermDotProduct(t *testing.T) {
	require := require.New(t)

	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	require.Equal(1.0+4+9+16, q.LengthSquared())
}

func TestNormalizeProducesUnitLength(t *testing.T) {
	require := require.New(t)

	q := Quat{X: 3, Y: 0, Z: 0, W: 4}
	n := q.Normalize()

	require.True(n.IsNormalized(1e-12))
}

func TestNormalizeZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		Quat{}.Normalize()
	})
}

func TestMulComposesRotations(t *testing.T) {
	require := require.New(t)

	rx := QuatFromAxisAngle(Vec3{X: 1}, math.Pi/2)
	ry := QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/2)

	composed := ry.Mul(rx)
	direct := composed.RotateVector(Vec3{Z: 1})
	stepwise := ry.RotateVector(rx.RotateVector(Vec3{Z: 1}))

	require.InDelta(stepwise.X, direct.X, 1e-9)
	require.InDelta(stepwise.Y, direct.Y, 1e-9)
	require.InDelta(stepwise.Z, direct.Z, 1e-9)
}

func TestLerpTakesShorterArc(t *testing.T) {
	require := require.New(t)

	a := QuatFromAxisAngle(Vec3{Z: 1}, 0.1)
	b := QuatFromAxisAngle(Vec3{Z: 1}, 0.1).Negate()

	got := a.Lerp(b, 0.5)
	require.True(got.IsNormalized(1e-9))
	require.InDelta(a.Dot(got), 1, 1e-6)
}

func TestReconstructWNonNegative(t *testing.T) {
	require := require.New(t)

	q := QuatFromAxisAngle(Vec3{X: 0.4, Y: 0.5, Z: 0.7}, 0.9)
	if q.W < 0 {
		q = q.Negate()
	}

	w := ReconstructW(q.X, q.Y, q.Z)
	require.InDelta(q.W, w, 1e-9)
}

func TestReconstructWClampsNegativeRemainder(t *testing.T) {
	require := require.New(t)

	w := ReconstructW(1, 1, 1)
	require.Zero(w)
}

func TestIsFiniteRejectsNaN(t *testing.T) {
	require := require.New(t)

	require.False(Quat{X: math.NaN(), W: 1}.IsFinite())
	require.True(IdentityQuat().IsFinite())
}

func TestQuatF32RoundTrip(t *testing.T) {
	require := require.New(t)

	q := QuatFromAxisAngle(Vec3{X: 1}, 0.5)
	got := q.ToF32().ToF64()

	require.InDelta(q.X, got.X, 1e-6)
	require.InDelta(q.W, got.W, 1e-6)
}
