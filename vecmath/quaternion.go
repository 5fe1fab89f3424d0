package vecmath

import (
	"math"

	"github.com/skelcodec/animclip/errs"
)

// Quat is a rotation quaternion (x, y, z, w) in float64.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// NewQuat builds a quaternion from its four components.
func NewQuat(x, y, z, w float64) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// Dot returns the four-component dot product of q and o.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSquared returns the squared magnitude of q, computed as the
// dot product of q with itself rather than a sum of squared components
// taken in isolation.
func (q Quat) LengthSquared() float64 {
	return q.Dot(q)
}

// Length returns the magnitude of q.
func (q Quat) Length() float64 {
	return math.Sqrt(q.LengthSquared())
}

// Normalize returns q scaled to unit length. Normalizing the zero
// quaternion is an invariant violation: callers must never reach it,
// since every rotation source (bind pose, sampled clip, decoded output)
// is expected to already be non-degenerate.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		errs.Invariant("normalizing zero-length quaternion")
	}

	inv := 1 / l
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Negate flips the sign of every component. A quaternion and its negation
// represent the same rotation; negation is used to force a canonical sign
// before quantization.
func (q Quat) Negate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// IsFinite reports whether every component of q is finite.
func (q Quat) IsFinite() bool {
	return isFiniteF64(q.X) && isFiniteF64(q.Y) && isFiniteF64(q.Z) && isFiniteF64(q.W)
}

// IsNormalized reports whether q's squared length is within eps of 1.
func (q Quat) IsNormalized(eps float64) bool {
	return math.Abs(q.LengthSquared()-1) <= eps
}

// Mul composes two rotations: applying the result to a vector is
// equivalent to applying o first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conjugate returns q with its vector part negated, the inverse rotation
// for a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// RotateVector applies q's rotation to v, treating q as unit-length.
func (q Quat) RotateVector(v Vec3) Vec3 {
	qv := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)

	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Lerp linearly interpolates between q and o at t in [0, 1] and renormalizes
// the result. This is the nlerp used by the sampling decoder: it takes the
// shorter arc by negating o first when the two quaternions are more than
// 90 degrees apart.
func (q Quat) Lerp(o Quat, t float64) Quat {
	if q.Dot(o) < 0 {
		o = o.Negate()
	}

	r := Quat{
		X: q.X + (o.X-q.X)*t,
		Y: q.Y + (o.Y-q.Y)*t,
		Z: q.Z + (o.Z-q.Z)*t,
		W: q.W + (o.W-q.W)*t,
	}

	return r.Normalize()
}

// AxisAngle returns the unit rotation axis and angle in radians that q
// represents. For a near-identity quaternion the axis defaults to +X.
func (q Quat) AxisAngle() (axis Vec3, angle float64) {
	qn := q
	if qn.W > 1 || qn.W < -1 {
		qn = qn.Normalize()
	}

	angle = 2 * math.Acos(clamp(qn.W, -1, 1))
	s := math.Sqrt(1 - qn.W*qn.W)
	if s < 1e-8 {
		return Vec3{X: 1}, angle
	}

	return Vec3{X: qn.X / s, Y: qn.Y / s, Z: qn.Z / s}, angle
}

// QuatFromAxisAngle builds a unit quaternion rotating angle radians about axis.
// axis is normalized internally.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalize()
	half := angle * 0.5
	s := math.Sin(half)

	return Quat{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: math.Cos(half)}
}

// ReconstructW recovers a dropped w component from the stored x, y, z,
// choosing the non-negative root, since every storage format that drops w
// first canonicalizes the quaternion's sign so w >= 0.
func ReconstructW(x, y, z float64) float64 {
	lenSq := x*x + y*y + z*z
	return math.Sqrt(math.Max(0, 1-lenSq))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFiniteF64(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// QuatF32 is the float32 counterpart of Quat, used for values a decoder
// reconstructs at runtime.
type QuatF32 struct {
	X, Y, Z, W float32
}

// IdentityQuatF32 returns the identity rotation in float32.
func IdentityQuatF32() QuatF32 {
	return QuatF32{W: 1}
}

// ToF32 truncates q to float32 precision.
func (q Quat) ToF32() QuatF32 {
	return QuatF32{X: float32(q.X), Y: float32(q.Y), Z: float32(q.Z), W: float32(q.W)}
}

// ToF64 widens q to float64 precision.
func (q QuatF32) ToF64() Quat {
	return Quat{X: float64(q.X), Y: float64(q.Y), Z: float64(q.Z), W: float64(q.W)}
}

// LengthSquared returns the squared magnitude of q.
func (q QuatF32) LengthSquared() float64 {
	return q.ToF64().LengthSquared()
}

// IsNormalized reports whether q's squared length is within eps of 1.
func (q QuatF32) IsNormalized(eps float64) bool {
	return math.Abs(q.LengthSquared()-1) <= eps
}

// ReconstructWF32 recovers a dropped w component from stored x, y, z in
// float32 precision.
func ReconstructWF32(x, y, z float32) float32 {
	lenSq := x*x + y*y + z*z
	rem := float32(1) - lenSq
	if rem < 0 {
		rem = 0
	}

	return float32(math.Sqrt(float64(rem)))
}
