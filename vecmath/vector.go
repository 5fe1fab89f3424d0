package vecmath

import "math"

// Vec3 is a 3D vector in float64, used for translations and for the
// virtual-vertex positions errmetric accumulates error over.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared magnitude of v.
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the magnitude of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Lerp linearly interpolates between v and o at t in [0, 1].
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Min returns the componentwise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y), Z: math.Min(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y), Z: math.Max(v.Z, o.Z)}
}

// IsFinite reports whether every component of v is finite.
func (v Vec3) IsFinite() bool {
	return isFiniteF64(v.X) && isFiniteF64(v.Y) && isFiniteF64(v.Z)
}

// Normalize returns v scaled to unit length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}

	return v.Scale(1 / l)
}

// ToF32 truncates v to float32 precision.
func (v Vec3) ToF32() Vec3F32 {
	return Vec3F32{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Vec3F32 is the float32 counterpart of Vec3, used for values a decoder
// reconstructs at runtime.
type Vec3F32 struct {
	X, Y, Z float32
}

// ToF64 widens v to float64 precision.
func (v Vec3F32) ToF64() Vec3 {
	return Vec3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Add returns v + o.
func (v Vec3F32) Add(o Vec3F32) Vec3F32 {
	return Vec3F32{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3F32) Sub(o Vec3F32) Vec3F32 {
	return Vec3F32{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}
