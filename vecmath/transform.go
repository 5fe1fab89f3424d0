package vecmath

// Transform is a bone's local rotation and translation relative to its
// parent, in float64.
type Transform struct {
	Rotation    Quat
	Translation Vec3
}

// IdentityTransform returns the identity local transform.
func IdentityTransform() Transform {
	return Transform{Rotation: IdentityQuat()}
}

// Apply composes t with parent, returning t expressed in parent's space:
// the rotation is parent.Rotation * t.Rotation, and the translation is
// t's translation rotated by parent and offset by parent's translation.
func (t Transform) Apply(parent Transform) Transform {
	return Transform{
		Rotation:    parent.Rotation.Mul(t.Rotation),
		Translation: parent.Rotation.RotateVector(t.Translation).Add(parent.Translation),
	}
}

// TransformPoint applies t's rotation and translation to a local point.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Rotation.RotateVector(p).Add(t.Translation)
}

// ToF32 truncates t to float32 precision.
func (t Transform) ToF32() TransformF32 {
	return TransformF32{Rotation: t.Rotation.ToF32(), Translation: t.Translation.ToF32()}
}

// TransformF32 is the float32 counterpart of Transform, used for values a
// decoder reconstructs at runtime.
type TransformF32 struct {
	Rotation    QuatF32
	Translation Vec3F32
}

// IdentityTransformF32 returns the identity local transform in float32.
func IdentityTransformF32() TransformF32 {
	return TransformF32{Rotation: IdentityQuatF32()}
}

// ToF64 widens t to float64 precision.
func (t TransformF32) ToF64() Transform {
	return Transform{Rotation: t.Rotation.ToF64(), Translation: t.Translation.ToF64()}
}
