package kernel

import (
	"testing"

	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
	"github.com/stretchr/testify/require"
)

func TestDetectMarksRotationDefault(t *testing.T) {
	require := require.New(t)

	bind := vecmath.IdentityTransform()
	s := &stream.BoneStream{
		RotSamplesFull: []vecmath.Quat{vecmath.IdentityQuat(), vecmath.IdentityQuat(), vecmath.IdentityQuat()},
		TransSamples:   []vecmath.Vec3{{}, {}, {}},
	}
	Detect(s, bind, DefaultTolerance())

	require.True(s.IsRotationDefault)
	require.False(s.IsRotationConstant)
	require.Nil(s.RotSamplesXYZ)
}

func TestDetectMarksRotationConstantNotDefault(t *testing.T) {
	require := require.New(t)

	off := vecmath.QuatFromAxisAngle(vecmath.Vec3{Y: 1}, 1.0)
	bind := vecmath.IdentityTransform()
	s := &stream.BoneStream{
		RotSamplesFull: []vecmath.Quat{off, off, off},
		TransSamples:   []vecmath.Vec3{{}, {}, {}},
	}
	Detect(s, bind, DefaultTolerance())

	require.False(s.IsRotationDefault)
	require.True(s.IsRotationConstant)
	require.Equal(off.X, s.ConstantRotation.X)
}

func TestDetectLeavesAnimatedRotationAlone(t *testing.T) {
	require := require.New(t)

	a := vecmath.QuatFromAxisAngle(vecmath.Vec3{Y: 1}, 0.1)
	b := vecmath.QuatFromAxisAngle(vecmath.Vec3{Y: 1}, 1.0)
	bind := vecmath.IdentityTransform()
	s := &stream.BoneStream{
		RotSamplesFull: []vecmath.Quat{a, b},
		RotSamplesXYZ:  []vecmath.Vec3{{X: a.X, Y: a.Y, Z: a.Z}, {X: b.X, Y: b.Y, Z: b.Z}},
		TransSamples:   []vecmath.Vec3{{}, {}},
	}
	Detect(s, bind, DefaultTolerance())

	require.False(s.IsRotationDefault)
	require.False(s.IsRotationConstant)
	require.NotNil(s.RotSamplesXYZ)
}

func TestDetectMarksTranslationDefaultAndConstant(t *testing.T) {
	require := require.New(t)

	bind := vecmath.IdentityTransform()

	defaultStream := &stream.BoneStream{
		RotSamplesFull: []vecmath.Quat{vecmath.IdentityQuat(), vecmath.IdentityQuat()},
		TransSamples:   []vecmath.Vec3{{}, {}},
	}
	Detect(defaultStream, bind, DefaultTolerance())
	require.True(defaultStream.IsTranslationDefault)
	require.Nil(defaultStream.TransSamples)

	constStream := &stream.BoneStream{
		RotSamplesFull: []vecmath.Quat{vecmath.IdentityQuat(), vecmath.IdentityQuat()},
		TransSamples:   []vecmath.Vec3{{X: 5}, {X: 5}},
	}
	Detect(constStream, bind, DefaultTolerance())
	require.False(constStream.IsTranslationDefault)
	require.True(constStream.IsTranslationConstant)
	require.Equal(5.0, constStream.ConstantTranslation.X)
}
