package kernel

import (
	"math"

	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
)

// Detect classifies s's rotation and translation tracks as default (equal
// to bindPose throughout), constant (equal to their own first sample
// throughout, but not to bindPose), or animated, and drops the
// now-redundant per-sample data for any track that is not animated.
//
// Must run after ConvertRotations, since it compares RotSamplesFull's
// sign-canonicalized quaternions.
func Detect(s *stream.BoneStream, bindPose vecmath.Transform, tol Tolerance) {
	detectRotation(s, bindPose.Rotation, tol.Rotation)
	detectTranslation(s, bindPose.Translation, tol.Translation)
}

func detectRotation(s *stream.BoneStream, bindRot vecmath.Quat, tau float64) {
	n := len(s.RotSamplesFull)
	if n == 0 {
		return
	}

	if rotationAllEqual(s.RotSamplesFull, bindRot, tau) {
		s.IsRotationDefault = true
		s.RotSamplesXYZ = nil
		return
	}

	first := s.RotSamplesFull[0]
	if rotationAllEqual(s.RotSamplesFull, first, tau) {
		s.IsRotationConstant = true
		s.ConstantRotation = vecmath.Vec3{X: first.X, Y: first.Y, Z: first.Z}
		s.RotSamplesXYZ = nil
	}
}

func detectTranslation(s *stream.BoneStream, bindTrans vecmath.Vec3, tau float64) {
	n := len(s.TransSamples)
	if n == 0 {
		return
	}

	if translationAllEqual(s.TransSamples, bindTrans, tau) {
		s.IsTranslationDefault = true
		s.TransSamples = nil
		return
	}

	first := s.TransSamples[0]
	if translationAllEqual(s.TransSamples, first, tau) {
		s.IsTranslationConstant = true
		s.ConstantTranslation = first
		s.TransSamples = nil
	}
}

func rotationAllEqual(samples []vecmath.Quat, ref vecmath.Quat, tau float64) bool {
	for _, q := range samples {
		if !quatEqual(q, ref, tau) {
			return false
		}
	}
	return true
}

func quatEqual(a, b vecmath.Quat, tau float64) bool {
	d := a.Dot(b)
	if d < 0 {
		d = -d
	}
	return 1-d <= tau
}

func translationAllEqual(samples []vecmath.Vec3, ref vecmath.Vec3, tau float64) bool {
	for _, v := range samples {
		if linfDistance(v, ref) > tau {
			return false
		}
	}
	return true
}

func linfDistance(a, b vecmath.Vec3) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Max(math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z)))
}
