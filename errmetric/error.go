package errmetric

import (
	"github.com/skelcodec/animclip/clip"
	"github.com/skelcodec/animclip/internal/pool"
	"github.com/skelcodec/animclip/vecmath"
)

// PoseSampler samples every bone's local transform at time t, the shape
// both clip.RawClip.SamplePose and a decoder.Decoder's DecodePose share.
type PoseSampler func(t float64) ([]vecmath.Transform, error)

// ClipError summarizes the worst object-space positional deviation a
// lossy reconstruction introduces across a clip's whole duration.
type ClipError struct {
	// Max is the largest per-bone, per-sample-time error found.
	Max float64
	// PerBone is the largest error found for each bone, independent of
	// which sample time produced it.
	PerBone []float64
	// WorstBone is the bone index that produced Max.
	WorstBone int
	// WorstSampleTime is the sample time, in seconds, that produced Max.
	WorstSampleTime float64
}

// WorldTransforms chains locals (one per bone, in the skeleton's
// topological order) from the root down, so world[i] is bone i's
// object-space transform. locals need not be the skeleton's bind pose;
// passing a sampled pose here is what lets Measure compare object-space
// deviation rather than local-space deviation.
func WorldTransforms(skel *clip.Skeleton, locals []vecmath.Transform) []vecmath.Transform {
	world := make([]vecmath.Transform, len(locals))
	for i, bone := range skel.Bones {
		if bone.IsRoot() {
			world[i] = locals[i]
			continue
		}
		world[i] = locals[i].Apply(world[bone.ParentIndex])
	}

	return world
}

// virtualVertex returns the object-space position of the virtual vertex
// vertex_distance units along bone i's local +X axis.
func virtualVertex(world vecmath.Transform, vertexDistance float64) vecmath.Vec3 {
	return world.TransformPoint(vecmath.Vec3{X: vertexDistance})
}

// sampleTimes returns the clip's native sample grid times plus its exact
// duration endpoint (the two coincide for every clip except when the
// caller's duration convention diverges from (n-1)/sampleRate, so the
// endpoint is included unconditionally rather than assumed redundant).
// The returned slice is pooled; call release once done with it, since
// Measure runs once per configuration in a driver sweep and would
// otherwise allocate one grid per call.
func sampleTimes(raw *clip.RawClip) (times []float64, release func()) {
	n := raw.SampleCount()
	times, release = pool.GetFloat64Slice(n + 1)

	for i := 0; i < n; i++ {
		times[i] = float64(i) / float64(raw.SampleRate)
	}
	times[n] = raw.Duration()

	return times, release
}

// FromF32 adapts a float32-precision pose function, such as a
// decoder.Decoder's DecodePose, to the PoseSampler shape Measure expects.
func FromF32(f func(t float64) ([]vecmath.TransformF32, error)) PoseSampler {
	return func(t float64) ([]vecmath.Transform, error) {
		poses, err := f(t)
		if err != nil {
			return nil, err
		}

		out := make([]vecmath.Transform, len(poses))
		for i, p := range poses {
			out[i] = p.ToF64()
		}

		return out, nil
	}
}

// Measure compares raw against poses produced by lossy at every native
// sample time plus the exact duration endpoint, returning the worst
// object-space positional deviation found.
func Measure(raw *clip.RawClip, lossy PoseSampler) (ClipError, error) {
	skel := raw.Skeleton
	result := ClipError{PerBone: make([]float64, skel.BoneCount())}

	times, release := sampleTimes(raw)
	defer release()

	for _, t := range times {
		rawLocals := raw.SamplePose(t)
		lossyLocals, err := lossy(t)
		if err != nil {
			return ClipError{}, err
		}

		rawWorld := WorldTransforms(skel, rawLocals)
		lossyWorld := WorldTransforms(skel, lossyLocals)

		for i, bone := range skel.Bones {
			vRaw := virtualVertex(rawWorld[i], bone.VertexDistance)
			vLossy := virtualVertex(lossyWorld[i], bone.VertexDistance)
			d := vRaw.Distance(vLossy)

			if d > result.PerBone[i] {
				result.PerBone[i] = d
			}
			if d > result.Max {
				result.Max = d
				result.WorstBone = i
				result.WorstSampleTime = t
			}
		}
	}

	return result, nil
}
