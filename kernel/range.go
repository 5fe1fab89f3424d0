package kernel

import (
	"math"

	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
)

// smallExtentEpsilon replaces a zero per-axis extent when remapping to
// [0,1], so an axis that never varies does not divide by zero. The
// computed Range still records the true (zero) extent; only the in-place
// remap uses the epsilon.
const smallExtentEpsilon = 1e-8

// ReduceRange applies per-clip min/extent range reduction to s's rotation
// and translation tracks, as selected by flags, skipping any track already
// marked default or constant. Samples that are reduced are remapped to
// [0,1] in place; s.RotationRange and s.TranslationRange record the
// min/extent used.
func ReduceRange(s *stream.BoneStream, flags format.RangeReductionFlags) {
	if flags.HasRotation() && s.NeedsAnimatedRotation() {
		s.RotationRange = computeRange(s.RotSamplesXYZ)
		remapToUnit(s.RotSamplesXYZ, s.RotationRange)
	}

	if flags.HasTranslation() && s.NeedsAnimatedTranslation() {
		s.TranslationRange = computeRange(s.TransSamples)
		remapToUnit(s.TransSamples, s.TranslationRange)
	}
}

func computeRange(samples []vecmath.Vec3) stream.Range {
	if len(samples) == 0 {
		return stream.Range{}
	}

	min := samples[0]
	max := samples[0]
	for _, v := range samples[1:] {
		min = vecmath.Vec3{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
		max = vecmath.Vec3{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
	}

	return stream.Range{
		Min:    min,
		Extent: vecmath.Vec3{X: max.X - min.X, Y: max.Y - min.Y, Z: max.Z - min.Z},
	}
}

func remapToUnit(samples []vecmath.Vec3, r stream.Range) {
	ex, ey, ez := effectiveComponent(r.Extent.X), effectiveComponent(r.Extent.Y), effectiveComponent(r.Extent.Z)
	for i, v := range samples {
		samples[i] = vecmath.Vec3{
			X: (v.X - r.Min.X) / ex,
			Y: (v.Y - r.Min.Y) / ey,
			Z: (v.Z - r.Min.Z) / ez,
		}
	}
}

// InvertRange maps a decoded [0,1] value back to its original range,
// mirroring remapToUnit's epsilon substitution for a zero extent.
func InvertRange(v vecmath.Vec3, r stream.Range) vecmath.Vec3 {
	ex, ey, ez := effectiveComponent(r.Extent.X), effectiveComponent(r.Extent.Y), effectiveComponent(r.Extent.Z)
	return vecmath.Vec3{
		X: v.X*ex + r.Min.X,
		Y: v.Y*ey + r.Min.Y,
		Z: v.Z*ez + r.Min.Z,
	}
}

func effectiveComponent(extent float64) float64 {
	if extent == 0 {
		return smallExtentEpsilon
	}
	return extent
}
