package stream

import (
	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/vecmath"
)

// Range is a track's per-clip min and extent, captured before
// quantization. Zero value means range reduction has not run yet.
type Range struct {
	Min    vecmath.Vec3
	Extent vecmath.Vec3
}

// BoneStream is the mutable intermediate for one bone's rotation and
// translation tracks, carried through the four compression kernel
// transforms in order: rotation-form conversion, constant/default
// detection, range reduction, quantization.
//
// Invariants enforced by the kernel package, not by this type: once a
// track is marked default, no further transform touches it; once
// constant, RotSamplesXYZ/TransSamples for that track are dropped in
// favor of the single retained constant sample; range is computed only
// for non-constant, non-default tracks with range reduction enabled.
type BoneStream struct {
	// RotFormat is the target on-disk rotation format, fixed for the
	// whole stream's lifetime.
	RotFormat format.RotationFormat
	// TransFormat is the target on-disk translation format.
	TransFormat format.TranslationFormat

	// RotSamplesFull holds the full-precision quaternion samples as
	// constructed from the raw clip. Retained even after conversion so
	// default/constant detection and error measurement can compare
	// against it.
	RotSamplesFull []vecmath.Quat
	// RotSamplesXYZ holds the x,y,z components after W has been dropped
	// and sign-normalized (W >= 0). Empty until conversion runs, and
	// emptied again once a track is found constant or default.
	RotSamplesXYZ []vecmath.Vec3
	// TransSamples holds the translation samples, in place from
	// construction through range reduction and quantization.
	TransSamples []vecmath.Vec3

	IsRotationDefault     bool
	IsTranslationDefault  bool
	IsRotationConstant    bool
	IsTranslationConstant bool

	// ConstantRotation is the retained x,y,z sample when
	// IsRotationConstant is set and IsRotationDefault is not.
	ConstantRotation vecmath.Vec3
	// ConstantTranslation is the retained sample when
	// IsTranslationConstant is set and IsTranslationDefault is not.
	ConstantTranslation vecmath.Vec3

	RotationRange    Range
	TranslationRange Range
}

// SampleCount returns the shared sample count of the stream's tracks.
func (s *BoneStream) SampleCount() int {
	return len(s.RotSamplesFull)
}

// NeedsAnimatedRotation reports whether s still needs an animated
// (per-sample) rotation section in the container.
func (s *BoneStream) NeedsAnimatedRotation() bool {
	return !s.IsRotationDefault && !s.IsRotationConstant
}

// NeedsAnimatedTranslation reports whether s still needs an animated
// (per-sample) translation section in the container.
func (s *BoneStream) NeedsAnimatedTranslation() bool {
	return !s.IsTranslationDefault && !s.IsTranslationConstant
}
