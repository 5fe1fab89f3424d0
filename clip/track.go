package clip

import "github.com/skelcodec/animclip/vecmath"

// RotationTrack is a fixed-length sequence of full-precision quaternion
// samples for one bone, taken at the clip's sample rate.
type RotationTrack struct {
	Samples []vecmath.Quat
}

// TranslationTrack is a fixed-length sequence of translation samples for
// one bone, taken at the clip's sample rate.
type TranslationTrack struct {
	Samples []vecmath.Vec3
}

// Len returns the sample count.
func (t RotationTrack) Len() int { return len(t.Samples) }

// Len returns the sample count.
func (t TranslationTrack) Len() int { return len(t.Samples) }

// BoneTrack pairs one bone's rotation and translation tracks. Both share
// the raw clip's sample count.
type BoneTrack struct {
	Rotation    RotationTrack
	Translation TranslationTrack
}
