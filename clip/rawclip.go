package clip

import (
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/vecmath"
)

// RawClip is a skeleton reference plus per-bone rotation/translation
// tracks, all sampled at SampleRate samples per second.
type RawClip struct {
	Skeleton   *Skeleton
	SampleRate int
	Tracks     []BoneTrack // one per bone, indexed like Skeleton.Bones
}

// SampleCount returns the shared sample count of every track, or 0 if the
// clip has no bones.
func (c *RawClip) SampleCount() int {
	if len(c.Tracks) == 0 {
		return 0
	}

	return c.Tracks[0].Rotation.Len()
}

// Duration returns the clip's length in seconds: (num_samples-1)/sample_rate.
// A single-sample clip has zero duration.
func (c *RawClip) Duration() float64 {
	n := c.SampleCount()
	if n <= 1 {
		return 0
	}

	return float64(n-1) / float64(c.SampleRate)
}

// Validate checks that the clip references a valid skeleton, has a
// positive sample rate, at least two samples, and that every bone's
// tracks share the same sample count.
func (c *RawClip) Validate() error {
	if c.Skeleton == nil {
		return errs.New(errs.KindInvalidInput, "raw clip has no skeleton")
	}
	if err := c.Skeleton.Validate(); err != nil {
		return err
	}
	if c.SampleRate <= 0 {
		return errs.Newf(errs.KindInvalidInput, "sample rate %d must be positive", c.SampleRate)
	}
	if len(c.Tracks) != c.Skeleton.BoneCount() {
		return errs.Newf(errs.KindInvalidInput, "track count %d != bone count %d", len(c.Tracks), c.Skeleton.BoneCount())
	}

	n := c.SampleCount()
	if n < 2 {
		return errs.Newf(errs.KindInvalidInput, "clip has %d samples, want at least 2", n)
	}

	for i, tr := range c.Tracks {
		if tr.Rotation.Len() != n || tr.Translation.Len() != n {
			return errs.Newf(errs.KindInvalidInput, "bone %d: track lengths %d/%d != clip length %d",
				i, tr.Rotation.Len(), tr.Translation.Len(), n)
		}
		for s, q := range tr.Rotation.Samples {
			if !q.IsFinite() {
				return errs.Newf(errs.KindInvalidInput, "bone %d sample %d: rotation is not finite", i, s)
			}
		}
		for s, v := range tr.Translation.Samples {
			if !v.IsFinite() {
				return errs.Newf(errs.KindInvalidInput, "bone %d sample %d: translation is not finite", i, s)
			}
		}
	}

	return nil
}

// keyframes returns the bracketing sample indices and the interpolation
// fraction between them for time t, clamped to the clip's duration.
func (c *RawClip) keyframes(t float64) (frame0, frame1 int, alpha float64) {
	n := c.SampleCount()
	if n <= 1 {
		return 0, 0, 0
	}

	step := 1.0 / float64(c.SampleRate)
	pos := t / step
	if pos < 0 {
		pos = 0
	}

	maxPos := float64(n - 1)
	if pos > maxPos {
		pos = maxPos
	}

	frame0 = int(pos)
	if frame0 >= n-1 {
		frame0 = n - 2
	}
	frame1 = frame0 + 1
	alpha = pos - float64(frame0)

	return frame0, frame1, alpha
}

// SampleBonePose samples bone boneIndex's rotation and translation at
// time t (seconds), linearly interpolating the two bracketing frames and
// renormalizing the rotation.
func (c *RawClip) SampleBonePose(boneIndex int, t float64) vecmath.Transform {
	tr := c.Tracks[boneIndex]
	f0, f1, alpha := c.keyframes(t)

	rot := tr.Rotation.Samples[f0].Lerp(tr.Rotation.Samples[f1], alpha)
	trans := tr.Translation.Samples[f0].Lerp(tr.Translation.Samples[f1], alpha)

	return vecmath.Transform{Rotation: rot, Translation: trans}
}

// SamplePose samples every bone's local transform at time t.
func (c *RawClip) SamplePose(t float64) []vecmath.Transform {
	out := make([]vecmath.Transform, len(c.Tracks))
	for i := range c.Tracks {
		out[i] = c.SampleBonePose(i, t)
	}

	return out
}
