package animclip_test

import (
	"testing"

	"github.com/skelcodec/animclip"
	"github.com/skelcodec/animclip/clip"
	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/vecmath"
	"github.com/skelcodec/animclip/writer"
	"github.com/stretchr/testify/require"
)

func TestCompressAndDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	skel := clip.NewSkeleton([]clip.Bone{
		{Name: "root", ParentIndex: clip.RootParent, BindPose: vecmath.IdentityTransform(), VertexDistance: 1},
	})

	n := 5
	rot := make([]vecmath.Quat, n)
	trans := make([]vecmath.Vec3, n)
	for i := 0; i < n; i++ {
		rot[i] = vecmath.QuatFromAxisAngle(vecmath.Vec3{Y: 1}, float64(i)*0.1)
		trans[i] = vecmath.Vec3{X: float64(i)}
	}

	raw := &clip.RawClip{
		Skeleton:   skel,
		SampleRate: 30,
		Tracks:     []clip.BoneTrack{{Rotation: clip.RotationTrack{Samples: rot}, Translation: clip.TranslationTrack{Samples: trans}}},
	}

	out, err := animclip.Compress(raw, writer.WithRangeReduction(format.RangeBoth))
	require.NoError(err)
	require.NotEmpty(out)

	dec, err := animclip.NewDecoder(out, skel)
	require.NoError(err)

	pose, err := dec.DecodeBone(0, 0.1)
	require.NoError(err)
	require.InDelta(1, float64(pose.Rotation.X*pose.Rotation.X+pose.Rotation.Y*pose.Rotation.Y+pose.Rotation.Z*pose.Rotation.Z+pose.Rotation.W*pose.Rotation.W), 1e-2)
}
