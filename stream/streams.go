package stream

import (
	"github.com/skelcodec/animclip/clip"
	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/internal/pool"
)

// BuildBoneStreams constructs one BoneStream per bone in raw, copying its
// rotation and translation samples into pooled slices. The returned
// release function must be called once the writer has finished consuming
// the streams, returning every pooled slice to its arena in one pass.
func BuildBoneStreams(raw *clip.RawClip, rotFmt format.RotationFormat, transFmt format.TranslationFormat) (streams []*BoneStream, release func()) {
	n := raw.SampleCount()
	streams = make([]*BoneStream, len(raw.Tracks))
	var releases []func()

	for i, tr := range raw.Tracks {
		rotSlice, rotRelease := pool.GetQuatSlice(n)
		copy(rotSlice, tr.Rotation.Samples)

		transSlice, transRelease := pool.GetVec3Slice(n)
		copy(transSlice, tr.Translation.Samples)

		releases = append(releases, rotRelease, transRelease)

		streams[i] = &BoneStream{
			RotFormat:      rotFmt,
			TransFormat:    transFmt,
			RotSamplesFull: rotSlice,
			TransSamples:   transSlice,
		}
	}

	release = func() {
		for _, r := range releases {
			r()
		}
	}

	return streams, release
}
