package writer

import (
	"github.com/skelcodec/animclip/clip"
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/internal/options"
	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
)

// Compress builds a self-describing container byte slice for raw,
// according to the format, range-reduction, and envelope choices in opts.
func Compress(raw *clip.RawClip, opts ...Option) ([]byte, error) {
	if raw == nil {
		return nil, errs.New(errs.KindInvalidInput, "compress: nil raw clip")
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	streams, release := stream.BuildBoneStreams(raw, cfg.rotFormat, cfg.transFormat)
	defer release()

	bindPoses := make([]vecmath.Transform, len(streams))
	for i, b := range raw.Skeleton.Bones {
		bindPoses[i] = b.BindPose
	}
	runKernel(streams, bindPoses, cfg)

	return buildSections(streams, raw.SampleCount(), raw.SampleRate, cfg)
}
