// Package animclip provides a skeletal animation clip compression codec:
// it takes a time-sampled clip (per-bone rotation and translation
// tracks) and produces a compact, self-describing binary container that
// a runtime decoder can sample at arbitrary times to reconstruct poses
// within a bounded error budget.
//
// # Core features
//
//   - Constant and default (bind-pose) track detection, so a clip with
//     unanimated bones stores nothing for them
//   - Per-clip min/extent range reduction ahead of fixed-point quantization
//   - Four rotation storage formats (Quat128/96/48/32) and three
//     translation storage formats (Vec96/48/32), selectable independently
//   - Random-access decoding: any bone at any time, without decoding the
//     whole clip
//   - An object-space error metric for choosing a configuration under a
//     bit-budget/error tradeoff
//
// # Basic usage
//
//	container, err := animclip.Compress(rawClip,
//	    writer.WithRotationFormat(format.Quat48),
//	    writer.WithRangeReduction(format.RangeRotation))
//	if err != nil {
//	    return err
//	}
//
//	dec, err := animclip.NewDecoder(container, rawClip.Skeleton)
//	if err != nil {
//	    return err
//	}
//	pose, err := dec.DecodePose(1.25)
package animclip

import (
	"github.com/skelcodec/animclip/clip"
	"github.com/skelcodec/animclip/decoder"
	"github.com/skelcodec/animclip/writer"
)

// Compress builds a self-describing compressed container for raw. It is
// a thin re-export of writer.Compress for callers that only need the
// top-level entry point.
func Compress(raw *clip.RawClip, opts ...writer.Option) ([]byte, error) {
	return writer.Compress(raw, opts...)
}

// NewDecoder parses and validates data as a compressed clip container,
// ready for random-access sampling. It is a thin re-export of
// decoder.NewDecoder.
func NewDecoder(data []byte, skeleton *clip.Skeleton) (*decoder.Decoder, error) {
	return decoder.NewDecoder(data, skeleton)
}
