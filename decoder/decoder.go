package decoder

import (
	"github.com/skelcodec/animclip/clip"
	"github.com/skelcodec/animclip/compress"
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/internal/hash"
	"github.com/skelcodec/animclip/section"
)

// Decoder holds a parsed, validated container ready for random-access
// sampling. It is safe for concurrent use by multiple goroutines: every
// decode call is read-only over the fields set at construction.
type Decoder struct {
	skeleton *clip.Skeleton

	header  section.AlgorithmHeader
	dflt    *section.TrackBitset
	cnst    *section.TrackBitset
	payload []byte

	numConstRot   int
	numConstTrans int
}

// NewDecoder parses and validates data as a compressed clip container.
// skeleton, if non-nil, is checked for a matching bone count and is used
// by DecodeBone/DecodePose to supply bind poses for default tracks; it is
// otherwise never mutated.
func NewDecoder(data []byte, skeleton *clip.Skeleton) (*Decoder, error) {
	pre, err := section.ParsePreamble(data)
	if err != nil {
		return nil, err
	}
	if int(pre.Size) != len(data) {
		return nil, errs.Newf(errs.KindCorruptArtifact, "container size %d in preamble, got %d bytes", pre.Size, len(data))
	}

	rest := data[section.PreambleSize:]
	if hash.Hash32(rest) != pre.Hash {
		return nil, errs.New(errs.KindCorruptArtifact, "container integrity hash mismatch")
	}

	codec, err := compress.GetCodec(pre.CompressionType)
	if err != nil {
		return nil, errs.Wrap(errs.KindCorruptArtifact, err, "container envelope")
	}
	payload := rest
	if pre.CompressionType != 0 {
		payload, err = codec.Decompress(rest)
		if err != nil {
			return nil, errs.Wrap(errs.KindCorruptArtifact, err, "decompress container envelope")
		}
	}

	header, err := section.ParseAlgorithmHeader(payload)
	if err != nil {
		return nil, err
	}
	if skeleton != nil && int(header.NumBones) != skeleton.BoneCount() {
		return nil, errs.Newf(errs.KindInvalidInput, "container has %d bones, skeleton has %d", header.NumBones, skeleton.BoneCount())
	}

	numBones := int(header.NumBones)
	if !header.HasDefaultBitset() || !header.HasConstantBitset() {
		return nil, errs.New(errs.KindCorruptArtifact, "container is missing a required bitset section")
	}

	dflt, err := section.ParseTrackBitset(payload[header.DefaultTracksBitsetOffset:], numBones)
	if err != nil {
		return nil, errs.Wrap(errs.KindCorruptArtifact, err, "default tracks bitset")
	}
	cnst, err := section.ParseTrackBitset(payload[header.ConstantTracksBitsetOffset:], numBones)
	if err != nil {
		return nil, errs.Wrap(errs.KindCorruptArtifact, err, "constant tracks bitset")
	}

	d := &Decoder{
		skeleton:      skeleton,
		header:        header,
		dflt:          dflt,
		cnst:          cnst,
		payload:       payload,
		numConstRot:   rankConstant(dflt, cnst, numBones, false),
		numConstTrans: rankConstant(dflt, cnst, numBones, true),
	}

	return d, nil
}

// NumBones returns the container's bone count.
func (d *Decoder) NumBones() int { return int(d.header.NumBones) }

// NumSamples returns the container's original sample count.
func (d *Decoder) NumSamples() int { return int(d.header.NumSamples) }

// SampleRate returns the container's sample rate in samples per second.
func (d *Decoder) SampleRate() int { return int(d.header.SampleRate) }

// Duration returns the clip's length in seconds, matching the writer's
// (numSamples-1)/sampleRate convention.
func (d *Decoder) Duration() float64 {
	n := d.NumSamples()
	if n <= 1 {
		return 0
	}
	return float64(n-1) / float64(d.SampleRate())
}

// rankConstant counts bones with index < upTo whose bit is set in cnst but
// not in dflt (translation selects which bit). Passing upTo == numBones
// gives the total count, used to locate the translation-constant array's
// base offset after the rotation-constant entries.
func rankConstant(dflt, cnst *section.TrackBitset, upTo int, translation bool) int {
	n := 0
	for i := 0; i < upTo; i++ {
		var isConst, isDefault bool
		if translation {
			isConst, isDefault = cnst.IsTranslationSet(i), dflt.IsTranslationSet(i)
		} else {
			isConst, isDefault = cnst.IsRotationSet(i), dflt.IsRotationSet(i)
		}
		if isConst && !isDefault {
			n++
		}
	}
	return n
}

// rankAnimated returns the position of bone within the sample-major
// animated track array: the count of bones before it that are neither
// default nor constant, equivalently bone minus the count of bones before
// it with the constant bit set (constant already implies default-or-not
// via the writer's "default tracks are also constant" convention).
func rankAnimated(cnst *section.TrackBitset, bone int, translation bool) int {
	if translation {
		return bone - cnst.CountTranslationBefore(bone)
	}
	return bone - cnst.CountRotationBefore(bone)
}
