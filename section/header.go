package section

import (
	"github.com/skelcodec/animclip/endian"
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/format"
)

// AlgorithmHeader is the uniformly-sampled algorithm's fixed-size header,
// immediately following the Preamble. Every offset is a byte offset
// relative to the start of this header; AbsentOffset marks a section
// that was not written because no track needed it.
type AlgorithmHeader struct {
	NumBones                     uint16
	NumSamples                   uint32
	SampleRate                   uint32
	RotationFormat               format.RotationFormat
	TranslationFormat            format.TranslationFormat
	RangeReductionFlags          format.RangeReductionFlags
	NumAnimatedRotationTracks    uint32
	NumAnimatedTranslationTracks uint32
	DefaultTracksBitsetOffset    uint32
	ConstantTracksBitsetOffset   uint32
	ConstantTrackDataOffset      uint32
	ClipRangeDataOffset          uint32
	AnimatedTrackDataOffset      uint32
}

// Bytes serializes h into an AlgorithmHeaderSize-byte slice.
func (h *AlgorithmHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, AlgorithmHeaderSize)

	engine.PutUint16(b[0:2], h.NumBones)
	// bytes 2-3 reserved
	engine.PutUint32(b[4:8], h.NumSamples)
	engine.PutUint32(b[8:12], h.SampleRate)
	b[12] = byte(h.RotationFormat)
	b[13] = byte(h.TranslationFormat)
	b[14] = byte(h.RangeReductionFlags)
	// byte 15 reserved
	engine.PutUint32(b[16:20], h.NumAnimatedRotationTracks)
	engine.PutUint32(b[20:24], h.NumAnimatedTranslationTracks)
	engine.PutUint32(b[24:28], h.DefaultTracksBitsetOffset)
	engine.PutUint32(b[28:32], h.ConstantTracksBitsetOffset)
	engine.PutUint32(b[32:36], h.ConstantTrackDataOffset)
	engine.PutUint32(b[36:40], h.ClipRangeDataOffset)
	engine.PutUint32(b[40:44], h.AnimatedTrackDataOffset)

	return b
}

// ParseAlgorithmHeader parses an AlgorithmHeader from the first
// AlgorithmHeaderSize bytes of data and validates the format fields.
func ParseAlgorithmHeader(data []byte) (AlgorithmHeader, error) {
	if len(data) < AlgorithmHeaderSize {
		return AlgorithmHeader{}, errs.Newf(errs.KindCorruptArtifact, "algorithm header: need %d bytes, got %d", AlgorithmHeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	h := AlgorithmHeader{
		NumBones:                     engine.Uint16(data[0:2]),
		NumSamples:                   engine.Uint32(data[4:8]),
		SampleRate:                   engine.Uint32(data[8:12]),
		RotationFormat:               format.RotationFormat(data[12]),
		TranslationFormat:            format.TranslationFormat(data[13]),
		RangeReductionFlags:          format.RangeReductionFlags(data[14]),
		NumAnimatedRotationTracks:    engine.Uint32(data[16:20]),
		NumAnimatedTranslationTracks: engine.Uint32(data[20:24]),
		DefaultTracksBitsetOffset:    engine.Uint32(data[24:28]),
		ConstantTracksBitsetOffset:   engine.Uint32(data[28:32]),
		ConstantTrackDataOffset:      engine.Uint32(data[32:36]),
		ClipRangeDataOffset:          engine.Uint32(data[36:40]),
		AnimatedTrackDataOffset:      engine.Uint32(data[40:44]),
	}

	if err := format.ValidateConfig(h.RotationFormat, h.TranslationFormat, h.RangeReductionFlags); err != nil {
		return AlgorithmHeader{}, errs.Wrap(errs.KindCorruptArtifact, err, "algorithm header")
	}
	if h.NumBones == 0 {
		return AlgorithmHeader{}, errs.New(errs.KindCorruptArtifact, "algorithm header: zero bones")
	}
	if h.NumSamples == 0 || h.SampleRate == 0 {
		return AlgorithmHeader{}, errs.New(errs.KindCorruptArtifact, "algorithm header: zero samples or sample rate")
	}

	return h, nil
}

// HasDefaultBitset reports whether a default-tracks bitset section is present.
func (h *AlgorithmHeader) HasDefaultBitset() bool { return h.DefaultTracksBitsetOffset != AbsentOffset }

// HasConstantBitset reports whether a constant-tracks bitset section is present.
func (h *AlgorithmHeader) HasConstantBitset() bool {
	return h.ConstantTracksBitsetOffset != AbsentOffset
}

// HasConstantTrackData reports whether a constant track data section is present.
func (h *AlgorithmHeader) HasConstantTrackData() bool {
	return h.ConstantTrackDataOffset != AbsentOffset
}

// HasClipRangeData reports whether a range data section is present.
func (h *AlgorithmHeader) HasClipRangeData() bool { return h.ClipRangeDataOffset != AbsentOffset }

// HasAnimatedTrackData reports whether an animated track data section is present.
func (h *AlgorithmHeader) HasAnimatedTrackData() bool {
	return h.AnimatedTrackDataOffset != AbsentOffset
}
