package writer

import (
	"math"

	"github.com/skelcodec/animclip/compress"
	"github.com/skelcodec/animclip/endian"
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/internal/hash"
	"github.com/skelcodec/animclip/kernel"
	"github.com/skelcodec/animclip/section"
	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
)

func getEnvelopeCodec(c format.CompressionType) (compress.Codec, error) {
	return compress.GetCodec(c)
}

func buildBoneBitsets(streams []*stream.BoneStream) (defaultBitset, constantBitset *section.TrackBitset) {
	numBones := len(streams)
	defaultBitset = section.NewTrackBitset(numBones)
	constantBitset = section.NewTrackBitset(numBones)
	for i, s := range streams {
		defaultBitset.SetRotation(i, s.IsRotationDefault)
		defaultBitset.SetTranslation(i, s.IsTranslationDefault)
		constantBitset.SetRotation(i, s.IsRotationDefault || s.IsRotationConstant)
		constantBitset.SetTranslation(i, s.IsTranslationDefault || s.IsTranslationConstant)
	}

	return defaultBitset, constantBitset
}

func runKernel(streams []*stream.BoneStream, bindPoses []vecmath.Transform, cfg Config) {
	for i, s := range streams {
		kernel.ConvertRotations(s)
		kernel.Detect(s, bindPoses[i], cfg.tolerance)
		kernel.ReduceRange(s, cfg.rangeFlags)
	}
}

func buildSections(streams []*stream.BoneStream, numSamples, sampleRate int, cfg Config) ([]byte, error) {
	defaultBitset, constantBitset := buildBoneBitsets(streams)
	constantData := buildConstantData(streams, defaultBitset, constantBitset)
	rangeData, numAnimRot, numAnimTrans := buildRangeData(streams, cfg.rangeFlags)
	animatedData := buildAnimatedData(streams, cfg.rotFormat, cfg.transFormat, numAnimRot, numAnimTrans)

	return assembleContainer(len(streams), numSamples, sampleRate, cfg, defaultBitset, constantBitset,
		constantData, rangeData, animatedData, uint32(numAnimRot), uint32(numAnimTrans))
}

func vec3ToF32(v vecmath.Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func writeF32(engine endian.EndianEngine, buf []byte, v float32) {
	engine.PutUint32(buf, math.Float32bits(v))
}

func buildConstantData(streams []*stream.BoneStream, defaultBitset, constantBitset *section.TrackBitset) []byte {
	engine := endian.GetLittleEndianEngine()
	var data []byte

	appendVec3 := func(v vecmath.Vec3) {
		b := make([]byte, 12)
		f := vec3ToF32(v)
		writeF32(engine, b[0:4], f[0])
		writeF32(engine, b[4:8], f[1])
		writeF32(engine, b[8:12], f[2])
		data = append(data, b...)
	}

	for i, s := range streams {
		if constantBitset.IsRotationSet(i) && !defaultBitset.IsRotationSet(i) {
			appendVec3(s.ConstantRotation)
		}
	}
	for i, s := range streams {
		if constantBitset.IsTranslationSet(i) && !defaultBitset.IsTranslationSet(i) {
			appendVec3(s.ConstantTranslation)
		}
	}

	return data
}

func buildRangeData(streams []*stream.BoneStream, flags format.RangeReductionFlags) (data []byte, numAnimRot, numAnimTrans int) {
	for _, s := range streams {
		if !s.NeedsAnimatedRotation() {
			continue
		}
		numAnimRot++
		if flags.HasRotation() {
			e := section.RangeEntry{Min: vec3ToF32(s.RotationRange.Min), Extent: vec3ToF32(s.RotationRange.Extent)}
			data = append(data, e.Bytes()...)
		}
	}
	for _, s := range streams {
		if !s.NeedsAnimatedTranslation() {
			continue
		}
		numAnimTrans++
		if flags.HasTranslation() {
			e := section.RangeEntry{Min: vec3ToF32(s.TranslationRange.Min), Extent: vec3ToF32(s.TranslationRange.Extent)}
			data = append(data, e.Bytes()...)
		}
	}

	return data, numAnimRot, numAnimTrans
}

// buildAnimatedData writes the sample-major animated track data section:
// for every sample index, every animated-rotation bone's sample (in bone
// order) followed by every animated-translation bone's sample.
func buildAnimatedData(streams []*stream.BoneStream, rotFmt format.RotationFormat, transFmt format.TranslationFormat, numAnimRot, numAnimTrans int) []byte {
	if len(streams) == 0 {
		return nil
	}

	n := streams[0].SampleCount()
	engine := endian.GetLittleEndianEngine()
	rotSize := rotFmt.PackedSize()
	transSize := transFmt.PackedSize()
	stride := numAnimRot*rotSize + numAnimTrans*transSize
	data := make([]byte, n*stride)

	for sampleIdx := 0; sampleIdx < n; sampleIdx++ {
		off := sampleIdx * stride
		for _, s := range streams {
			if !s.NeedsAnimatedRotation() {
				continue
			}
			encodeRotationSample(engine, data[off:off+rotSize], rotFmt, s, sampleIdx)
			off += rotSize
		}
		for _, s := range streams {
			if !s.NeedsAnimatedTranslation() {
				continue
			}
			encodeTranslationSample(engine, data[off:off+transSize], s.TransSamples[sampleIdx])
			off += transSize
		}
	}

	return data
}

func encodeRotationSample(engine endian.EndianEngine, dst []byte, rotFmt format.RotationFormat, s *stream.BoneStream, sampleIdx int) {
	if rotFmt == format.Quat128 {
		q := s.RotSamplesFull[sampleIdx]
		writeF32(engine, dst[0:4], float32(q.X))
		writeF32(engine, dst[4:8], float32(q.Y))
		writeF32(engine, dst[8:12], float32(q.Z))
		writeF32(engine, dst[12:16], float32(q.W))
		return
	}

	v := s.RotSamplesXYZ[sampleIdx]
	switch rotFmt {
	case format.Quat96:
		writeF32(engine, dst[0:4], float32(v.X))
		writeF32(engine, dst[4:8], float32(v.Y))
		writeF32(engine, dst[8:12], float32(v.Z))
	case format.Quat48:
		x, y, z := kernel.QuantizeVec3To16(v)
		engine.PutUint16(dst[0:2], x)
		engine.PutUint16(dst[2:4], y)
		engine.PutUint16(dst[4:6], z)
	case format.Quat32:
		engine.PutUint32(dst[0:4], kernel.QuantizeVec3To32(v))
	}
}

func encodeTranslationSample(engine endian.EndianEngine, dst []byte, v vecmath.Vec3) {
	switch len(dst) {
	case 12:
		writeF32(engine, dst[0:4], float32(v.X))
		writeF32(engine, dst[4:8], float32(v.Y))
		writeF32(engine, dst[8:12], float32(v.Z))
	case 6:
		x, y, z := kernel.QuantizeVec3To16(v)
		engine.PutUint16(dst[0:2], x)
		engine.PutUint16(dst[2:4], y)
		engine.PutUint16(dst[4:6], z)
	case 4:
		engine.PutUint32(dst[0:4], kernel.QuantizeVec3To32(v))
	}
}

func assembleContainer(numBones, numSamples, sampleRate int, cfg Config, defaultBitset, constantBitset *section.TrackBitset,
	constantData, rangeData, animatedData []byte, numAnimRot, numAnimTrans uint32) ([]byte, error) {

	header := section.AlgorithmHeader{
		NumBones:                     uint16(numBones),
		NumSamples:                   uint32(numSamples),
		SampleRate:                   uint32(sampleRate),
		RotationFormat:               cfg.rotFormat,
		TranslationFormat:            cfg.transFormat,
		RangeReductionFlags:          cfg.rangeFlags,
		NumAnimatedRotationTracks:    numAnimRot,
		NumAnimatedTranslationTracks: numAnimTrans,
	}

	offset := section.AlgorithmHeaderSize

	defaultBytes := defaultBitset.Bytes()
	constantBytes := constantBitset.Bytes()

	header.DefaultTracksBitsetOffset = uint32(offset)
	offset += len(defaultBytes)
	header.ConstantTracksBitsetOffset = uint32(offset)
	offset += len(constantBytes)
	offset = section.AlignUp(offset, section.DataAlignment)

	if len(constantData) == 0 {
		header.ConstantTrackDataOffset = section.AbsentOffset
	} else {
		header.ConstantTrackDataOffset = uint32(offset)
		offset += len(constantData)
		offset = section.AlignUp(offset, section.DataAlignment)
	}

	if len(rangeData) == 0 {
		header.ClipRangeDataOffset = section.AbsentOffset
	} else {
		header.ClipRangeDataOffset = uint32(offset)
		offset += len(rangeData)
		offset = section.AlignUp(offset, section.DataAlignment)
	}

	if len(animatedData) == 0 {
		header.AnimatedTrackDataOffset = section.AbsentOffset
	} else {
		header.AnimatedTrackDataOffset = uint32(offset)
		offset += len(animatedData)
	}

	headerTail := make([]byte, 0, offset)
	headerTail = append(headerTail, header.Bytes()...)
	headerTail = append(headerTail, defaultBytes...)
	headerTail = append(headerTail, constantBytes...)
	headerTail = section.PadTo(headerTail, section.DataAlignment)
	headerTail = append(headerTail, constantData...)
	headerTail = section.PadTo(headerTail, section.DataAlignment)
	headerTail = append(headerTail, rangeData...)
	headerTail = section.PadTo(headerTail, section.DataAlignment)
	headerTail = append(headerTail, animatedData...)

	payload := headerTail
	compressor, err := getEnvelopeCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	if cfg.compression != format.CompressionNone {
		payload, err = compressor.Compress(headerTail)
		if err != nil {
			return nil, errs.Wrap(errs.KindAllocationFailure, err, "compress container envelope")
		}
	}

	totalSize := section.PreambleSize + len(payload)
	buf, err := cfg.allocator.Allocate(totalSize, section.SectionAlignment)
	if err != nil {
		return nil, errs.Wrap(errs.KindAllocationFailure, err, "allocate container buffer")
	}
	if len(buf) < totalSize {
		return nil, errs.Newf(errs.KindAllocationFailure, "allocate container buffer: got %d bytes, need %d", len(buf), totalSize)
	}

	copy(buf[section.PreambleSize:], payload)

	preamble := section.Preamble{
		Size:            uint32(totalSize),
		Version:         section.ContainerVersion,
		AlgorithmTag:    format.AlgorithmUniformlySampled,
		CompressionType: cfg.compression,
	}
	preamble.Hash = hash.Hash32(buf[section.PreambleSize:])
	copy(buf[:section.PreambleSize], preamble.Bytes())

	out := make([]byte, totalSize)
	copy(out, buf)
	cfg.allocator.Release(buf)

	return out, nil
}
