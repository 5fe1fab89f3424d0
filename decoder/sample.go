package decoder

import (
	"math"

	"github.com/skelcodec/animclip/endian"
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/kernel"
	"github.com/skelcodec/animclip/section"
	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
)

// DecodeBone reconstructs bone's local transform at time t (seconds),
// linearly interpolating the two bracketing samples and renormalizing the
// rotation, mirroring clip.RawClip.SampleBonePose's pre-compression
// semantics.
func (d *Decoder) DecodeBone(bone int, t float64) (vecmath.TransformF32, error) {
	if bone < 0 || bone >= d.NumBones() {
		return vecmath.TransformF32{}, errs.Newf(errs.KindInvalidInput, "bone index %d out of range [0,%d)", bone, d.NumBones())
	}

	frame0, frame1, alpha := Keyframes(d.NumSamples(), d.SampleRate(), t)

	q0, err := d.rotationAtFrame(bone, frame0)
	if err != nil {
		return vecmath.TransformF32{}, err
	}
	q1, err := d.rotationAtFrame(bone, frame1)
	if err != nil {
		return vecmath.TransformF32{}, err
	}

	v0, err := d.translationAtFrame(bone, frame0)
	if err != nil {
		return vecmath.TransformF32{}, err
	}
	v1, err := d.translationAtFrame(bone, frame1)
	if err != nil {
		return vecmath.TransformF32{}, err
	}

	tr := vecmath.Transform{
		Rotation:    q0.Lerp(q1, alpha),
		Translation: v0.Lerp(v1, alpha),
	}

	return tr.ToF32(), nil
}

// DecodePose reconstructs every bone's local transform at time t.
func (d *Decoder) DecodePose(t float64) ([]vecmath.TransformF32, error) {
	out := make([]vecmath.TransformF32, d.NumBones())
	for i := range out {
		tf, err := d.DecodeBone(i, t)
		if err != nil {
			return nil, err
		}
		out[i] = tf
	}

	return out, nil
}

func (d *Decoder) bindRotation(bone int) vecmath.Quat {
	if d.skeleton != nil {
		return d.skeleton.Bones[bone].BindPose.Rotation
	}
	return vecmath.IdentityQuat()
}

func (d *Decoder) bindTranslation(bone int) vecmath.Vec3 {
	if d.skeleton != nil {
		return d.skeleton.Bones[bone].BindPose.Translation
	}
	return vecmath.Vec3{}
}

func (d *Decoder) animatedStride() int {
	return int(d.header.NumAnimatedRotationTracks)*d.header.RotationFormat.PackedSize() +
		int(d.header.NumAnimatedTranslationTracks)*d.header.TranslationFormat.PackedSize()
}

func read3f32(buf []byte, engine endian.EndianEngine) (x, y, z float64) {
	return float64(math.Float32frombits(engine.Uint32(buf[0:4]))),
		float64(math.Float32frombits(engine.Uint32(buf[4:8]))),
		float64(math.Float32frombits(engine.Uint32(buf[8:12])))
}

// rangeEntry parses the idx-th RangeEntry of the given track type from the
// clip range data section. Rotation entries precede translation entries.
func (d *Decoder) rangeEntry(idx int, translation bool) (stream.Range, error) {
	base := 0
	if translation && d.header.RangeReductionFlags.HasRotation() {
		base = int(d.header.NumAnimatedRotationTracks)
	}

	off := int(d.header.ClipRangeDataOffset) + (base+idx)*section.RangeEntrySize
	if off+section.RangeEntrySize > len(d.payload) {
		return stream.Range{}, errs.New(errs.KindCorruptArtifact, "range entry out of bounds")
	}

	e, err := section.ParseRangeEntry(d.payload[off:])
	if err != nil {
		return stream.Range{}, err
	}

	return stream.Range{
		Min:    vecmath.Vec3{X: float64(e.Min[0]), Y: float64(e.Min[1]), Z: float64(e.Min[2])},
		Extent: vecmath.Vec3{X: float64(e.Extent[0]), Y: float64(e.Extent[1]), Z: float64(e.Extent[2])},
	}, nil
}

func (d *Decoder) rotationAtFrame(bone, frame int) (vecmath.Quat, error) {
	if d.dflt.IsRotationSet(bone) {
		return d.bindRotation(bone), nil
	}

	engine := endian.GetLittleEndianEngine()

	if d.cnst.IsRotationSet(bone) {
		idx := rankConstant(d.dflt, d.cnst, bone, false)
		off := int(d.header.ConstantTrackDataOffset) + idx*12
		if off+12 > len(d.payload) {
			return vecmath.Quat{}, errs.New(errs.KindCorruptArtifact, "constant rotation data out of bounds")
		}
		x, y, z := read3f32(d.payload[off:off+12], engine)
		return vecmath.Quat{X: x, Y: y, Z: z, W: vecmath.ReconstructW(x, y, z)}, nil
	}

	rotFmt := d.header.RotationFormat
	idx := rankAnimated(d.cnst, bone, false)
	rotSize := rotFmt.PackedSize()
	off := int(d.header.AnimatedTrackDataOffset) + frame*d.animatedStride() + idx*rotSize
	if off+rotSize > len(d.payload) {
		return vecmath.Quat{}, errs.New(errs.KindCorruptArtifact, "animated rotation data out of bounds")
	}
	buf := d.payload[off : off+rotSize]

	if rotFmt == format.Quat128 {
		x, y, z := read3f32(buf, engine)
		w := float64(math.Float32frombits(engine.Uint32(buf[12:16])))
		return vecmath.Quat{X: x, Y: y, Z: z, W: w}, nil
	}

	var unit vecmath.Vec3
	switch rotFmt {
	case format.Quat96:
		x, y, z := read3f32(buf, engine)
		unit = vecmath.Vec3{X: x, Y: y, Z: z}
	case format.Quat48:
		unit = kernel.DequantizeVec3From16(engine.Uint16(buf[0:2]), engine.Uint16(buf[2:4]), engine.Uint16(buf[4:6]))
	case format.Quat32:
		unit = kernel.DequantizeVec3From32(engine.Uint32(buf[0:4]))
	}

	if d.header.RangeReductionFlags.HasRotation() {
		r, err := d.rangeEntry(idx, false)
		if err != nil {
			return vecmath.Quat{}, err
		}
		unit = kernel.InvertRange(unit, r)
	}

	return vecmath.Quat{X: unit.X, Y: unit.Y, Z: unit.Z, W: vecmath.ReconstructW(unit.X, unit.Y, unit.Z)}, nil
}

func (d *Decoder) translationAtFrame(bone, frame int) (vecmath.Vec3, error) {
	if d.dflt.IsTranslationSet(bone) {
		return d.bindTranslation(bone), nil
	}

	engine := endian.GetLittleEndianEngine()

	if d.cnst.IsTranslationSet(bone) {
		idx := d.numConstRot + rankConstant(d.dflt, d.cnst, bone, true)
		off := int(d.header.ConstantTrackDataOffset) + idx*12
		if off+12 > len(d.payload) {
			return vecmath.Vec3{}, errs.New(errs.KindCorruptArtifact, "constant translation data out of bounds")
		}
		x, y, z := read3f32(d.payload[off:off+12], engine)
		return vecmath.Vec3{X: x, Y: y, Z: z}, nil
	}

	transFmt := d.header.TranslationFormat
	idx := rankAnimated(d.cnst, bone, true)
	rotBlockSize := int(d.header.NumAnimatedRotationTracks) * d.header.RotationFormat.PackedSize()
	transSize := transFmt.PackedSize()
	off := int(d.header.AnimatedTrackDataOffset) + frame*d.animatedStride() + rotBlockSize + idx*transSize
	if off+transSize > len(d.payload) {
		return vecmath.Vec3{}, errs.New(errs.KindCorruptArtifact, "animated translation data out of bounds")
	}
	buf := d.payload[off : off+transSize]

	var unit vecmath.Vec3
	switch transFmt {
	case format.Vec96:
		x, y, z := read3f32(buf, engine)
		unit = vecmath.Vec3{X: x, Y: y, Z: z}
	case format.Vec48:
		unit = kernel.DequantizeVec3From16(engine.Uint16(buf[0:2]), engine.Uint16(buf[2:4]), engine.Uint16(buf[4:6]))
	case format.Vec32:
		unit = kernel.DequantizeVec3From32(engine.Uint32(buf[0:4]))
	}

	if d.header.RangeReductionFlags.HasTranslation() {
		r, err := d.rangeEntry(idx, true)
		if err != nil {
			return vecmath.Vec3{}, err
		}
		unit = kernel.InvertRange(unit, r)
	}

	return unit, nil
}
