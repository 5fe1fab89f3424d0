// Package format defines the small value types shared across the codec: the
// rotation and translation storage formats, the per-clip range-reduction
// flags, the container's algorithm tag, and the optional envelope
// compression type.
package format

import "github.com/skelcodec/animclip/errs"

type (
	// RotationFormat selects how a bone's rotation samples are stored on disk.
	RotationFormat uint8
	// TranslationFormat selects how a bone's translation samples are stored on disk.
	TranslationFormat uint8
	// RangeReductionFlags selects which track types (rotation, translation) use
	// per-clip min/extent range reduction before quantization.
	RangeReductionFlags uint8
	// AlgorithmTag identifies the compression algorithm used to build a container,
	// stored in the preamble so the decoder can dispatch without guessing.
	AlgorithmTag uint8
	// CompressionType selects the optional outer envelope codec wrapping the
	// container's header-tail region.
	CompressionType uint8
)

const (
	// Quat128 stores each rotation component (x, y, z, w) as f32, no quantization.
	// Incompatible with range reduction.
	Quat128 RotationFormat = iota
	// Quat96 drops w and stores x, y, z as f32.
	Quat96
	// Quat48 drops w and stores x, y, z as u16. Always range-reduced.
	Quat48
	// Quat32 drops w and packs x, y, z into a single u32 (11/11/10 bits). Always range-reduced.
	Quat32
)

const (
	// Vec96 stores x, y, z as f32, no quantization.
	Vec96 TranslationFormat = iota
	// Vec48 stores x, y, z as u16, requires range reduction.
	Vec48
	// Vec32 packs x, y, z into a single u32 (11/11/10 bits), requires range reduction.
	Vec32
)

const (
	// RangeNone applies no per-clip range reduction to any track type.
	RangeNone RangeReductionFlags = 0
	// RangeRotation enables range reduction for rotation tracks.
	RangeRotation RangeReductionFlags = 1 << 0
	// RangeTranslation enables range reduction for translation tracks.
	RangeTranslation RangeReductionFlags = 1 << 1
	// RangeBoth enables range reduction for both track types.
	RangeBoth = RangeRotation | RangeTranslation
)

const (
	// AlgorithmUniformlySampled is the only algorithm this container format currently defines.
	AlgorithmUniformlySampled AlgorithmTag = 0
)

const (
	// CompressionNone applies no envelope compression.
	CompressionNone CompressionType = iota
	// CompressionZstd wraps the payload with Zstandard.
	CompressionZstd
	// CompressionS2 wraps the payload with S2.
	CompressionS2
	// CompressionLZ4 wraps the payload with LZ4.
	CompressionLZ4
)

func (f RotationFormat) String() string {
	switch f {
	case Quat128:
		return "Quat128"
	case Quat96:
		return "Quat96"
	case Quat48:
		return "Quat48"
	case Quat32:
		return "Quat32"
	default:
		return "Unknown"
	}
}

// DropsW reports whether this format omits the quaternion's w component,
// reconstructing it at decode time as sqrt(max(0, 1 - x² - y² - z²)).
func (f RotationFormat) DropsW() bool {
	return f != Quat128
}

// RequiresRangeReduction reports whether this format can only be decoded
// correctly when the matching range-reduction flag is set.
func (f RotationFormat) RequiresRangeReduction() bool {
	return f == Quat48 || f == Quat32
}

// PackedSize returns the number of bytes a single animated rotation sample
// occupies in the animated track data section.
func (f RotationFormat) PackedSize() int {
	switch f {
	case Quat128:
		return 16
	case Quat96:
		return 12
	case Quat48:
		return 6
	case Quat32:
		return 4
	default:
		return 0
	}
}

// IsValid reports whether f is one of the defined rotation formats.
func (f RotationFormat) IsValid() bool {
	return f <= Quat32
}

func (f TranslationFormat) String() string {
	switch f {
	case Vec96:
		return "Vec96"
	case Vec48:
		return "Vec48"
	case Vec32:
		return "Vec32"
	default:
		return "Unknown"
	}
}

// RequiresRangeReduction reports whether this format can only be decoded
// correctly when the matching range-reduction flag is set.
func (f TranslationFormat) RequiresRangeReduction() bool {
	return f == Vec48 || f == Vec32
}

// PackedSize returns the number of bytes a single animated translation
// sample occupies in the animated track data section.
func (f TranslationFormat) PackedSize() int {
	switch f {
	case Vec96:
		return 12
	case Vec48:
		return 6
	case Vec32:
		return 4
	default:
		return 0
	}
}

// IsValid reports whether f is one of the defined translation formats.
func (f TranslationFormat) IsValid() bool {
	return f <= Vec32
}

// HasRotation reports whether rotation tracks are range-reduced.
func (r RangeReductionFlags) HasRotation() bool {
	return r&RangeRotation != 0
}

// HasTranslation reports whether translation tracks are range-reduced.
func (r RangeReductionFlags) HasTranslation() bool {
	return r&RangeTranslation != 0
}

func (r RangeReductionFlags) String() string {
	switch {
	case r.HasRotation() && r.HasTranslation():
		return "Rotation+Translation"
	case r.HasRotation():
		return "Rotation"
	case r.HasTranslation():
		return "Translation"
	default:
		return "None"
	}
}

func (a AlgorithmTag) String() string {
	switch a {
	case AlgorithmUniformlySampled:
		return "UniformlySampled"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c <= CompressionLZ4
}

// ValidateConfig checks the rotation format, translation format, and range
// reduction flags for a configuration constraint: the 48-bit and 32-bit
// quantized formats only produce a decodable payload when the matching
// range-reduction flag is enabled.
func ValidateConfig(rot RotationFormat, trans TranslationFormat, flags RangeReductionFlags) error {
	if !rot.IsValid() {
		return errs.Newf(errs.KindInvalidConfiguration, "invalid rotation format: %d", rot)
	}
	if !trans.IsValid() {
		return errs.Newf(errs.KindInvalidConfiguration, "invalid translation format: %d", trans)
	}
	if rot.RequiresRangeReduction() && !flags.HasRotation() {
		return errs.Newf(errs.KindInvalidConfiguration, "rotation format %s requires range reduction", rot)
	}
	if trans.RequiresRangeReduction() && !flags.HasTranslation() {
		return errs.Newf(errs.KindInvalidConfiguration, "translation format %s requires range reduction", trans)
	}
	if rot == Quat128 && flags.HasRotation() {
		return errs.New(errs.KindInvalidConfiguration, "Quat128 is incompatible with rotation range reduction")
	}

	return nil
}
