package driver

import "github.com/skelcodec/animclip/format"

// Combination is one point in the codec's configuration space.
type Combination struct {
	Rotation    format.RotationFormat
	Translation format.TranslationFormat
	Range       format.RangeReductionFlags
}

var allRotationFormats = []format.RotationFormat{format.Quat128, format.Quat96, format.Quat48, format.Quat32}
var allTranslationFormats = []format.TranslationFormat{format.Vec96, format.Vec48, format.Vec32}
var allRangeFlags = []format.RangeReductionFlags{format.RangeNone, format.RangeRotation, format.RangeTranslation, format.RangeBoth}

// Matrix enumerates every (rotation, translation, range) combination that
// satisfies format.ValidateConfig, skipping combinations the codec cannot
// decode correctly (a quantized format without its required range flag,
// or Quat128 paired with rotation range reduction).
func Matrix() []Combination {
	var out []Combination
	for _, rot := range allRotationFormats {
		for _, trans := range allTranslationFormats {
			for _, flags := range allRangeFlags {
				if format.ValidateConfig(rot, trans, flags) != nil {
					continue
				}
				out = append(out, Combination{Rotation: rot, Translation: trans, Range: flags})
			}
		}
	}

	return out
}

func (c Combination) String() string {
	return c.Rotation.String() + "/" + c.Translation.String() + "/" + c.Range.String()
}
