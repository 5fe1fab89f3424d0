package driver

import (
	"sort"

	"github.com/skelcodec/animclip/clip"
	"github.com/skelcodec/animclip/decoder"
	"github.com/skelcodec/animclip/errmetric"
	"github.com/skelcodec/animclip/writer"
)

// Record is one configuration's compression outcome.
type Record struct {
	Combination Combination
	SizeBytes   int
	MaxError    float64
	WorstBone   int
}

// Run compresses raw under every valid configuration in Matrix, decodes
// each result back, measures its error against raw, and returns one
// Record per configuration sorted by ascending container size.
func Run(raw *clip.RawClip) ([]Record, error) {
	records := make([]Record, 0, len(Matrix()))

	for _, combo := range Matrix() {
		out, err := writer.Compress(raw,
			writer.WithRotationFormat(combo.Rotation),
			writer.WithTranslationFormat(combo.Translation),
			writer.WithRangeReduction(combo.Range),
		)
		if err != nil {
			return nil, err
		}

		dec, err := decoder.NewDecoder(out, raw.Skeleton)
		if err != nil {
			return nil, err
		}

		clipErr, err := errmetric.Measure(raw, errmetric.FromF32(dec.DecodePose))
		if err != nil {
			return nil, err
		}

		records = append(records, Record{
			Combination: combo,
			SizeBytes:   len(out),
			MaxError:    clipErr.Max,
			WorstBone:   clipErr.WorstBone,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].SizeBytes < records[j].SizeBytes })

	return records, nil
}
