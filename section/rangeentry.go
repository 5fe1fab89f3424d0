package section

import (
	"github.com/skelcodec/animclip/endian"
	"github.com/skelcodec/animclip/errs"
)

// RangeEntry records one track's per-clip min and extent, captured before
// quantization so the decoder can invert the [0,1] remap.
type RangeEntry struct {
	Min    [3]float32
	Extent [3]float32
}

// Bytes serializes e as 6 little-endian f32 values (min then extent).
func (e RangeEntry) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, RangeEntrySize)

	for i := 0; i < 3; i++ {
		engine.PutUint32(b[i*4:i*4+4], f32bits(e.Min[i]))
		engine.PutUint32(b[12+i*4:12+i*4+4], f32bits(e.Extent[i]))
	}

	return b
}

// ParseRangeEntry parses a RangeEntry from the first RangeEntrySize bytes of data.
func ParseRangeEntry(data []byte) (RangeEntry, error) {
	if len(data) < RangeEntrySize {
		return RangeEntry{}, errs.Newf(errs.KindCorruptArtifact, "range entry: need %d bytes, got %d", RangeEntrySize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	var e RangeEntry
	for i := 0; i < 3; i++ {
		e.Min[i] = f32frombits(engine.Uint32(data[i*4 : i*4+4]))
		e.Extent[i] = f32frombits(engine.Uint32(data[12+i*4 : 12+i*4+4]))
	}

	return e, nil
}
