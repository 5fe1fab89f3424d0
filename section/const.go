package section

import "math"

const (
	// PreambleSize is the fixed byte size of the container preamble.
	PreambleSize = 16
	// AlgorithmHeaderSize is the fixed byte size of the uniformly-sampled
	// algorithm header that immediately follows the preamble.
	AlgorithmHeaderSize = 44
	// RangeEntrySize is the fixed byte size of one RangeEntry (min + extent, 3×f32 each).
	RangeEntrySize = 24

	// SectionAlignment is the byte alignment the writer requests from its
	// allocator for the buffer it assembles the container in. Sections
	// inside the container are padded to DataAlignment, not to this value.
	SectionAlignment = 16
	// DataAlignment is the byte alignment constant track data, range
	// data, and animated track data are each padded to.
	DataAlignment = 4
)

// AbsentOffset is the sentinel AlgorithmHeader offset value meaning "this
// section is not present in the buffer."
const AbsentOffset uint32 = math.MaxUint32

// ContainerVersion is the version this package's writer emits and its
// decoder accepts.
const ContainerVersion uint16 = 1
