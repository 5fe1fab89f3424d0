// Package section defines the low-level binary structures and constants
// for the compressed clip container format.
//
// This package provides the foundational types that define the physical
// layout of a container: a fixed preamble, a fixed algorithm header,
// packed per-bone bitsets, and fixed-size range entries. It handles
// binary serialization/deserialization of each, ensuring consistent
// byte-level representation across platforms.
//
// # Overview
//
// The section package defines three categories of types:
//
//  1. Fixed headers: Preamble, AlgorithmHeader
//  2. Packed bitfields: TrackBitset (2 bits per bone)
//  3. Fixed records: RangeEntry (per-track min/extent)
//
// These types form the structural foundation of the container format,
// providing:
//   - Fixed-size layouts for O(1) random access
//   - Efficient binary serialization with minimal overhead
//   - Platform-independent byte representation
//   - Bitfield packing for compact bone-flag storage
//
// # Container Structure
//
// A container consists of fixed-size sections followed by variable-size
// payloads:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Preamble (16 bytes, fixed)                              │
//	│  - Size, Hash, Version, AlgorithmTag, CompressionType    │
//	├─────────────────────────────────────────────────────────┤
//	│ AlgorithmHeader (44 bytes, fixed)                        │
//	│  - Bone/sample counts, formats, section offsets          │
//	├─────────────────────────────────────────────────────────┤
//	│ Default tracks bitset (2 bits/bone, packed into u32)    │
//	├─────────────────────────────────────────────────────────┤
//	│ Constant tracks bitset (same shape)                      │
//	├─────────────────────────────────────────────────────────┤
//	│ Padding (0-3 bytes, for 4-byte alignment)               │
//	├─────────────────────────────────────────────────────────┤
//	│ Constant track data (variable, one retained sample each) │
//	├─────────────────────────────────────────────────────────┤
//	│ Padding (0-3 bytes, for 4-byte alignment)               │
//	├─────────────────────────────────────────────────────────┤
//	│ Range data (variable, RangeEntrySize per track)          │
//	├─────────────────────────────────────────────────────────┤
//	│ Padding (0-3 bytes, for 4-byte alignment)               │
//	├─────────────────────────────────────────────────────────┤
//	│ Animated track data (variable, sample-major)             │
//	└─────────────────────────────────────────────────────────┘
//
// # Preamble Format
//
// Preamble (16 bytes):
//
//	Bytes  | Field            | Type   | Description
//	-------|------------------|--------|----------------------------------
//	0-3    | Size             | uint32 | Total container size in bytes
//	4-7    | Hash             | uint32 | xxHash-derived integrity hash
//	8-9    | Version          | uint16 | Container format version
//	10     | AlgorithmTag     | uint8  | Algorithm dispatch tag
//	11     | CompressionType  | uint8  | Outer envelope codec, if any
//	12-15  | Reserved         |        | Kept zero
//
// # AlgorithmHeader Format
//
// AlgorithmHeader (44 bytes), offsets relative to its own start:
//
//	Bytes  | Field                        | Type   | Description
//	-------|------------------------------|--------|---------------------------
//	0-1    | NumBones                     | uint16 |
//	4-7    | NumSamples                   | uint32 |
//	8-11   | SampleRate                   | uint32 |
//	12     | RotationFormat               | uint8  |
//	13     | TranslationFormat            | uint8  |
//	14     | RangeReductionFlags          | uint8  |
//	16-19  | NumAnimatedRotationTracks    | uint32 |
//	20-23  | NumAnimatedTranslationTracks | uint32 |
//	24-27  | DefaultTracksBitsetOffset    | uint32 | AbsentOffset if none
//	28-31  | ConstantTracksBitsetOffset   | uint32 | AbsentOffset if none
//	32-35  | ConstantTrackDataOffset      | uint32 | AbsentOffset if none
//	36-39  | ClipRangeDataOffset          | uint32 | AbsentOffset if none
//	40-43  | AnimatedTrackDataOffset      | uint32 | AbsentOffset if none
//
// # Track Bitsets
//
// Each bone contributes two bits (rotation, translation), packed
// low-bit-first into little-endian u32 words:
//
//	bit index = bone*2 (rotation), bone*2+1 (translation)
//	word = bit / 32, shift = bit % 32
//
// The default-tracks bitset marks tracks equal to the bind pose within
// tolerance; the constant-tracks bitset marks tracks equal to their own
// first sample (default tracks are also constant).
//
// # Range Entries
//
// RangeEntry (24 bytes): 3×f32 Min followed by 3×f32 Extent, per
// non-constant, non-default track subject to range reduction. Rotation
// entries precede translation entries; within each block, entries are
// bone-major.
//
// # Byte Order (Endianness)
//
// Every multi-byte value in this package is little-endian, via
// endian.GetLittleEndianEngine(). The container format does not support
// big-endian encoding; EndianEngine is used as a thin abstraction over
// encoding/binary, not as a configurable choice here.
//
// # Alignment
//
// AlignUp and PadTo implement the container's alignment discipline: the
// preamble and header are unpadded fixed sizes, while the bitset,
// constant-data, range-data, and animated-data sections are each padded
// to DataAlignment (4 bytes) before the next section begins.
//
// # Thread Safety
//
// Preamble, AlgorithmHeader, and RangeEntry are immutable value types
// and safe for concurrent use once constructed. TrackBitset is a mutable
// builder used only during writing; readers should treat a parsed
// TrackBitset as read-only.
package section
