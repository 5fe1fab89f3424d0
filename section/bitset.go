package section

import (
	"github.com/skelcodec/animclip/endian"
	"github.com/skelcodec/animclip/errs"
)

// TrackBitset packs two bits per bone (rotation, translation) into u32
// words, used for both the default-tracks and constant-tracks sections.
type TrackBitset struct {
	words    []uint32
	numBones int
}

// NewTrackBitset allocates a zeroed bitset for numBones bones.
func NewTrackBitset(numBones int) *TrackBitset {
	return &TrackBitset{
		words:    make([]uint32, wordCount(numBones)),
		numBones: numBones,
	}
}

func wordCount(numBones int) int {
	bits := numBones * 2
	return (bits + 31) / 32
}

func (t *TrackBitset) bitIndex(bone int, translation bool) int {
	idx := bone * 2
	if translation {
		idx++
	}

	return idx
}

// SetRotation sets or clears the rotation bit for bone.
func (t *TrackBitset) SetRotation(bone int, v bool) {
	t.setBit(t.bitIndex(bone, false), v)
}

// SetTranslation sets or clears the translation bit for bone.
func (t *TrackBitset) SetTranslation(bone int, v bool) {
	t.setBit(t.bitIndex(bone, true), v)
}

func (t *TrackBitset) setBit(bit int, v bool) {
	word, shift := bit/32, uint(bit%32)
	if v {
		t.words[word] |= 1 << shift
	} else {
		t.words[word] &^= 1 << shift
	}
}

// IsRotationSet reports whether the rotation bit for bone is set.
func (t *TrackBitset) IsRotationSet(bone int) bool {
	return t.getBit(t.bitIndex(bone, false))
}

// IsTranslationSet reports whether the translation bit for bone is set.
func (t *TrackBitset) IsTranslationSet(bone int) bool {
	return t.getBit(t.bitIndex(bone, true))
}

func (t *TrackBitset) getBit(bit int) bool {
	word, shift := bit/32, uint(bit%32)
	return t.words[word]&(1<<shift) != 0
}

// CountRotationBefore returns the number of bones with index < bone whose
// rotation bit is set, giving the decoder a bone's position within a
// packed array that only stores entries for set bits (constant track
// data, for instance).
func (t *TrackBitset) CountRotationBefore(bone int) int {
	n := 0
	for i := 0; i < bone; i++ {
		if t.IsRotationSet(i) {
			n++
		}
	}
	return n
}

// CountTranslationBefore is CountRotationBefore for the translation bit.
func (t *TrackBitset) CountTranslationBefore(bone int) int {
	n := 0
	for i := 0; i < bone; i++ {
		if t.IsTranslationSet(i) {
			n++
		}
	}
	return n
}

// ByteSize returns the number of bytes Bytes() produces for numBones bones.
func ByteSize(numBones int) int {
	return wordCount(numBones) * 4
}

// Bytes serializes the bitset as little-endian u32 words.
func (t *TrackBitset) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, len(t.words)*4)
	for i, w := range t.words {
		engine.PutUint32(b[i*4:i*4+4], w)
	}

	return b
}

// ParseTrackBitset parses a bitset for numBones bones from data.
func ParseTrackBitset(data []byte, numBones int) (*TrackBitset, error) {
	want := ByteSize(numBones)
	if len(data) < want {
		return nil, errs.Newf(errs.KindCorruptArtifact, "track bitset: need %d bytes, got %d", want, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	t := NewTrackBitset(numBones)
	for i := range t.words {
		t.words[i] = engine.Uint32(data[i*4 : i*4+4])
	}

	return t, nil
}
