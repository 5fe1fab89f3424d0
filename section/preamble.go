package section

import (
	"github.com/skelcodec/animclip/endian"
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/format"
)

// Preamble is the fixed-size section at the start of every compressed
// clip container: total buffer size, a 32-bit integrity hash over the
// payload region, a format version, and the algorithm tag that selects
// how the rest of the buffer is interpreted.
type Preamble struct {
	// Size is the total byte length of the container, including the
	// preamble itself.
	Size uint32 // byte offset 0-3
	// Hash is the xxHash-derived 32-bit integrity hash of the payload
	// region (everything after the preamble).
	Hash uint32 // byte offset 4-7
	// Version is the container format version.
	Version uint16 // byte offset 8-9
	// AlgorithmTag selects the algorithm header layout that follows.
	AlgorithmTag format.AlgorithmTag // byte offset 10
	// CompressionType is the optional outer envelope codec, if any,
	// applied to the header-tail region during writing.
	CompressionType format.CompressionType // byte offset 11
	// bytes 12-15 are reserved, kept zero.
}

// Bytes serializes the preamble into a PreambleSize-byte slice using the
// little-endian engine.
func (p *Preamble) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, PreambleSize)

	engine.PutUint32(b[0:4], p.Size)
	engine.PutUint32(b[4:8], p.Hash)
	engine.PutUint16(b[8:10], p.Version)
	b[10] = byte(p.AlgorithmTag)
	b[11] = byte(p.CompressionType)

	return b
}

// ParsePreamble parses a Preamble from the first PreambleSize bytes of data.
func ParsePreamble(data []byte) (Preamble, error) {
	if len(data) < PreambleSize {
		return Preamble{}, errs.Newf(errs.KindCorruptArtifact, "preamble: need %d bytes, got %d", PreambleSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	p := Preamble{
		Size:            engine.Uint32(data[0:4]),
		Hash:            engine.Uint32(data[4:8]),
		Version:         engine.Uint16(data[8:10]),
		AlgorithmTag:    format.AlgorithmTag(data[10]),
		CompressionType: format.CompressionType(data[11]),
	}

	if p.Version != ContainerVersion {
		return Preamble{}, errs.Newf(errs.KindCorruptArtifact, "unsupported container version %d", p.Version)
	}
	if p.AlgorithmTag != format.AlgorithmUniformlySampled {
		return Preamble{}, errs.Newf(errs.KindCorruptArtifact, "unknown algorithm tag %d", p.AlgorithmTag)
	}
	if !p.CompressionType.IsValid() {
		return Preamble{}, errs.Newf(errs.KindCorruptArtifact, "unknown compression type %d", p.CompressionType)
	}

	return p, nil
}
