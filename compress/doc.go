// Package compress provides the optional outer compression envelope wrapped
// around a compressed clip container's payload.
//
// A container's binary layout (bitsets, range table, quantized track data)
// is already a dense, bit-packed encoding on its own; this package adds a
// second, general-purpose compression pass on top of that encoding, the way
// a codec might gzip an already-packed binary blob before writing it to
// disk or sending it over a wire.
//
// # Supported algorithms
//
//   - None: no compression, fastest, largest output
//   - Zstd: best compression ratio, moderate speed, suited to archived clip libraries
//   - S2: balanced ratio and speed, suited to clips streamed to a running game
//   - LZ4: fastest decompression, suited to clips decoded on every load
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Choosing an algorithm
//
// | Scenario                       | Recommended | Reason                         |
// |---------------------------------|-------------|---------------------------------|
// | Archived clip library on disk   | Zstd        | Best compression ratio          |
// | Clips streamed at runtime       | S2          | Balanced speed and ratio        |
// | Clip loaded on every level load | LZ4         | Fastest decompression           |
// | CPU-constrained target          | None        | No compression overhead         |
//
// # Memory
//
// The stateful codecs (LZ4, Zstd) pool their internal encoder/decoder state
// via sync.Pool to avoid repeated allocation across many small clip payloads:
//   - NoOp: zero overhead
//   - LZ4: a pooled block compressor, adaptively-sized decompression buffer
//   - S2: stateless, allocates per call
//   - Zstd: pooled encoder/decoder pair
//
// # Integration with the writer and decoder packages
//
// The writer package uses this package as an optional outer envelope,
// selected via writer.WithCompression:
//
//	buf, err := writer.Compress(rawClip, writer.WithCompression(format.CompressionZstd))
//
// The decoder inspects the preamble's compression type and reverses the
// envelope before validating the container, so callers of decoder.NewDecoder
// never see the compressed form.
package compress
