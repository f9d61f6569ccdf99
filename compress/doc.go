// Package compress provides the codecs used to archive finished FIT files.
//
// FIT files are small and written once, but course libraries and upload
// queues often hold thousands of them. A finished file can be compressed for
// storage or transfer and restored byte-for-byte:
//
//	packed, _ := file.Compress(format.CompressionZstd)
//	raw, _ := fitfile.Decompress(format.CompressionZstd, packed)
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): returns the input unchanged
//   - Zstd (format.CompressionZstd): best ratio, the default choice for archives
//   - S2 (format.CompressionS2): fast, moderate ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd uses the pure-Go klauspost/compress implementation. Building with the
// gozstd tag switches to the cgo valyala/gozstd binding instead.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use; internal
// encoder and decoder instances are pooled.
package compress
