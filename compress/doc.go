// Package compress provides optional codecs applied to a finished JSON
// byte stream.
//
// tabjson never needs these to produce correct output; they exist for
// callers who want the encoded result compressed before it leaves the
// process, without reaching for a second dependency.
//
// # Supported algorithms
//
//   - None: no compression.
//   - Zstd: best compression ratio, moderate speed. Built on
//     github.com/valyala/gozstd when cgo is enabled; with cgo disabled
//     (CGO_ENABLED=0), github.com/klauspost/compress/zstd is used instead.
//   - S2: balanced speed and ratio, via github.com/klauspost/compress/s2.
//   - LZ4: fastest decompression, via github.com/pierrec/lz4/v4.
//
// All codec implementations are safe for concurrent use.
package compress
