package compress

// ZstdCompressor provides Zstandard compression: best ratio of the four
// codecs, at moderate speed. Good for output headed to cold storage or a
// bandwidth-constrained link. See zstd_pure.go and zstd_cgo.go for the
// two interchangeable Compress/Decompress implementations.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
