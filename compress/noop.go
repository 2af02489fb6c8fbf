package compress

// NoOpCompressor passes data through unchanged. Useful as the default
// and for benchmarking encode overhead without a compression pass.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged, sharing its backing array.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged, sharing its backing array.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
