package tabjson

// CompressionType selects an optional codec applied to the finished JSON
// byte stream. None, the default, leaves the output as plain JSON text.
type CompressionType uint8

const (
	// CompressNone leaves the output uncompressed.
	CompressNone CompressionType = iota
	// CompressZstd compresses with zstd.
	CompressZstd
	// CompressS2 compresses with S2, Snappy's faster, better-compressing fork.
	CompressS2
	// CompressLZ4 compresses with LZ4.
	CompressLZ4
)

// String names the CompressionType.
func (t CompressionType) String() string {
	switch t {
	case CompressNone:
		return "none"
	case CompressZstd:
		return "zstd"
	case CompressS2:
		return "s2"
	case CompressLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}
