package compress

import "fmt"

// Compressor compresses a finished byte stream.
type Compressor interface {
	// Compress compresses data and returns the result. The returned
	// slice is newly allocated; data is left unmodified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress restores data to its original form. Returns an error
	// if data is corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Type identifies a compression algorithm.
type Type uint8

const (
	// None applies no compression.
	None Type = iota
	// Zstd applies Zstandard compression.
	Zstd
	// S2 applies S2 (a Snappy-compatible algorithm) compression.
	S2
	// LZ4 applies LZ4 compression.
	LZ4
)

// String names the Type.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// CreateCodec is a factory function that creates a Codec for the given
// compression type. target names the caller's use (for error messages).
func CreateCodec(t Type, target string) (Codec, error) {
	switch t {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, t)
	}
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the given compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
