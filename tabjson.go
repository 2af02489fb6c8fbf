// Package tabjson converts tables, vectors, labeled indexes, typed
// n-dimensional arrays, and the usual Go scalars into UTF-8 JSON.
//
// [Marshal] is the one-shot entry point; [NewEncoder] exposes the same
// behavior with its output buffer reused by the caller across many calls.
package tabjson

import (
	"github.com/tabjson/tabjson/compress"
	"github.com/tabjson/tabjson/internal/encode"
	"github.com/tabjson/tabjson/internal/options"
)

// Marshal encodes v as JSON, applying opts in order.
func Marshal(v any, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}
	defer enc.Release()

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	out, err := enc.compressed()
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), out...), nil
}

// Encoder encodes one or more values under a fixed set of options. Unlike
// [Marshal], its output buffer is reused across Encode calls; call
// [Encoder.Bytes] to read the result of the most recent call and
// [Encoder.Release] when done with the Encoder.
type Encoder struct {
	cfg  *encode.Config
	core *encode.Encoder
}

// NewEncoder builds an Encoder, applying opts in order.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := encode.NewConfig()

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, &EncodeError{Kind: KindOption, Err: err}
	}

	return &Encoder{cfg: cfg, core: encode.NewEncoder(cfg)}, nil
}

// Encode writes v's JSON representation. Call [Encoder.Bytes] to read the
// result.
func (e *Encoder) Encode(v any) error {
	if err := e.core.Encode(v); err != nil {
		return fromInternal(err)
	}

	return nil
}

// Bytes returns the JSON produced by the most recent Encode call, with
// compression applied if configured. The returned slice is only valid
// until the next Encode call or Release.
func (e *Encoder) Bytes() ([]byte, error) {
	return e.compressed()
}

// Release returns the Encoder's internal buffer to the shared pool.
func (e *Encoder) Release() { e.core.Release() }

func (e *Encoder) compressed() ([]byte, error) {
	raw := e.core.Bytes()

	if e.cfg.Compression() == compress.None {
		return raw, nil
	}

	codec, err := compress.GetCodec(e.cfg.Compression())
	if err != nil {
		return nil, fromInternal(err)
	}

	out, err := codec.Compress(raw)
	if err != nil {
		return nil, fromInternal(err)
	}

	return out, nil
}
