package encode

import (
	"github.com/tabjson/tabjson/internal/visited"
	"github.com/tabjson/tabjson/internal/writer"
)

// Encoder drives one Marshal call: it owns the output buffer, the resolved
// configuration, and the cycle tracker shared across every value reached
// from the call's root.
type Encoder struct {
	buf     *writer.Buffer
	sink    *writer.Sink
	cfg     *Config
	visited *visited.Tracker
}

// NewEncoder returns an Encoder configured by cfg, writing into a freshly
// pooled buffer.
func NewEncoder(cfg *Config) *Encoder {
	buf := writer.Get()
	sink := writer.NewSink(buf)
	sink.ForceASCII = cfg.forceASCII
	sink.HTMLEscape = cfg.htmlEscape
	sink.Precision = cfg.precision

	return &Encoder{buf: buf, sink: sink, cfg: cfg, visited: visited.NewTracker()}
}

// Encode writes v's JSON representation, replacing whatever a prior
// Encode call on this Encoder produced. On failure the buffer is left
// empty rather than holding a partially-written value.
func (e *Encoder) Encode(v any) error {
	e.buf.Reset()

	st := &dispatchState{sink: e.sink, cfg: e.cfg, visited: e.visited, depth: 0}
	if err := encodeValue(st, v); err != nil {
		e.sink.Rollback(0)
		return err
	}

	return nil
}

// Bytes returns the JSON produced so far. The returned slice shares the
// Encoder's buffer and is only valid until the next Encode or Release.
func (e *Encoder) Bytes() []byte { return e.sink.Bytes() }

// Release returns the Encoder's internal buffer to the shared pool. Call
// it once the caller is done with the slice returned by Bytes, after
// copying it if it needs to outlive the pool's reuse of the backing array.
func (e *Encoder) Release() { writer.Put(e.buf) }
