package encode

import (
	"github.com/tabjson/tabjson/internal/visited"
	"github.com/tabjson/tabjson/internal/writer"
)

func newTestBuffer() *writer.Buffer {
	return writer.NewBuffer(64)
}

func newTestSink(buf *writer.Buffer) *writer.Sink {
	return writer.NewSink(buf)
}

func newTestState(cfg *Config) *dispatchState {
	if cfg == nil {
		cfg = NewConfig()
	}

	buf := newTestBuffer()
	sink := newTestSink(buf)

	return &dispatchState{sink: sink, cfg: cfg, visited: visited.NewTracker()}
}
