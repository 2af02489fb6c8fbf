package encode

// orientationHint is implemented by a table.Table that wants to override
// the encoder's configured orientation for itself, without affecting any
// sibling or ancestor table reached through the same Marshal call. A table
// embedded in a generic container this way keeps the encoder's output
// shape in the author's control even though orientation is otherwise a
// single top-level option.
type orientationHint interface {
	PreferredOrientation() (string, bool)
}

// orientationNames maps the string form an orientationHint returns to the
// internal enum, the same strings the top-level option setter accepts.
var orientationNames = map[string]orientation{
	"split":   OrientSplit,
	"records": OrientRecords,
	"index":   OrientIndex,
	"columns": OrientColumns,
	"values":  OrientValues,
}

// pushOrientation temporarily overrides cfg's orientation, returning a
// restore func the caller defers immediately so the override never leaks
// past the value that requested it.
func pushOrientation(cfg *Config, o orientation) func() {
	prev := cfg.orientation
	cfg.orientation = o

	return func() { cfg.orientation = prev }
}

// resolveOrientation applies v's orientationHint, if it implements one and
// names a recognized orientation, returning a restore func that is always
// safe to defer even when no override applied.
func resolveOrientation(cfg *Config, v any) func() {
	h, ok := v.(orientationHint)
	if !ok {
		return func() {}
	}

	name, ok := h.PreferredOrientation()
	if !ok {
		return func() {}
	}

	o, ok := orientationNames[name]
	if !ok {
		return func() {}
	}

	return pushOrientation(cfg, o)
}
