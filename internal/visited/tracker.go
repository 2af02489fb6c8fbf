// Package visited detects reference cycles while the encoder recurses
// into slices, maps, and structs. A JSON encode walk that entered the
// same pointer twice on the same stack path would never terminate.
package visited

import (
	"fmt"
	"unsafe"

	"github.com/tabjson/tabjson/internal/hash"
)

// ErrCycle is returned when a value is encountered twice on the current
// recursion path.
var ErrCycle = fmt.Errorf("tabjson: cyclic reference detected")

// Tracker tracks the pointer identities currently on the encoder's
// recursion stack.
type Tracker struct {
	onStack map[uint64]struct{}
	order   []uint64
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{onStack: make(map[uint64]struct{})}
}

// Enter records ptr as entered and returns ErrCycle if it was already on
// the current recursion path. Every successful Enter must be paired with
// a later Leave, typically via defer.
func (t *Tracker) Enter(ptr unsafe.Pointer) error {
	id := hash.ID(pointerKey(ptr))

	if _, seen := t.onStack[id]; seen {
		return ErrCycle
	}

	t.onStack[id] = struct{}{}
	t.order = append(t.order, id)

	return nil
}

// Leave pops the most recently entered pointer.
func (t *Tracker) Leave(ptr unsafe.Pointer) {
	id := hash.ID(pointerKey(ptr))
	delete(t.onStack, id)

	if n := len(t.order); n > 0 && t.order[n-1] == id {
		t.order = t.order[:n-1]
	}
}

// Depth reports how many pointers are currently on the recursion path.
func (t *Tracker) Depth() int { return len(t.order) }

func pointerKey(ptr unsafe.Pointer) string {
	return fmt.Sprintf("%p", ptr)
}
