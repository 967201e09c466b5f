package arena

import (
	"strconv"
)

// Nil is the zero Handle. It never resolves to a slot.
var Nil Handle

// Handle is a non-owning reference to a slot of an Arena.
//
// A Handle stays comparable and cheap to copy. It only resolves as long as the slot it was created for has not been
// freed: every reuse of a slot bumps its generation, so handles to previous occupants become stale. A slot is retired
// once its generation reaches math.MaxUint32, so generations never wrap around.
type Handle struct {
	// index is the position of the slot in the Arena.
	index uint32

	// generation is the generation of the slot at the time the Handle was created (0 marks the Nil handle).
	generation uint32
}

// IsNil returns true if the Handle is the zero Handle.
func (h Handle) IsNil() bool {
	return h.generation == 0
}

// Index returns the slot index the Handle points to.
func (h Handle) Index() int {
	return int(h.index)
}

// Generation returns the slot generation the Handle was issued for.
func (h Handle) Generation() uint32 {
	return h.generation
}

// String returns a human-readable version of the Handle.
func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}

	return strconv.FormatUint(uint64(h.index), 10) + "@" + strconv.FormatUint(uint64(h.generation), 10)
}
