package arena

import (
	"math"

	"github.com/iotaledger/hive.go/ds/stack"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// region Arena ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Arena is a slot map that owns values of type T and hands out generation checked Handles to them.
//
// The Arena is the single owner of its values: callers only ever hold Handles, and all mutation goes through Modify,
// which grants exclusive access to one slot at a time and panics on overlapping access.
//
// WARNING: the Arena is not safe for concurrent use.
type Arena[T any] struct {
	// slots holds the slots of the Arena. Slots are never moved, so pointers to them stay valid when the Arena grows.
	slots []*slot[T]

	// freeSlots contains the indexes of freed slots that can be reused.
	freeSlots stack.Stack[uint32]

	// len is the number of occupied slots.
	len int

	// optInitialCapacity is the number of slots that get preallocated.
	optInitialCapacity int
}

// New creates a new Arena.
func New[T any](opts ...options.Option[Arena[T]]) *Arena[T] {
	return options.Apply(&Arena[T]{
		freeSlots: stack.New[uint32](),
	}, opts, func(a *Arena[T]) {
		a.slots = make([]*slot[T], 0, max(a.optInitialCapacity, 0))
	})
}

// Alloc stores the given value in a free slot and returns a Handle to it.
func (a *Arena[T]) Alloc(value T) Handle {
	s, index := a.freeSlot()
	s.occupied = true
	s.generation++
	s.value = value

	a.len++

	return Handle{index: index, generation: s.generation}
}

// Free releases the slot the Handle points to and returns the value that was stored in it.
// It returns false if the Handle is stale. Freeing a borrowed slot panics.
func (a *Arena[T]) Free(h Handle) (value T, freed bool) {
	s, exists := a.slot(h)
	if !exists {
		return value, false
	}

	if s.borrows != 0 {
		panic(ierrors.Wrapf(ErrBorrowConflict, "failed to free slot %s", h))
	}

	value = s.value
	a.release(h.index, s)
	a.len--

	return value, true
}

// Get returns a copy of the value the Handle points to.
func (a *Arena[T]) Get(h Handle) (value T, exists bool) {
	s, exists := a.slot(h)
	if !exists {
		return value, false
	}

	if s.borrows < 0 {
		panic(ierrors.Wrapf(ErrBorrowConflict, "failed to read slot %s while it is borrowed exclusively", h))
	}

	return s.value, true
}

// Contains returns true if the Handle resolves to a live slot.
func (a *Arena[T]) Contains(h Handle) bool {
	_, exists := a.slot(h)

	return exists
}

// Modify borrows the slot the Handle points to exclusively and hands a pointer to its value to the callback.
// It returns false (without calling the callback) if the Handle is stale. Accessing the same slot from within the
// callback panics.
func (a *Arena[T]) Modify(h Handle, callback func(value *T)) bool {
	s, exists := a.slot(h)
	if !exists {
		return false
	}

	if s.borrows != 0 {
		panic(ierrors.Wrapf(ErrBorrowConflict, "failed to borrow slot %s exclusively", h))
	}

	s.borrows = exclusiveBorrow
	defer func() { s.borrows = 0 }()

	callback(&s.value)

	return true
}

// Inspect borrows the slot the Handle points to in shared mode and hands a copy of its value to the callback.
// It returns false (without calling the callback) if the Handle is stale. Nested calls to Inspect are allowed, while
// Modify and Free of the same slot panic until the callback returns.
func (a *Arena[T]) Inspect(h Handle, callback func(value T)) bool {
	s, exists := a.slot(h)
	if !exists {
		return false
	}

	if s.borrows < 0 {
		panic(ierrors.Wrapf(ErrBorrowConflict, "failed to borrow slot %s while it is borrowed exclusively", h))
	}

	s.borrows++
	defer func() { s.borrows-- }()

	callback(s.value)

	return true
}

// Borrowed returns true if the slot the Handle points to is currently borrowed by Modify or Inspect.
func (a *Arena[T]) Borrowed(h Handle) bool {
	s, exists := a.slot(h)

	return exists && s.borrows != 0
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.len
}

// Cap returns the number of slots (live, free and retired) that the Arena has allocated.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Clear frees all slots. Handles that were issued before stay stale forever.
func (a *Arena[T]) Clear() {
	for index, s := range a.slots {
		if s.occupied && s.borrows != 0 {
			panic(ierrors.Wrapf(ErrBorrowConflict, "failed to clear borrowed slot %d", index))
		}
	}

	for index, s := range a.slots {
		if s.occupied {
			a.release(uint32(index), s)
		}
	}

	a.len = 0
}

// String returns a human-readable version of the Arena.
func (a *Arena[T]) String() string {
	return stringify.Struct("Arena",
		stringify.NewStructField("Len", a.len),
		stringify.NewStructField("Cap", len(a.slots)),
		stringify.NewStructField("FreeSlots", a.freeSlots.Size()),
	)
}

// slot returns the slot the Handle points to if it is still occupied by the generation of the Handle.
func (a *Arena[T]) slot(h Handle) (s *slot[T], exists bool) {
	if h.IsNil() || int(h.index) >= len(a.slots) {
		return nil, false
	}

	if s = a.slots[h.index]; !s.occupied || s.generation != h.generation {
		return nil, false
	}

	return s, true
}

// release empties the given slot and makes it available for reuse. A slot whose generation is exhausted is retired
// instead, so its handles can never resolve again.
func (a *Arena[T]) release(index uint32, s *slot[T]) {
	var zeroValue T
	s.value = zeroValue
	s.occupied = false

	if s.generation != math.MaxUint32 {
		a.freeSlots.Push(index)
	}
}

// freeSlot returns a slot that can be used to store a new value.
func (a *Arena[T]) freeSlot() (s *slot[T], index uint32) {
	if freeIndex, exists := a.freeSlots.Pop(); exists {
		return a.slots[freeIndex], freeIndex
	}

	s = new(slot[T])
	a.slots = append(a.slots, s)

	return s, uint32(len(a.slots) - 1)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region slot /////////////////////////////////////////////////////////////////////////////////////////////////////////

// exclusiveBorrow is the borrow counter value of a slot that is borrowed exclusively.
const exclusiveBorrow = -1

// slot is a single storage cell of the Arena.
type slot[T any] struct {
	// value is the value stored in the slot.
	value T

	// generation is increased every time the slot is reused.
	generation uint32

	// occupied is true while the slot holds a live value.
	occupied bool

	// borrows is the number of active shared borrows or exclusiveBorrow.
	borrows int
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
