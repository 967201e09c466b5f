package slist

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"

	"github.com/iotaledger/slist/ds/arena"
)

// region List /////////////////////////////////////////////////////////////////////////////////////////////////////////

// List is a singly linked list with O(1) access to both of its ends.
//
// All nodes of the List live in an arena that is exclusively owned by the List. The head, the tail and the successor
// links of the nodes are handles into that arena, so any number of handles to a node can exist (the List itself, an
// Iterator, the predecessor of the node) without ever dangling: handles to removed nodes simply stop resolving.
// The logical end of the List is a single empty node (the terminal).
//
// WARNING: the List is not safe for concurrent use.
type List[T any] struct {
	// nodes owns all nodes of the List including the terminal.
	nodes *arena.Arena[Node[T]]

	// head is the handle of the first node (the terminal if the List is empty).
	head arena.Handle

	// tail is the handle of the last filled node (the terminal if the List is empty).
	tail arena.Handle

	// terminal is the handle of the empty node that marks the end of the List.
	terminal arena.Handle

	// size is the number of filled nodes.
	size int

	// logger is used to report structural changes.
	logger log.Logger

	// optInitialCapacity is the number of nodes that get preallocated.
	optInitialCapacity int
}

// New creates a new empty List.
func New[T any](opts ...options.Option[List[T]]) *List[T] {
	return options.Apply(&List[T]{
		logger: log.EmptyLogger,
	}, opts, func(l *List[T]) {
		if l.logger == nil {
			l.logger = log.EmptyLogger
		}

		l.nodes = arena.New[Node[T]](arena.WithInitialCapacity[Node[T]](l.optInitialCapacity + 1))
		l.reset()
	})
}

// InsertHead adds the given value to the front of the List.
func (l *List[T]) InsertHead(value T) {
	successor := l.head

	l.head = l.nodes.Alloc(NewFilledNode(value, successor))
	if successor == l.terminal {
		l.tail = l.head
	}

	l.size++
}

// InsertTail adds the given value to the back of the List.
//
// It panics with ErrInconsistentTail if the tail does not resolve to a node of the List, which can only happen if the
// internal state of the List was corrupted.
func (l *List[T]) InsertTail(value T) {
	tailNode, exists := l.nodes.Get(l.tail)
	if !exists {
		panic(ierrors.Wrapf(ErrInconsistentTail, "failed to append to tail %s", l.tail))
	}

	if tailNode.IsEmpty() {
		l.InsertHead(value)

		return
	}

	l.ensureNotBorrowed(l.tail)

	appended := l.nodes.Alloc(NewFilledNode(value, tailNode.Next()))
	l.nodes.Modify(l.tail, func(tailNode *Node[T]) { tailNode.SetNext(appended) })
	l.tail = appended

	l.size++
}

// InsertAt inserts the given value so that it ends up at the given position. It returns false if the position is
// outside of [0, Len()].
func (l *List[T]) InsertAt(index int, value T) bool {
	switch {
	case index < 0 || index > l.size:
		l.logger.LogDebug("insert position out of range", "index", index, "len", l.size)

		return false
	case index == 0:
		l.InsertHead(value)

		return true
	case index == l.size:
		l.InsertTail(value)

		return true
	}

	predecessor, exists := l.handleAt(index - 1)
	if !exists {
		return false
	}

	l.ensureNotBorrowed(predecessor)

	predecessorNode := l.node(predecessor)
	inserted := l.nodes.Alloc(NewFilledNode(value, predecessorNode.Next()))
	l.nodes.Modify(predecessor, func(predecessorNode *Node[T]) { predecessorNode.SetNext(inserted) })

	l.size++

	return true
}

// PopFront removes the first element of the List and returns its value. It returns false if the List is empty.
func (l *List[T]) PopFront() (value T, exists bool) {
	headNode := l.node(l.head)
	if value, exists = headNode.Value(); !exists {
		l.logger.LogTrace("pop on empty list")

		return value, false
	}

	removed, successor := l.head, headNode.Next()
	l.release(removed)

	if l.head = successor; l.head == l.terminal {
		l.tail = l.terminal

		l.logger.LogTrace("list emptied by pop")
	}

	return value, true
}

// Remove removes the element at the given position by linking its predecessor directly to its successor. It returns
// false and leaves the List untouched if the position is out of range.
func (l *List[T]) Remove(index int) bool {
	if index < 0 {
		l.logger.LogDebug("remove position out of range", "index", index, "len", l.size)

		return false
	}

	if index == 0 {
		_, removed := l.PopFront()

		return removed
	}

	predecessor, exists := l.handleAt(index - 1)
	if !exists {
		l.logger.LogDebug("remove position out of range", "index", index, "len", l.size)

		return false
	}

	predecessorNode := l.node(predecessor)
	target := predecessorNode.Next()
	if targetNode := l.node(target); targetNode.IsEmpty() {
		l.logger.LogDebug("remove position out of range", "index", index, "len", l.size)

		return false
	}

	l.ensureNotBorrowed(predecessor, target)

	l.nodes.Modify(predecessor, func(predecessorNode *Node[T]) {
		detachedNode := l.node(predecessorNode.TakeNext(l.terminal))
		predecessorNode.SetNext(detachedNode.Next())
	})
	l.release(target)

	if l.tail == target {
		l.tail = predecessor

		l.logger.LogTrace("tail moved to predecessor of removed node", "tail", l.tail)
	}

	return true
}

// Get returns the value at the given position and false if the position is out of range.
func (l *List[T]) Get(index int) (value T, exists bool) {
	handle, exists := l.handleAt(index)
	if !exists {
		return value, false
	}

	node := l.node(handle)

	return node.Value()
}

// Set replaces the value at the given position. It returns false if the position is out of range.
func (l *List[T]) Set(index int, value T) bool {
	handle, exists := l.handleAt(index)
	if !exists {
		return false
	}

	return l.nodes.Modify(handle, func(node *Node[T]) { node.SetValue(value) })
}

// Front returns the first value of the List and false if the List is empty.
func (l *List[T]) Front() (value T, exists bool) {
	headNode := l.node(l.head)

	return headNode.Value()
}

// Back returns the last value of the List and false if the List is empty.
func (l *List[T]) Back() (value T, exists bool) {
	tailNode := l.node(l.tail)

	return tailNode.Value()
}

// Head returns the handle of the first node (the terminal if the List is empty).
func (l *List[T]) Head() arena.Handle {
	return l.head
}

// Tail returns the handle of the last filled node (the terminal if the List is empty).
func (l *List[T]) Tail() arena.Handle {
	return l.tail
}

// Lookup returns a copy of the node the handle points to and false if the node was removed from the List.
func (l *List[T]) Lookup(handle arena.Handle) (node Node[T], exists bool) {
	return l.nodes.Get(handle)
}

// Resolve returns the value of the node the handle points to and false if the node was removed from the List or is
// the terminal.
func (l *List[T]) Resolve(handle arena.Handle) (value T, exists bool) {
	node, exists := l.nodes.Get(handle)
	if !exists {
		return value, false
	}

	return node.Value()
}

// Len returns the number of elements in the List.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the List has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear removes all elements from the List. Handles that were issued before become stale.
func (l *List[T]) Clear() {
	l.nodes.Clear()
	l.reset()

	l.logger.LogTrace("list cleared")
}

// ForEach executes the given callback for the value of each element in the List. The iteration is aborted if the
// callback returns an error.
//
// The visited node is borrowed while the callback runs: modifying or removing it (or linking a node after it) from
// within the callback panics with arena.ErrBorrowConflict.
func (l *List[T]) ForEach(callback func(value T) error) (err error) {
	for current, done := l.head, false; !done; {
		visited := current
		if !l.nodes.Inspect(visited, func(node Node[T]) {
			value, filled := node.Value()
			if done = !filled; done {
				return
			}

			current = node.Next()

			if err = callback(value); err != nil {
				done = true
			}
		}) {
			return ierrors.Wrapf(ErrStaleHandle, "failed to visit node %s", visited)
		}
	}

	return err
}

// Range executes the given callback for the value of each element in the List.
func (l *List[T]) Range(callback func(value T)) {
	if err := l.ForEach(func(value T) error {
		callback(value)

		return nil
	}); err != nil {
		panic(err)
	}
}

// Iterator returns an Iterator that starts at the current head of the List.
func (l *List[T]) Iterator() *Iterator[T] {
	return newIterator(l)
}

// reset links head and tail to a fresh terminal.
func (l *List[T]) reset() {
	l.terminal = l.nodes.Alloc(NewNode[T]())
	l.head = l.terminal
	l.tail = l.terminal
	l.size = 0
}

// handleAt returns the handle of the filled node at the given position.
func (l *List[T]) handleAt(index int) (handle arena.Handle, exists bool) {
	if index < 0 {
		return arena.Nil, false
	}

	for current, position := l.head, 0; ; position++ {
		currentNode := l.node(current)
		if currentNode.IsEmpty() {
			return arena.Nil, false
		}

		if position == index {
			return current, true
		}

		current = currentNode.Next()
	}
}

// node returns a copy of the node the handle points to. A handle of the List that does not resolve means that the
// List is corrupted, so it panics.
func (l *List[T]) node(handle arena.Handle) Node[T] {
	node, exists := l.nodes.Get(handle)
	if !exists {
		panic(ierrors.Wrapf(ErrStaleHandle, "list references removed node %s", handle))
	}

	return node
}

// release frees the node the handle points to and updates the size.
func (l *List[T]) release(handle arena.Handle) {
	if _, freed := l.nodes.Free(handle); !freed {
		panic(ierrors.Wrapf(ErrStaleHandle, "failed to release node %s", handle))
	}

	l.size--
}

// ensureNotBorrowed panics if any of the given nodes is borrowed, so that a relinking either happens completely or not
// at all.
func (l *List[T]) ensureNotBorrowed(handles ...arena.Handle) {
	for _, handle := range handles {
		if l.nodes.Borrowed(handle) {
			panic(ierrors.Wrapf(arena.ErrBorrowConflict, "failed to relink borrowed node %s", handle))
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
