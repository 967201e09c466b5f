package slist

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/slist/ds/arena"
)

// Node is a single link of a List. It is either empty (the terminal marker of a List) or filled with a value and a
// handle to its successor.
type Node[T any] struct {
	// filled is false for the terminal marker.
	filled bool

	// value is the value of a filled Node.
	value T

	// next is the handle of the successor of a filled Node.
	next arena.Handle
}

// NewNode returns an empty Node.
func NewNode[T any]() Node[T] {
	return Node[T]{}
}

// NewFilledNode returns a Node that holds the given value and links to the given successor.
func NewFilledNode[T any](value T, next arena.Handle) Node[T] {
	return Node[T]{
		filled: true,
		value:  value,
		next:   next,
	}
}

// IsEmpty returns true if the Node is a terminal marker.
func (n *Node[T]) IsEmpty() bool {
	return !n.filled
}

// Value returns the value of the Node and false if the Node is empty.
func (n *Node[T]) Value() (value T, filled bool) {
	if !n.filled {
		return value, false
	}

	return n.value, true
}

// SetValue replaces the value of a filled Node. It is a no-op for empty Nodes.
func (n *Node[T]) SetValue(value T) {
	if n.filled {
		n.value = value
	}
}

// Next returns the handle of the successor.
//
// Calling Next on an empty Node is a programming error and panics with ErrEmptyNode.
func (n *Node[T]) Next() arena.Handle {
	if !n.filled {
		panic(ierrors.Wrap(ErrEmptyNode, "failed to retrieve successor"))
	}

	return n.next
}

// SetNext replaces the successor of a filled Node. It is a no-op for empty Nodes.
func (n *Node[T]) SetNext(next arena.Handle) {
	if n.filled {
		n.next = next
	}
}

// TakeNext detaches the successor and returns its handle, leaving the Node linked to the given placeholder.
// Like Next, it panics with ErrEmptyNode for empty Nodes.
func (n *Node[T]) TakeNext(placeholder arena.Handle) (next arena.Handle) {
	if !n.filled {
		panic(ierrors.Wrap(ErrEmptyNode, "failed to take successor"))
	}

	next, n.next = n.next, placeholder

	return next
}
