package slist

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/slist/ds/arena"
)

// Iterator is a forward-only cursor over the nodes of a List.
//
// The Iterator only holds a handle to its current node. If that node is removed from the List before the Iterator
// advances past it, the Iterator stops (HasNext returns false) and Err reports ErrStaleHandle.
type Iterator[T any] struct {
	list    *List[T]
	current arena.Handle
	err     error
}

// newIterator creates a new Iterator that starts at the head of the given List.
func newIterator[T any](list *List[T]) *Iterator[T] {
	return &Iterator[T]{
		list:    list,
		current: list.head,
	}
}

// HasNext returns true if the Iterator has another element.
func (i *Iterator[T]) HasNext() bool {
	if i.err != nil {
		return false
	}

	currentNode, exists := i.list.nodes.Get(i.current)
	if !exists {
		i.err = ierrors.Wrapf(ErrStaleHandle, "iterator position %s was removed", i.current)

		return false
	}

	return !currentNode.IsEmpty()
}

// Next returns the handle and the value of the current element and advances the Iterator.
//
// Calling Next without a next element panics with ErrIteratorExhausted.
func (i *Iterator[T]) Next() (handle arena.Handle, value T) {
	if !i.HasNext() {
		panic(ierrors.Wrapf(ErrIteratorExhausted, "failed to advance from %s", i.current))
	}

	currentNode := i.list.node(i.current)
	handle, value = i.current, currentNode.value
	i.current = currentNode.Next()

	return handle, value
}

// Err returns the error that stopped the Iterator (if any).
func (i *Iterator[T]) Err() error {
	return i.err
}

// Reset moves the Iterator back to the current head of the List and clears its error.
func (i *Iterator[T]) Reset() {
	i.current = i.list.head
	i.err = nil
}
