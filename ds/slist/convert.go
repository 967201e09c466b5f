package slist

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
)

// FromSlice creates a new List that contains the given values in the same order.
func FromSlice[T any](values []T, opts ...options.Option[List[T]]) *List[T] {
	l := New[T](append([]options.Option[List[T]]{WithInitialCapacity[T](len(values))}, opts...)...)
	for index := len(values) - 1; index >= 0; index-- {
		l.InsertHead(values[index])
	}

	return l
}

// Values returns a slice of all values in the List.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)

	l.Range(func(value T) {
		values = append(values, value)
	})

	return values
}

// Drain removes all elements from the List and returns their values in order.
func (l *List[T]) Drain() []T {
	values := make([]T, 0, l.size)

	for value, exists := l.PopFront(); exists; value, exists = l.PopFront() {
		values = append(values, value)
	}

	return values
}

// String returns the values of the List in the form "(v1 v2 ... vn)".
func (l *List[T]) String() string {
	return "(" + strings.Join(lo.Map(l.Values(), func(value T) string { return fmt.Sprint(value) }), " ") + ")"
}
