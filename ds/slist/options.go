package slist

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// WithLogger is an option for the List that sets the logger used to report structural changes.
func WithLogger[T any](logger log.Logger) options.Option[List[T]] {
	return func(l *List[T]) {
		l.logger = logger
	}
}

// WithInitialCapacity is an option for the List that preallocates room for the given number of nodes.
func WithInitialCapacity[T any](capacity int) options.Option[List[T]] {
	return func(l *List[T]) {
		l.optInitialCapacity = capacity
	}
}
