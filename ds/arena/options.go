package arena

import (
	"github.com/iotaledger/hive.go/runtime/options"
)

// WithInitialCapacity is an option for the Arena that preallocates room for the given number of slots.
func WithInitialCapacity[T any](capacity int) options.Option[Arena[T]] {
	return func(a *Arena[T]) {
		a.optInitialCapacity = capacity
	}
}
