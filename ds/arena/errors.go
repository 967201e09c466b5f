package arena

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrBorrowConflict is raised when a slot is accessed in a way that conflicts with an active borrow.
	ErrBorrowConflict = ierrors.New("conflicting borrow of arena slot")

	// ErrStaleHandle is returned when a Handle does not resolve to a live slot anymore.
	ErrStaleHandle = ierrors.New("stale arena handle")
)
