package slist

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrEmptyNode is raised when the successor of an empty Node is accessed.
	ErrEmptyNode = ierrors.New("empty node has no successor")

	// ErrInconsistentTail is raised when the tail of a List does not resolve to one of its nodes.
	ErrInconsistentTail = ierrors.New("tail does not resolve to a node of the list")

	// ErrStaleHandle is returned when a handle refers to a node that was removed from the List.
	ErrStaleHandle = ierrors.New("handle refers to a removed node")

	// ErrIteratorExhausted is raised when Next is called on an Iterator without a next element.
	ErrIteratorExhausted = ierrors.New("iterator has no next element")
)
