package slist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/slist/ds/arena"
)

func TestNode_Empty(t *testing.T) {
	node := NewNode[int]()

	require.True(t, node.IsEmpty())

	_, filled := node.Value()
	require.False(t, filled)

	node.SetValue(3)
	_, filled = node.Value()
	require.False(t, filled, "SetValue must not fill an empty node")

	node.SetNext(arena.Nil)
	require.True(t, node.IsEmpty())

	requirePanicsWith(t, ErrEmptyNode, func() { node.Next() })
	requirePanicsWith(t, ErrEmptyNode, func() { node.TakeNext(arena.Nil) })
}

func TestNode_Filled(t *testing.T) {
	nodes := arena.New[Node[int]]()
	terminal := nodes.Alloc(NewNode[int]())
	successor := nodes.Alloc(NewFilledNode(2, terminal))

	node := NewFilledNode(1, successor)
	require.False(t, node.IsEmpty())

	value, filled := node.Value()
	require.True(t, filled)
	require.Equal(t, 1, value)

	node.SetValue(10)
	value, _ = node.Value()
	require.Equal(t, 10, value)

	require.Equal(t, successor, node.Next())

	node.SetNext(terminal)
	require.Equal(t, terminal, node.Next())

	node.SetNext(successor)
	require.Equal(t, successor, node.TakeNext(terminal))
	require.Equal(t, terminal, node.Next(), "TakeNext must leave the placeholder behind")
}

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		err, isError := recovered.(error)
		require.True(t, isError, "expected the panic value to be an error")
		require.True(t, ierrors.Is(err, target), "unexpected panic: %v", err)
	}()

	f()
}
