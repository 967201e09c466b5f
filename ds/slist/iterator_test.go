package slist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	it := l.Iterator()
	values := make([]int, 0)
	for it.HasNext() {
		handle, value := it.Next()

		resolved, exists := l.Resolve(handle)
		require.True(t, exists)
		require.Equal(t, value, resolved)

		values = append(values, value)
	}

	require.Equal(t, []int{1, 2, 3}, values)
	require.NoError(t, it.Err())
	require.False(t, it.HasNext())

	requirePanicsWith(t, ErrIteratorExhausted, func() { it.Next() })

	// restarting yields the same sequence again
	it.Reset()
	_, value := it.Next()
	require.Equal(t, 1, value)
}

func TestIterator_EmptyList(t *testing.T) {
	it := New[string]().Iterator()

	require.False(t, it.HasNext())
	require.NoError(t, it.Err())
}

func TestIterator_MutationBehindCursor(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	it := l.Iterator()
	_, value := it.Next()
	require.Equal(t, 1, value)

	// popping the already visited head does not affect the cursor
	l.PopFront()
	l.InsertTail(4)

	values := make([]int, 0)
	for it.HasNext() {
		_, value = it.Next()
		values = append(values, value)
	}

	require.Equal(t, []int{2, 3, 4}, values)
	require.NoError(t, it.Err())
}

func TestIterator_CurrentNodeRemoved(t *testing.T) {
	t.Run("PopFront", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3})

		it := l.Iterator()
		l.PopFront()

		// the slot of the popped node gets reused, but the cursor must not see the new value
		l.InsertHead(10)

		require.False(t, it.HasNext())
		require.ErrorIs(t, it.Err(), ErrStaleHandle)
		requirePanicsWith(t, ErrIteratorExhausted, func() { it.Next() })

		it.Reset()
		require.True(t, it.HasNext())
		require.NoError(t, it.Err())

		_, value := it.Next()
		require.Equal(t, 10, value)
	})

	t.Run("Remove", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3})

		it := l.Iterator()
		it.Next()
		require.True(t, l.Remove(1))

		require.False(t, it.HasNext())
		require.ErrorIs(t, it.Err(), ErrStaleHandle)
	})

	t.Run("Clear", func(t *testing.T) {
		l := FromSlice([]int{1})

		it := l.Iterator()
		l.Clear()

		require.False(t, it.HasNext())
		require.ErrorIs(t, it.Err(), ErrStaleHandle)
	})
}
