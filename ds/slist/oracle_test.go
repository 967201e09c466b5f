package slist

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/stretchr/testify/require"
)

// TestList_AgainstReference applies random operation sequences to a List and to the singly linked list of gods and
// compares the results after every step.
func TestList_AgainstReference(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		l := New[int]()
		reference := singlylinkedlist.New()

		for step := 0; step < 200; step++ {
			value := random.Intn(1000)

			switch operation := random.Intn(7); operation {
			case 0:
				l.InsertHead(value)
				reference.Prepend(value)
			case 1:
				l.InsertTail(value)
				reference.Append(value)
			case 2:
				popped, exists := l.PopFront()
				expected, expectedExists := reference.Get(0)
				require.Equal(t, expectedExists, exists)
				if expectedExists {
					require.Equal(t, expected, popped)
					reference.Remove(0)
				}
			case 3:
				index := random.Intn(reference.Size() + 2)
				expectedRemoved := index < reference.Size()
				require.Equal(t, expectedRemoved, l.Remove(index), "remove(%d) of %v", index, reference.Values())
				reference.Remove(index)
			case 4:
				index := random.Intn(reference.Size() + 2)
				expectedInserted := index <= reference.Size()
				require.Equal(t, expectedInserted, l.InsertAt(index, value))
				if expectedInserted {
					reference.Insert(index, value)
				}
			case 5:
				index := random.Intn(reference.Size() + 1)
				expected, expectedExists := reference.Get(index)
				actual, exists := l.Get(index)
				require.Equal(t, expectedExists, exists)
				if expectedExists {
					require.Equal(t, expected, actual)
					require.True(t, l.Set(index, value))
					reference.Set(index, value)
				}
			case 6:
				if random.Intn(20) == 0 {
					l.Clear()
					reference.Clear()
				}
			}

			requireMatchesReference(t, l, reference)
		}
	}
}

func requireMatchesReference(t *testing.T, l *List[int], reference *singlylinkedlist.List) {
	t.Helper()

	expected := make([]int, 0, reference.Size())
	for _, value := range reference.Values() {
		expected = append(expected, value.(int))
	}

	require.Equal(t, expected, l.Values())
	require.Equal(t, reference.Size(), l.Len())
	require.Equal(t, l.Len()+1, l.nodes.Len(), "removed nodes must be released")

	if len(expected) == 0 {
		require.Equal(t, l.Head(), l.Tail())

		return
	}

	back, exists := l.Back()
	require.True(t, exists)
	require.Equal(t, expected[len(expected)-1], back)
}
