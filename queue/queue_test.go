package queue

import (
	"testing"

	"github.com/adt-go/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := New[int]()
	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)
	assert.Equal(t, 3, q.Len())

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	for want := 1; want <= 3; want++ {
		got, err := q.PopFront()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	if !q.IsEmpty() {
		t.Error("expected queue to be empty after draining, isn't")
	}
}

func TestQueueEmptyAccessFails(t *testing.T) {
	var q Queue[int]
	_, err := q.Front()
	assert.ErrorIs(t, err, adt.ErrEmptyQueue)
	_, err = q.PopFront()
	assert.ErrorIs(t, err, adt.ErrEmptyQueue)
}

func TestQueueDrainAndRefill(t *testing.T) {
	var q Queue[string]
	q.PushBack("a")
	_, err := q.PopFront()
	require.NoError(t, err)

	// last must have been reset; a new push is both front and back
	q.PushBack("b")
	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "b", front)
	assert.Equal(t, 1, q.Len())
}
