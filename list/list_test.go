package list

import (
	"testing"

	"github.com/adt-go/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListZeroValueIsEmpty(t *testing.T) {
	var l List[int]
	if !l.IsEmpty() {
		t.Error("expected zero-value list to be empty, isn't")
	}
	if l.Len() != 0 {
		t.Errorf("expected zero-value list to have length 0, has %d", l.Len())
	}
}

func TestListPushFrontBack(t *testing.T) {
	l := New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, l.Slice())
	assert.Equal(t, 3, l.Len())

	front, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, front)
	back, err := l.Back()
	require.NoError(t, err)
	assert.Equal(t, 3, back)
}

func TestListPopBothEnds(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	require.NoError(t, l.PopFront())
	require.NoError(t, l.PopBack())
	assert.Equal(t, []string{"b"}, l.Slice())
	require.NoError(t, l.PopFront())
	if !l.IsEmpty() {
		t.Error("expected list to be empty after popping every element, isn't")
	}
	// popping until empty must clear both ends
	l.PushBack("d")
	back, err := l.Back()
	require.NoError(t, err)
	assert.Equal(t, "d", back)
}

func TestListEmptyAccessFails(t *testing.T) {
	var l List[int]
	_, err := l.Front()
	assert.ErrorIs(t, err, adt.ErrEmptyList)
	_, err = l.Back()
	assert.ErrorIs(t, err, adt.ErrEmptyList)
	assert.ErrorIs(t, l.PopFront(), adt.ErrEmptyList)
	assert.ErrorIs(t, l.PopBack(), adt.ErrEmptyList)
}

func TestListAt(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.PushBack(i * 10)
	}
	for i := 0; i < 5; i++ {
		v, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, i*10, v)
	}
	_, err := l.At(5)
	assert.ErrorIs(t, err, adt.ErrInvalidAccess)
	_, err = l.At(-1)
	assert.ErrorIs(t, err, adt.ErrInvalidAccess)
}

func TestListIterSinglePass(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	it := l.Iter()
	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	if _, ok := it.Next(); ok {
		t.Error("expected exhausted iterator to stay exhausted, didn't")
	}
}

func TestListEqual(t *testing.T) {
	a := New[int]()
	b := New[int]()
	if !Equal(a, b) {
		t.Error("expected two empty lists to be equal, aren't")
	}
	for _, v := range []int{1, 2, 3} {
		a.PushBack(v)
		b.PushBack(v)
	}
	if !Equal(a, b) {
		t.Error("expected lists with equal elements to be equal, aren't")
	}
	if !Equal(a, a) {
		t.Error("expected a list to equal itself, doesn't")
	}
	require.NoError(t, b.PopBack())
	if Equal(a, b) {
		t.Error("expected lists of different length to differ, don't")
	}
	b.PushBack(4)
	if Equal(a, b) {
		t.Error("expected lists with a differing element to differ, don't")
	}
}

func TestListString(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	assert.Equal(t, "[1 2]", l.String())
}

func TestSingleList(t *testing.T) {
	var l Single[int]
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, l.Slice())
	assert.Equal(t, 3, l.Len())

	require.NoError(t, l.PopFront())
	front, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, 2, front)

	require.NoError(t, l.PopFront())
	require.NoError(t, l.PopFront())
	if !l.IsEmpty() {
		t.Error("expected single list to be empty, isn't")
	}
	_, err = l.Front()
	assert.ErrorIs(t, err, adt.ErrEmptyList)

	// tail must be reset after the list drains
	l.PushBack(7)
	assert.Equal(t, []int{7}, l.Slice())
}
