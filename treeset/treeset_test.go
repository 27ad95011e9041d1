package treeset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddContains(t *testing.T) {
	s := New[int]()
	s.Add(2)
	s.Add(1)
	s.Add(3)
	s.Add(2) // duplicate: no effect
	assert.Equal(t, 3, s.Len())
	for _, e := range []int{1, 2, 3} {
		if !s.Contains(e) {
			t.Errorf("expected set to contain %d, doesn't", e)
		}
	}
	if s.Contains(4) {
		t.Error("did not expect set to contain 4")
	}
}

func TestSetRemove(t *testing.T) {
	s := New[int]()
	for _, e := range []int{50, 30, 70, 20, 40} {
		s.Add(e)
	}
	s.Remove(30) // two children
	s.Remove(20) // leaf
	s.Remove(99) // absent: no effect
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{40, 50, 70}, s.Slice())
}

func TestSetIterSorted(t *testing.T) {
	s := New[int]()
	rng := rand.New(rand.NewSource(7))
	want := make([]int, 0, 100)
	for _, e := range rng.Perm(100) {
		s.Add(e)
		want = append(want, e)
	}
	sort.Ints(want)
	assert.Equal(t, want, s.Slice())
}

func TestSetEmpty(t *testing.T) {
	s := New[string]()
	if !s.IsEmpty() {
		t.Error("expected fresh set to be empty, isn't")
	}
	if _, ok := s.Iter().Next(); ok {
		t.Error("expected iterator over empty set to be exhausted, isn't")
	}
	s.Remove("x") // no effect on empty set
	assert.Equal(t, 0, s.Len())
}

func TestSetCustomOrdering(t *testing.T) {
	s := NewFunc[string](func(a, b string) bool { return len(a) < len(b) })
	s.Add("ccc")
	s.Add("a")
	s.Add("bb")
	s.Add("xx") // same length as "bb": already "present" under this ordering
	assert.Equal(t, []string{"a", "bb", "ccc"}, s.Slice())
}

func TestSetString(t *testing.T) {
	s := New[int]()
	s.Add(2)
	s.Add(1)
	assert.Equal(t, "{1, 2}", s.String())
}
