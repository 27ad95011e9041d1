package hashmap

import (
	"sort"
	"strconv"
	"testing"

	"github.com/adt-go/adt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapZeroValueIsUsable(t *testing.T) {
	var m Map[string, int]
	if !m.IsEmpty() {
		t.Error("expected zero-value map to be empty, isn't")
	}
	if _, ok := m.Get("nothing"); ok {
		t.Error("did not expect to find a key in a zero-value map")
	}
	if m.Delete("nothing") {
		t.Error("did not expect Delete on a zero-value map to report presence")
	}
	if _, _, ok := m.Iter().Next(); ok {
		t.Error("expected iterator over zero-value map to be exhausted, isn't")
	}
	m.Put("one", 1)
	v, ok := m.Get("one")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, m.Len())
}

func TestMapPutGet(t *testing.T) {
	m := New[string, int]()
	m.Put("one", 1)
	m.Put("two", 2)
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("one")
	if !ok {
		t.Error("expected to find key 'one', didn't")
	}
	assert.Equal(t, 1, v)

	_, ok = m.Get("three")
	if ok {
		t.Error("did not expect to find key 'three'")
	}
}

func TestMapPutReplaces(t *testing.T) {
	m := New[string, int]()
	m.Put("k", 1)
	m.Put("k", 2)
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMapAtMissingKeyFails(t *testing.T) {
	m := New[string, int]()
	_, err := m.At("nope")
	assert.ErrorIs(t, err, adt.ErrBadKey)

	m.Put("yes", 1)
	v, err := m.At("yes")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestMapDelete(t *testing.T) {
	m := New[int, string]()
	for i := 0; i < 10; i++ {
		m.Put(i, strconv.Itoa(i))
	}
	if !m.Delete(3) {
		t.Error("expected Delete(3) to report presence, didn't")
	}
	if m.Delete(3) {
		t.Error("expected second Delete(3) to report absence, didn't")
	}
	assert.Equal(t, 9, m.Len())
	if m.Contains(3) {
		t.Error("expected key 3 to be gone, isn't")
	}
	if !m.Contains(4) {
		t.Error("expected key 4 to remain, doesn't")
	}
}

func TestMapGrowKeepsEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.hashmap")
	defer teardown()
	//
	m := New[int, int]()
	const n = 1000 // far beyond the initial 8 bins
	for i := 0; i < n; i++ {
		m.Put(i, i*i)
	}
	assert.Equal(t, n, m.Len())
	if len(m.bins) <= initialBinCount {
		t.Errorf("expected the table to have grown past %d bins, has %d", initialBinCount, len(m.bins))
	}
	for i := 0; i < n; i++ {
		v, ok := m.Get(i)
		require.True(t, ok, "key %d lost while growing", i)
		assert.Equal(t, i*i, v)
	}
}

func TestMapIterVisitsEverything(t *testing.T) {
	m := New[int, string]()
	want := make([]int, 0, 100)
	for i := 0; i < 100; i++ {
		m.Put(i, strconv.Itoa(i))
		want = append(want, i)
	}
	var got []int
	it := m.Iter()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		assert.Equal(t, strconv.Itoa(k), v)
		got = append(got, k)
	}
	sort.Ints(got)
	assert.Equal(t, want, got)
}

func TestMapIterEmpty(t *testing.T) {
	m := New[string, int]()
	if _, _, ok := m.Iter().Next(); ok {
		t.Error("expected iterator over empty map to be exhausted, isn't")
	}
}

func TestMapCustomHasher(t *testing.T) {
	type point struct{ x, y int }
	hashPoint := func(p point) uint64 {
		return uint64(p.x)<<32 | uint64(uint32(p.y))
	}
	m := New[point, string](WithHasher(hashPoint))
	m.Put(point{1, 2}, "a")
	m.Put(point{2, 1}, "b")
	v, ok := m.Get(point{1, 2})
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestMapIntAndStringDefaults(t *testing.T) {
	mi := New[int, bool]()
	mi.Put(-1, true)
	if !mi.Contains(-1) {
		t.Error("expected negative int key to round-trip, doesn't")
	}
	ms := New[string, bool]()
	ms.Put("", true)
	if !ms.Contains("") {
		t.Error("expected empty string key to round-trip, doesn't")
	}
}
