package hashmap

import (
	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

const initialBinCount = 8

// maxOccupancy is the occupancy percentage past which the table grows.
const maxOccupancy = 80

// Map is a hash table from keys of type K to values of type V. The zero
// value is an empty map hashing with the type's default hasher; a custom
// hasher needs New with the WithHasher option.
//
// Operations are:
//   - Put: generator, O(1) amortized
//   - Get, At, Contains: observers, O(1) expected
//   - Delete: mutator, O(1) expected
//   - Len, IsEmpty: observers, O(1)
type Map[K comparable, V any] struct {
	bins  []*entry[K, V]
	count int
	hash  Hasher[K]
}

type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Option configures a map at creation time.
type Option[K comparable] struct {
	hash Hasher[K]
}

// WithHasher is an option to replace the default hash function.
//
// Use it like this:
//
//	m := hashmap.New[point, string](hashmap.WithHasher(hashPoint))
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return Option[K]{hash: h}
}

// New returns an empty map with options, if you need any.
func New[K comparable, V any](opts ...Option[K]) *Map[K, V] {
	m := &Map[K, V]{
		bins: make([]*entry[K, V], initialBinCount),
		hash: defaultHasher[K](),
	}
	for _, opt := range opts {
		if opt.hash != nil {
			m.hash = opt.hash
		}
	}
	return m
}

// Put adds a key/value pair. If the key is already present its value is
// replaced.
func (m *Map[K, V]) Put(key K, value V) {
	m.lazyInit()
	if 100*m.count/len(m.bins) > maxOccupancy {
		m.grow()
	}
	idx := m.hash(key) % uint64(len(m.bins))
	if e := findEntry(key, m.bins[idx]); e != nil {
		e.value = value
		return
	}
	m.bins[idx] = &entry[K, V]{key: key, value: value, next: m.bins[idx]}
	m.count++
}

// lazyInit readies a zero-value map; maps built with New are left alone.
func (m *Map[K, V]) lazyInit() {
	if m.bins == nil {
		m.bins = make([]*entry[K, V], initialBinCount)
	}
	if m.hash == nil {
		m.hash = defaultHasher[K]()
	}
}

// Get returns the value for a key, and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.count == 0 {
		var none V
		return none, false
	}
	idx := m.hash(key) % uint64(len(m.bins))
	if e := findEntry(key, m.bins[idx]); e != nil {
		return e.value, true
	}
	var none V
	return none, false
}

// At returns the value for a key that must be present; absence is an
// error. Use Get if unsure.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, errors.Wrapf(adt.ErrBadKey, "key %v", key)
	}
	return v, nil
}

// Contains is true iff the key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes a key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if m.count == 0 {
		return false
	}
	idx := m.hash(key) % uint64(len(m.bins))
	for p := &m.bins[idx]; *p != nil; p = &(*p).next {
		if (*p).key == key {
			*p = (*p).next
			m.count--
			return true
		}
	}
	return false
}

// IsEmpty is true iff the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.count
}

func findEntry[K comparable, V any](key K, chain *entry[K, V]) *entry[K, V] {
	for e := chain; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// grow doubles the bin count and redistributes every entry.
func (m *Map[K, V]) grow() {
	tracer().Debugf("grow: %d bins -> %d, %d entries", len(m.bins), 2*len(m.bins), m.count)
	old := m.bins
	m.bins = make([]*entry[K, V], 2*len(old))
	for _, chain := range old {
		for e := chain; e != nil; {
			next := e.next
			idx := m.hash(e.key) % uint64(len(m.bins))
			e.next = m.bins[idx]
			m.bins[idx] = e
			e = next
		}
	}
}

// --- Iteration ---------------------------------------------------------

// Iterator walks the entries of a map in unspecified order, single pass.
// Mutating the map during iteration is undefined.
type Iterator[K comparable, V any] struct {
	m   *Map[K, V]
	bin int
	e   *entry[K, V]
}

// Iter returns an iterator over the map's entries.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{m: m}
	it.skipToNonEmptyBin()
	return it
}

// Next returns the entry under the iterator and advances it. It reports
// ok=false once the map is exhausted.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	if it.e == nil {
		var nk K
		var nv V
		return nk, nv, false
	}
	k, v := it.e.key, it.e.value
	it.e = it.e.next
	if it.e == nil {
		it.bin++
		it.skipToNonEmptyBin()
	}
	return k, v, true
}

func (it *Iterator[K, V]) skipToNonEmptyBin() {
	for ; it.bin < len(it.m.bins); it.bin++ {
		if it.m.bins[it.bin] != nil {
			it.e = it.m.bins[it.bin]
			return
		}
	}
	it.e = nil
}
