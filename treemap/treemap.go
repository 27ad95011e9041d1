package treemap

import (
	"fmt"
	"strings"

	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Less orders keys: it reports whether a sorts before b. Keys compare
// equal when neither sorts before the other.
type Less[K any] func(a, b K) bool

// Map is an ordered map from keys of type K to values of type V, over an
// unbalanced binary search tree.
//
// Operations are:
//   - Put: generator, O(log n)
//   - Get, At, Contains: observers, O(log n)
//   - Delete: mutator, O(log n)
//   - Len, IsEmpty: observers, O(1)
type Map[K any, V any] struct {
	root *node[K, V]
	size int
	less Less[K]
}

type node[K any, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// New returns an empty map for a naturally ordered key type.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b })
}

// NewFunc returns an empty map ordered by less.
func NewFunc[K any, V any](less Less[K]) *Map[K, V] {
	return &Map[K, V]{less: less}
}

// Put adds a key/value pair. If the key is already present its value is
// replaced.
func (m *Map[K, V]) Put(key K, value V) {
	m.root = m.insert(m.root, key, value)
}

func (m *Map[K, V]) insert(p *node[K, V], key K, value V) *node[K, V] {
	if p == nil {
		m.size++
		return &node[K, V]{key: key, value: value}
	}
	switch {
	case m.less(key, p.key):
		p.left = m.insert(p.left, key, value)
	case m.less(p.key, key):
		p.right = m.insert(p.right, key, value)
	default:
		p.value = value
	}
	return p
}

// Get returns the value for a key, and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if p := m.find(key); p != nil {
		return p.value, true
	}
	var none V
	return none, false
}

// At returns the value for a key that must be present; absence is an
// error. Use Get or Contains if unsure.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, errors.Wrapf(adt.ErrBadKey, "key %v", key)
	}
	return v, nil
}

// Contains is true iff the key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) != nil
}

func (m *Map[K, V]) find(key K) *node[K, V] {
	p := m.root
	for p != nil {
		switch {
		case m.less(key, p.key):
			p = p.left
		case m.less(p.key, key):
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Delete removes a key. It has no effect if the key is absent.
func (m *Map[K, V]) Delete(key K) {
	m.root = m.erase(m.root, key)
}

func (m *Map[K, V]) erase(p *node[K, V], key K) *node[K, V] {
	if p == nil {
		return nil
	}
	switch {
	case m.less(key, p.key):
		p.left = m.erase(p.left, key)
		return p
	case m.less(p.key, key):
		p.right = m.erase(p.right, key)
		return p
	}
	m.size--
	tracer().Debugf("erase: removing node ⟨%v⟩", p.key)
	return eraseRoot(p)
}

// eraseRoot removes the root of a subtree and returns the new root. With
// two children, the smallest key of the right subtree is promoted.
func eraseRoot[K any, V any](p *node[K, V]) *node[K, V] {
	if p.left == nil {
		return p.right
	}
	if p.right == nil {
		return p.left
	}
	min, rest := detachMin(p.right)
	p.key, p.value = min.key, min.value
	p.right = rest
	return p
}

// detachMin unlinks the leftmost node of a non-empty subtree and returns
// it along with the remaining subtree.
func detachMin[K any, V any](p *node[K, V]) (*node[K, V], *node[K, V]) {
	if p.left == nil {
		return p, p.right
	}
	var min *node[K, V]
	min, p.left = detachMin(p.left)
	return min, p
}

// IsEmpty is true iff the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// String renders the entries in key order; for debugging.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	first := true
	it := m.Iter()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v -> %v", k, v)
		first = false
	}
	sb.WriteRune('}')
	return sb.String()
}
