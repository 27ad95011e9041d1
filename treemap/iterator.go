package treemap

import (
	"github.com/adt-go/adt/stack"
)

// Iterator walks a map's entries in ascending key order, forward-only and
// single-pass. Nodes have no parent pointers, so the iterator keeps the
// ancestors still pending a visit on an explicit stack. Mutating the map
// during iteration is undefined; rewinding means calling Iter again.
type Iterator[K any, V any] struct {
	current   *node[K, V]
	ancestors stack.Stack[*node[K, V]]
}

// Iter returns an iterator positioned at the smallest key.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	it.current = it.firstInOrder(m.root)
	return it
}

// IterFrom returns an iterator positioned at key, or, if key is absent,
// at the smallest key greater than it.
func (m *Map[K, V]) IterFrom(key K) *Iterator[K, V] {
	it := &Iterator[K, V]{}
	p := m.root
	for p != nil {
		switch {
		case m.less(key, p.key):
			// p is still pending once the left subtree is done
			it.ancestors.Push(p)
			p = p.left
		case m.less(p.key, key):
			p = p.right
		default:
			it.current = p
			return it
		}
	}
	// key absent; the nearest pending ancestor holds the next greater key
	if top, err := it.ancestors.Pop(); err == nil {
		it.current = top
	}
	return it
}

// Next returns the entry under the iterator and advances it in-order. It
// reports ok=false once the map is exhausted.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	if it.current == nil {
		var nk K
		var nv V
		return nk, nv, false
	}
	k, v := it.current.key, it.current.value
	if it.current.right != nil {
		// go down: the next entry is the leftmost of the right subtree
		it.current = it.firstInOrder(it.current.right)
	} else if top, err := it.ancestors.Pop(); err == nil {
		// go up: resume at the nearest pending ancestor
		it.current = top
	} else {
		it.current = nil // walked off the root
	}
	return k, v, true
}

// firstInOrder descends to the leftmost node of a subtree, stacking every
// node passed on the way down as a pending ancestor.
func (it *Iterator[K, V]) firstInOrder(p *node[K, V]) *node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		it.ancestors.Push(p)
		p = p.left
	}
	return p
}
