package treeset

import (
	"github.com/adt-go/adt/stack"
)

// Iterator walks a set in ascending order, forward-only and single-pass,
// keeping pending ancestors on an explicit stack since nodes have no
// parent pointers. Rewinding means calling Iter again.
type Iterator[T any] struct {
	current   *node[T]
	ancestors stack.Stack[*node[T]]
}

// Iter returns an iterator positioned at the smallest element.
func (s *Set[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{}
	it.current = it.firstInOrder(s.root)
	return it
}

// Next returns the element under the iterator and advances it in-order.
// It reports ok=false once the set is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.current == nil {
		var none T
		return none, false
	}
	elem := it.current.elem
	if it.current.right != nil {
		it.current = it.firstInOrder(it.current.right)
	} else if top, err := it.ancestors.Pop(); err == nil {
		it.current = top
	} else {
		it.current = nil
	}
	return elem, true
}

func (it *Iterator[T]) firstInOrder(p *node[T]) *node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		it.ancestors.Push(p)
		p = p.left
	}
	return p
}
