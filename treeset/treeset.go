package treeset

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Less orders elements: it reports whether a sorts before b.
type Less[T any] func(a, b T) bool

// Set is an ordered set of elements of type T over an unbalanced binary
// search tree.
//
// Operations are:
//   - Add: generator, O(log n); no effect if the element is present
//   - Remove: mutator, O(log n); no effect if the element is absent
//   - Contains: observer, O(log n)
//   - Len, IsEmpty: observers, O(1)
type Set[T any] struct {
	root *node[T]
	size int
	less Less[T]
}

type node[T any] struct {
	elem  T
	left  *node[T]
	right *node[T]
}

// New returns an empty set for a naturally ordered element type.
func New[T constraints.Ordered]() *Set[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewFunc returns an empty set ordered by less.
func NewFunc[T any](less Less[T]) *Set[T] {
	return &Set[T]{less: less}
}

// Add puts an element into the set. It has no effect if the element is
// already present.
func (s *Set[T]) Add(elem T) {
	s.root = s.insert(s.root, elem)
}

func (s *Set[T]) insert(p *node[T], elem T) *node[T] {
	if p == nil {
		s.size++
		return &node[T]{elem: elem}
	}
	switch {
	case s.less(elem, p.elem):
		p.left = s.insert(p.left, elem)
	case s.less(p.elem, elem):
		p.right = s.insert(p.right, elem)
	}
	return p
}

// Remove takes an element out of the set. It has no effect if the element
// is absent.
func (s *Set[T]) Remove(elem T) {
	s.root = s.erase(s.root, elem)
}

func (s *Set[T]) erase(p *node[T], elem T) *node[T] {
	if p == nil {
		return nil
	}
	switch {
	case s.less(elem, p.elem):
		p.left = s.erase(p.left, elem)
		return p
	case s.less(p.elem, elem):
		p.right = s.erase(p.right, elem)
		return p
	}
	s.size--
	return eraseRoot(p)
}

// eraseRoot removes the root of a subtree and returns the new root. With
// two children, the smallest element of the right subtree is promoted.
func eraseRoot[T any](p *node[T]) *node[T] {
	if p.left == nil {
		return p.right
	}
	if p.right == nil {
		return p.left
	}
	min, rest := detachMin(p.right)
	p.elem = min.elem
	p.right = rest
	return p
}

func detachMin[T any](p *node[T]) (*node[T], *node[T]) {
	if p.left == nil {
		return p, p.right
	}
	var min *node[T]
	min, p.left = detachMin(p.left)
	return min, p
}

// Contains is true iff the element is in the set.
func (s *Set[T]) Contains(elem T) bool {
	p := s.root
	for p != nil {
		switch {
		case s.less(elem, p.elem):
			p = p.left
		case s.less(p.elem, elem):
			p = p.right
		default:
			return true
		}
	}
	return false
}

// IsEmpty is true iff the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.root == nil
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return s.size
}

// Slice returns the elements in ascending order as a fresh slice.
func (s *Set[T]) Slice() []T {
	elems := make([]T, 0, s.size)
	it := s.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		elems = append(elems, e)
	}
	return elems
}

// String renders the elements in ascending order; for debugging.
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	for i, e := range s.Slice() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteRune('}')
	return sb.String()
}
