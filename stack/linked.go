package stack

import (
	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// Linked is a LIFO stack over a linked list of nodes. Same surface as
// Stack, but every Push allocates a node and nothing ever shrinks or grows
// in bulk. The zero value is an empty stack.
type Linked[T any] struct {
	top  *node[T]
	size int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// Push puts an element on top of the stack. O(1).
func (s *Linked[T]) Push(elem T) {
	s.top = &node[T]{elem: elem, next: s.top}
	s.size++
}

// Pop removes the top-most element and returns it. It is an error to pop an
// empty stack.
func (s *Linked[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyStack, "cannot pop")
	}
	top := s.top.elem
	s.top = s.top.next
	s.size--
	return top, nil
}

// Top returns the element Pop would remove, without removing it.
func (s *Linked[T]) Top() (T, error) {
	if s.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyStack, "cannot get top")
	}
	return s.top.elem, nil
}

// IsEmpty is true iff the stack has no elements.
func (s *Linked[T]) IsEmpty() bool {
	return s.top == nil
}

// Len returns the number of elements.
func (s *Linked[T]) Len() int {
	return s.size
}
