package stack

import (
	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// initialCapacity is the size of the backing array of a fresh stack.
const initialCapacity = 10

// Stack is a LIFO stack of elements of type T over a growing array.
// The zero value is an empty stack.
//
// Operations are:
//   - Push: generator, O(1) amortized
//   - Pop, Top: partial, O(1)
//   - Len, IsEmpty: observers, O(1)
type Stack[T any] struct {
	data []T
}

// New returns an empty stack with room for a few elements.
func New[T any]() *Stack[T] {
	return &Stack[T]{data: make([]T, 0, initialCapacity)}
}

// Push puts an element on top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.data = append(s.data, elem)
}

// Pop removes the top-most element and returns it. It is an error to pop an
// empty stack.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyStack, "cannot pop")
	}
	top := s.data[len(s.data)-1]
	var zero T
	s.data[len(s.data)-1] = zero // release the element to the GC
	s.data = s.data[:len(s.data)-1]
	return top, nil
}

// Top returns the element Pop would remove, without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyStack, "cannot get top")
	}
	return s.data[len(s.data)-1], nil
}

// IsEmpty is true iff the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return len(s.data)
}

// Clone returns a stack with the same elements. The two stacks do not share
// storage afterwards.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{data: make([]T, len(s.data), cap(s.data))}
	copy(c.data, s.data)
	return c
}
