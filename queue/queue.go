package queue

import (
	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// Queue is a FIFO queue of elements of type T. The zero value is an empty
// queue, ready for use.
//
// Operations are:
//   - PushBack: generator, O(1)
//   - Front: partial observer, O(1)
//   - PopFront: partial mutator, O(1)
//   - Len, IsEmpty: observers, O(1)
type Queue[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New returns an empty queue. Equivalent to &Queue[T]{}.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// PushBack enqueues an element at the back.
func (q *Queue[T]) PushBack(elem T) {
	n := &node[T]{elem: elem}
	if q.last != nil {
		q.last.next = n
	}
	q.last = n
	if q.first == nil { // queue was empty; the new node is also the front
		q.first = n
	}
	q.size++
}

// Front returns the element PopFront would remove, without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyQueue, "cannot get front")
	}
	return q.first.elem, nil
}

// PopFront dequeues the front element and returns it. It is an error to pop
// an empty queue.
func (q *Queue[T]) PopFront() (T, error) {
	if q.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyQueue, "cannot pop")
	}
	front := q.first.elem
	q.first = q.first.next
	if q.first == nil { // queue became empty; there is no last either
		q.last = nil
	}
	q.size--
	return front, nil
}

// IsEmpty is true iff the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.first == nil
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int {
	return q.size
}
