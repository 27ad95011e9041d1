package list

import (
	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// Single is a singly-linked list with head and tail pointers. It trades
// PopBack for one pointer less per node; everything else matches List.
// The zero value is an empty list.
type Single[T any] struct {
	head *snode[T]
	tail *snode[T]
	size int
}

type snode[T any] struct {
	elem T
	next *snode[T]
}

// PushFront adds an element at the front. O(1).
func (l *Single[T]) PushFront(elem T) {
	l.head = &snode[T]{elem: elem, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// PushBack adds an element at the back. O(1).
func (l *Single[T]) PushBack(elem T) {
	n := &snode[T]{elem: elem}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// Front returns the first element. It is an error to call it on an empty
// list.
func (l *Single[T]) Front() (T, error) {
	if l.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyList, "cannot get front")
	}
	return l.head.elem, nil
}

// PopFront removes the first element. It is an error to call it on an empty
// list.
func (l *Single[T]) PopFront() error {
	if l.IsEmpty() {
		return errors.Wrap(adt.ErrEmptyList, "cannot pop front")
	}
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return nil
}

// IsEmpty is true iff the list has no elements.
func (l *Single[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements.
func (l *Single[T]) Len() int {
	return l.size
}

// Slice returns the elements in list order as a fresh slice.
func (l *Single[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.elem)
	}
	return s
}
