package list

import (
	"fmt"
	"strings"

	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// List is a doubly-linked list of elements of type T. The zero value is an
// empty list, ready for use.
//
// Operations are:
//   - PushFront, PushBack: generators, O(1)
//   - Front, Back: partial observers, O(1)
//   - PopFront, PopBack: partial mutators, O(1)
//   - At: partial observer, O(n)
//   - Len, IsEmpty: observers, O(1)
type List[T any] struct {
	first *lnode[T]
	last  *lnode[T]
	size  int
}

type lnode[T any] struct {
	elem T
	next *lnode[T]
	prev *lnode[T]
}

// New returns an empty list. Equivalent to &List[T]{}.
func New[T any]() *List[T] {
	return &List[T]{}
}

// PushFront adds an element at the front.
func (l *List[T]) PushFront(elem T) {
	n := &lnode[T]{elem: elem, next: l.first}
	if l.first != nil {
		l.first.prev = n
	}
	l.first = n
	if l.last == nil { // list was empty; first is also last
		l.last = n
	}
	l.size++
}

// PushBack adds an element at the back.
func (l *List[T]) PushBack(elem T) {
	n := &lnode[T]{elem: elem, prev: l.last}
	if l.last != nil {
		l.last.next = n
	}
	l.last = n
	if l.first == nil { // list was empty; last is also first
		l.first = n
	}
	l.size++
}

// Front returns the first element. It is an error to call it on an empty
// list.
func (l *List[T]) Front() (T, error) {
	if l.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyList, "cannot get front")
	}
	return l.first.elem, nil
}

// Back returns the last element. It is an error to call it on an empty list.
func (l *List[T]) Back() (T, error) {
	if l.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyList, "cannot get back")
	}
	return l.last.elem, nil
}

// PopFront removes the first element. It is an error to call it on an empty
// list.
func (l *List[T]) PopFront() error {
	if l.IsEmpty() {
		return errors.Wrap(adt.ErrEmptyList, "cannot pop front")
	}
	l.first = l.first.next
	if l.first == nil { // list became empty; update last, too
		l.last = nil
	} else {
		l.first.prev = nil
	}
	l.size--
	return nil
}

// PopBack removes the last element. It is an error to call it on an empty
// list.
func (l *List[T]) PopBack() error {
	if l.IsEmpty() {
		return errors.Wrap(adt.ErrEmptyList, "cannot pop back")
	}
	l.last = l.last.prev
	if l.last == nil { // list became empty; update first, too
		l.first = nil
	} else {
		l.last.next = nil
	}
	l.size--
	return nil
}

// At returns the i-th element, counting from 0 at the front. Indices outside
// [0, Len()) are an invalid access.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var none T
		return none, errors.Wrapf(adt.ErrInvalidAccess, "index %d with length %d", i, l.size)
	}
	n := l.first
	for ; i > 0; i-- {
		n = n.next
	}
	return n.elem, nil
}

// IsEmpty is true iff the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.first == nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Slice returns the elements in list order as a fresh slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.first; n != nil; n = n.next {
		s = append(s, n.elem)
	}
	return s
}

// Equal reports whether two lists hold equal elements in the same order.
// The lists need not share storage to compare equal.
func Equal[T comparable](a, b *List[T]) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for p, q := a.first, b.first; p != nil; p, q = p.next, q.next {
		if p.elem != q.elem {
			return false
		}
	}
	return true
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for n := l.first; n != nil; n = n.next {
		if n != l.first {
			sb.WriteRune(' ')
		}
		fmt.Fprintf(&sb, "%v", n.elem)
	}
	sb.WriteRune(']')
	return sb.String()
}

// --- Iteration ---------------------------------------------------------

// Iterator is a forward-only, single-pass walk over a list. Mutating the
// list during iteration is undefined; rewinding means calling Iter again.
type Iterator[T any] struct {
	current *lnode[T]
}

// Iter returns an iterator positioned at the front of the list.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{current: l.first}
}

// Next returns the element under the iterator and advances it. It reports
// ok=false once the list is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.current == nil {
		var none T
		return none, false
	}
	elem := it.current.elem
	it.current = it.current.next
	return elem, true
}
