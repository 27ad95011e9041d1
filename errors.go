package adt

import "github.com/cockroachdb/errors"

// Error kinds shared by the container packages. One kind per failure class;
// containers wrap these with call-site context, so always test with
// errors.Is rather than equality.
var (
	// ErrEmptyTree flags access to the element or children of an empty tree.
	ErrEmptyTree = errors.New("tree is empty")

	// ErrEmptyList flags front/back access or removal on an empty list.
	ErrEmptyList = errors.New("list is empty")

	// ErrEmptyQueue flags front access or removal on an empty queue.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrEmptyStack flags top access or removal on an empty stack.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrFullStack flags a push onto a stack at fixed capacity.
	// Dynamically growing stacks never return it.
	ErrFullStack = errors.New("stack is full")

	// ErrBadKey flags lookup of a key that is not present.
	ErrBadKey = errors.New("no such key")

	// ErrInvalidAccess flags an out-of-range index or the use of an
	// exhausted iterator.
	ErrInvalidAccess = errors.New("invalid access")

	// ErrSyntax flags malformed textual input while parsing a container
	// from a token stream.
	ErrSyntax = errors.New("syntax error")
)
