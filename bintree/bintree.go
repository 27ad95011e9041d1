package bintree

import (
	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// Tree is a handle onto a binary tree of elements of type T. It is a small
// value, meant to be passed and copied freely: copies reference the same
// nodes, they do not duplicate them. The zero value is the empty tree.
//
// Operations are:
//   - Empty, Leaf, Compose: generators
//   - Elem, Left, Right: partial observers, O(1)
//   - IsEmpty: observer, O(1)
type Tree[T comparable] struct {
	root *node[T]
}

// node is the unit of tree storage: an element plus two child references.
// Children are set at construction and never replaced afterwards; this
// structural immutability is what makes sharing nodes between handles safe.
type node[T comparable] struct {
	elem  T
	left  *node[T]
	right *node[T]
}

// Empty returns a tree with no nodes.
func Empty[T comparable]() Tree[T] {
	return Tree[T]{}
}

// Leaf returns a tree whose root holds elem and has no children.
func Leaf[T comparable](elem T) Tree[T] {
	return Tree[T]{root: &node[T]{elem: elem}}
}

// Compose returns a tree with elem at the root and the given trees as
// children. The children are shared with left and right, never copied, so
// Compose is O(1) regardless of their size.
func Compose[T comparable](left Tree[T], elem T, right Tree[T]) Tree[T] {
	return Tree[T]{root: &node[T]{elem: elem, left: left.root, right: right.root}}
}

// Elem returns the element at the root. It is an error to call it on an
// empty tree.
func (t Tree[T]) Elem() (T, error) {
	if t.IsEmpty() {
		var none T
		return none, errors.Wrap(adt.ErrEmptyTree, "cannot get element")
	}
	return t.root.elem, nil
}

// Left returns the left subtree as a handle sharing the child's nodes.
// It is an error to call it on an empty tree.
func (t Tree[T]) Left() (Tree[T], error) {
	if t.IsEmpty() {
		return Tree[T]{}, errors.Wrap(adt.ErrEmptyTree, "cannot get left subtree")
	}
	return Tree[T]{root: t.root.left}, nil
}

// Right returns the right subtree as a handle sharing the child's nodes.
// It is an error to call it on an empty tree.
func (t Tree[T]) Right() (Tree[T], error) {
	if t.IsEmpty() {
		return Tree[T]{}, errors.Wrap(adt.ErrEmptyTree, "cannot get right subtree")
	}
	return Tree[T]{root: t.root.right}, nil
}

// IsEmpty is true iff the handle references no node.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Equal reports whether two trees are structurally equal: equal in shape
// and in the elements at corresponding positions. Handles onto the very
// same node compare equal without walking the structure.
func (t Tree[T]) Equal(other Tree[T]) bool {
	return equalNodes(t.root, other.root)
}

func equalNodes[T comparable](a, b *node[T]) bool {
	if a == b {
		// covers "both empty" as well as shared identical nodes
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.elem == b.elem &&
		equalNodes(a.left, b.left) &&
		equalNodes(a.right, b.right)
}
