package counted

import (
	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// Tree is a handle onto a tree inside an arena. The zero value is an empty
// tree bound to no arena. Unlike the garbage-collected variant, handles
// are duplicated with Clone and given up with Release; plain Go assignment
// of a Tree does NOT register a reference and must not outlive the
// original.
type Tree[T comparable] struct {
	arena *Arena[T]
	root  ref
}

// Empty returns a tree with no nodes.
func (a *Arena[T]) Empty() Tree[T] {
	return Tree[T]{arena: a}
}

// Leaf returns a tree whose root holds elem and has no children.
func (a *Arena[T]) Leaf(elem T) Tree[T] {
	r := a.alloc(none, elem, none)
	a.addRef(r)
	return Tree[T]{arena: a, root: r}
}

// Compose returns a tree with elem at the root and the given trees as
// children. The children are shared, never copied: the new node registers
// itself as one more reference holder of each. Non-empty children must
// live in this arena.
func (a *Arena[T]) Compose(left Tree[T], elem T, right Tree[T]) Tree[T] {
	assertThat(left.root == none || left.arena == a, "compose of tree from foreign arena")
	assertThat(right.root == none || right.arena == a, "compose of tree from foreign arena")
	r := a.alloc(left.root, elem, right.root)
	a.addRef(r)
	return Tree[T]{arena: a, root: r}
}

// Clone returns a handle onto the same tree, registering an additional
// reference on the root node.
func (t Tree[T]) Clone() Tree[T] {
	if t.root != none {
		t.arena.addRef(t.root)
	}
	return t
}

// Release gives up this handle's reference. If the root's count drops to
// zero the node is freed, cascading into children no other handle or
// parent can reach. The handle becomes the empty tree; releasing an empty
// tree is a no-op.
func (t *Tree[T]) Release() {
	if t.arena == nil || t.root == none {
		return
	}
	t.arena.release(t.root)
	t.root = none
}

// Elem returns the element at the root. It is an error to call it on an
// empty tree.
func (t Tree[T]) Elem() (T, error) {
	if t.IsEmpty() {
		var void T
		return void, errors.Wrap(adt.ErrEmptyTree, "cannot get element")
	}
	return t.arena.at(t.root).elem, nil
}

// Left returns the left subtree as a new handle sharing the child node,
// registering one more reference on it. It is an error to call it on an
// empty tree.
func (t Tree[T]) Left() (Tree[T], error) {
	if t.IsEmpty() {
		return Tree[T]{arena: t.arena}, errors.Wrap(adt.ErrEmptyTree, "cannot get left subtree")
	}
	child := t.arena.at(t.root).left
	t.arena.addRef(child)
	return Tree[T]{arena: t.arena, root: child}, nil
}

// Right returns the right subtree as a new handle sharing the child node,
// registering one more reference on it. It is an error to call it on an
// empty tree.
func (t Tree[T]) Right() (Tree[T], error) {
	if t.IsEmpty() {
		return Tree[T]{arena: t.arena}, errors.Wrap(adt.ErrEmptyTree, "cannot get right subtree")
	}
	child := t.arena.at(t.root).right
	t.arena.addRef(child)
	return Tree[T]{arena: t.arena, root: child}, nil
}

// IsEmpty is true iff the handle references no node.
func (t Tree[T]) IsEmpty() bool {
	return t.root == none
}

// Equal reports whether two trees are structurally equal: equal in shape
// and in the elements at corresponding positions. Handles onto the very
// same node of the same arena compare equal without walking the structure.
func (t Tree[T]) Equal(other Tree[T]) bool {
	return equalNodes(t.arena, t.root, other.arena, other.root)
}

func equalNodes[T comparable](a *Arena[T], r ref, b *Arena[T], s ref) bool {
	if r == none && s == none {
		return true
	}
	if a == b && r == s {
		// identity implies structural equality
		return true
	}
	if r == none || s == none {
		return false
	}
	an, bn := a.at(r), b.at(s)
	return an.elem == bn.elem &&
		equalNodes(a, an.left, b, bn.left) &&
		equalNodes(a, an.right, b, bn.right)
}
