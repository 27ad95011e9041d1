package counted

import (
	"github.com/adt-go/adt/list"
	"github.com/adt-go/adt/queue"
)

// --- Traversals --------------------------------------------------------
//
// Same contract as the garbage-collected variant: a fresh list per call,
// owned by the caller, O(n). Traversals walk refs directly and register no
// references; nothing escapes.

// PreOrder lists the elements value-first: root, then left subtree, then
// right subtree.
func (t Tree[T]) PreOrder() *list.List[T] {
	acc := list.New[T]()
	t.arena.preOrder(t.root, acc)
	return acc
}

// InOrder lists the elements left subtree first, then root, then right
// subtree.
func (t Tree[T]) InOrder() *list.List[T] {
	acc := list.New[T]()
	t.arena.inOrder(t.root, acc)
	return acc
}

// PostOrder lists the elements children-first: left subtree, then right
// subtree, then root.
func (t Tree[T]) PostOrder() *list.List[T] {
	acc := list.New[T]()
	t.arena.postOrder(t.root, acc)
	return acc
}

func (a *Arena[T]) preOrder(r ref, acc *list.List[T]) {
	if r == none {
		return
	}
	n := a.at(r)
	acc.PushBack(n.elem)
	a.preOrder(n.left, acc)
	a.preOrder(n.right, acc)
}

func (a *Arena[T]) inOrder(r ref, acc *list.List[T]) {
	if r == none {
		return
	}
	n := a.at(r)
	a.inOrder(n.left, acc)
	acc.PushBack(n.elem)
	a.inOrder(n.right, acc)
}

func (a *Arena[T]) postOrder(r ref, acc *list.List[T]) {
	if r == none {
		return
	}
	n := a.at(r)
	a.postOrder(n.left, acc)
	a.postOrder(n.right, acc)
	acc.PushBack(n.elem)
}

// Levels lists the elements breadth-first, level by level, each level left
// to right. Pending refs are staged on a FIFO queue.
func (t Tree[T]) Levels() *list.List[T] {
	acc := list.New[T]()
	if t.IsEmpty() {
		return acc
	}
	pending := queue.New[ref]()
	pending.PushBack(t.root)
	for !pending.IsEmpty() {
		current, _ := pending.PopFront() // cannot fail, loop guards emptiness
		n := t.arena.at(current)
		acc.PushBack(n.elem)
		if n.left != none {
			pending.PushBack(n.left)
		}
		if n.right != none {
			pending.PushBack(n.right)
		}
	}
	return acc
}

// --- Structural queries ------------------------------------------------

// NodeCount returns the number of nodes in the tree. O(n).
func (t Tree[T]) NodeCount() int {
	return t.arena.nodeCount(t.root)
}

func (a *Arena[T]) nodeCount(r ref) int {
	if r == none {
		return 0
	}
	n := a.at(r)
	return 1 + a.nodeCount(n.left) + a.nodeCount(n.right)
}

// Depth returns the number of levels in the tree; 0 for the empty tree.
// O(n).
func (t Tree[T]) Depth() int {
	return t.arena.depth(t.root)
}

func (a *Arena[T]) depth(r ref) int {
	if r == none {
		return 0
	}
	n := a.at(r)
	l, rr := a.depth(n.left), a.depth(n.right)
	if l > rr {
		return 1 + l
	}
	return 1 + rr
}

// LeafCount returns the number of nodes without children. O(n).
func (t Tree[T]) LeafCount() int {
	return t.arena.leafCount(t.root)
}

func (a *Arena[T]) leafCount(r ref) int {
	if r == none {
		return 0
	}
	n := a.at(r)
	if n.left == none && n.right == none {
		return 1
	}
	return a.leafCount(n.left) + a.leafCount(n.right)
}
