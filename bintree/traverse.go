package bintree

import (
	"github.com/adt-go/adt/list"
	"github.com/adt-go/adt/queue"
)

// --- Traversals --------------------------------------------------------
//
// All four produce a fresh list of elements, owned by the caller, in O(n).

// PreOrder lists the elements value-first: root, then left subtree, then
// right subtree.
func (t Tree[T]) PreOrder() *list.List[T] {
	acc := list.New[T]()
	preOrder(t.root, acc)
	return acc
}

// InOrder lists the elements left subtree first, then root, then right
// subtree.
func (t Tree[T]) InOrder() *list.List[T] {
	acc := list.New[T]()
	inOrder(t.root, acc)
	return acc
}

// PostOrder lists the elements children-first: left subtree, then right
// subtree, then root.
func (t Tree[T]) PostOrder() *list.List[T] {
	acc := list.New[T]()
	postOrder(t.root, acc)
	return acc
}

func preOrder[T comparable](root *node[T], acc *list.List[T]) {
	if root == nil {
		return
	}
	acc.PushBack(root.elem)
	preOrder(root.left, acc)
	preOrder(root.right, acc)
}

func inOrder[T comparable](root *node[T], acc *list.List[T]) {
	if root == nil {
		return
	}
	inOrder(root.left, acc)
	acc.PushBack(root.elem)
	inOrder(root.right, acc)
}

func postOrder[T comparable](root *node[T], acc *list.List[T]) {
	if root == nil {
		return
	}
	postOrder(root.left, acc)
	postOrder(root.right, acc)
	acc.PushBack(root.elem)
}

// Levels lists the elements breadth-first, level by level, each level left
// to right. Pending nodes are staged on a FIFO queue.
func (t Tree[T]) Levels() *list.List[T] {
	acc := list.New[T]()
	if t.IsEmpty() {
		return acc
	}
	pending := queue.New[*node[T]]()
	pending.PushBack(t.root)
	for !pending.IsEmpty() {
		current, _ := pending.PopFront() // cannot fail, loop guards emptiness
		acc.PushBack(current.elem)
		if current.left != nil {
			pending.PushBack(current.left)
		}
		if current.right != nil {
			pending.PushBack(current.right)
		}
	}
	return acc
}

// --- Structural queries ------------------------------------------------

// NodeCount returns the number of nodes in the tree. O(n).
func (t Tree[T]) NodeCount() int {
	return nodeCount(t.root)
}

func nodeCount[T comparable](root *node[T]) int {
	if root == nil {
		return 0
	}
	return 1 + nodeCount(root.left) + nodeCount(root.right)
}

// Depth returns the number of levels in the tree; 0 for the empty tree.
// O(n).
func (t Tree[T]) Depth() int {
	return depth(t.root)
}

func depth[T comparable](root *node[T]) int {
	if root == nil {
		return 0
	}
	l, r := depth(root.left), depth(root.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// LeafCount returns the number of nodes without children. O(n).
func (t Tree[T]) LeafCount() int {
	return leafCount(t.root)
}

func leafCount[T comparable](root *node[T]) int {
	if root == nil {
		return 0
	}
	if root.left == nil && root.right == nil {
		return 1
	}
	return leafCount(root.left) + leafCount(root.right)
}
