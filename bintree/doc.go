/*
Package bintree implements a binary tree with structural sharing.

A Tree is a lightweight handle onto immutable node storage: the subtrees
returned by Left and Right share their nodes with the parent instead of
copying them, which is safe because a node's children are never replaced
after construction. Node lifetime is owned by the garbage collector; a
node is reclaimed once no handle can reach it. The sibling package
bintree/counted realizes the same contract with explicit reference
counting instead.

Trees are intentionally unbalanced (there is no rebalancing logic) and
strictly single-threaded.
*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("adt.bintree")
}
