/*
Package counted implements the shared-structure binary tree of package
bintree with explicit reference counting instead of garbage collection.

An Arena owns the node storage and a reference count per node; a Tree is
a handle made of the arena and a node index. Handles are registered and
unregistered explicitly: Clone registers an additional reference, Release
drops one, and a node whose count reaches zero is returned to the arena's
free list, recursively releasing its children. The arena's Live and Freed
counters make the freeing contract observable: a shared node is freed
exactly once, and only when no handle, including handles held internally
by parent nodes, can reach it.

Externally the two variants behave identically; this one exists to make
the ownership bookkeeping explicit and testable.
*/
package counted

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.counted'.
func tracer() tracing.Trace {
	return tracing.Select("adt.counted")
}
