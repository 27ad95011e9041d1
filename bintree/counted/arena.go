package counted

import "fmt"

// ref names a node inside an arena. The zero ref is the empty tree; live
// nodes are numbered from 1, so a ref indexes the arena's slab at ref-1.
type ref int32

// none is the ref of the empty tree.
const none ref = 0

// node is the unit of tree storage: an element, two child refs and the
// count of live references onto it. Children are set at allocation and
// never replaced, which is what makes sharing nodes between handles safe.
type node[T comparable] struct {
	elem  T
	left  ref
	right ref
	refs  int32
}

// Arena owns the node storage for a family of trees. The zero value is
// ready for use. Arenas are not safe for concurrent use.
type Arena[T comparable] struct {
	nodes []node[T]
	free  []ref // slots of freed nodes, ready for reuse
	live  int
	freed int
}

// NewArena returns an empty arena.
func NewArena[T comparable]() *Arena[T] {
	return &Arena[T]{}
}

// alloc claims a slot for a new node referencing the given children and
// registers the node as a reference holder of each non-empty child. The
// new node itself starts unreferenced; the caller registers the handle.
func (a *Arena[T]) alloc(left ref, elem T, right ref) ref {
	var r ref
	if n := len(a.free); n > 0 {
		r = a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[r-1] = node[T]{elem: elem, left: left, right: right}
	} else {
		a.nodes = append(a.nodes, node[T]{elem: elem, left: left, right: right})
		r = ref(len(a.nodes))
	}
	a.addRef(left)
	a.addRef(right)
	a.live++
	tracer().Debugf("alloc: node %d ⟨%v⟩, children %d | %d", r, elem, left, right)
	return r
}

func (a *Arena[T]) at(r ref) *node[T] {
	return &a.nodes[r-1]
}

func (a *Arena[T]) addRef(r ref) {
	if r == none {
		return
	}
	n := a.at(r)
	assertThat(n.refs >= 0, "negative reference count on node %d", r)
	n.refs++
}

// release drops one reference from the node at r. At zero the node's
// children are released in turn and the slot is recycled.
func (a *Arena[T]) release(r ref) {
	if r == none {
		return
	}
	n := a.at(r)
	assertThat(n.refs > 0, "release of unreferenced node %d", r)
	n.refs--
	if n.refs > 0 {
		return
	}
	tracer().Debugf("release: freeing node %d ⟨%v⟩", r, n.elem)
	left, right := n.left, n.right
	*n = node[T]{} // drop the element for good measure
	a.free = append(a.free, r)
	a.live--
	a.freed++
	a.release(left)
	a.release(right)
}

// Live returns the number of nodes currently reachable from some handle.
func (a *Arena[T]) Live() int {
	return a.live
}

// Freed returns the cumulative number of nodes released so far. Frees are
// counted per node, never per handle.
func (a *Arena[T]) Freed() int {
	return a.freed
}

// refCount returns the reference count of the node at r; for tests.
func (a *Arena[T]) refCount(r ref) int32 {
	if r == none {
		return 0
	}
	return a.at(r).refs
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("counted: "+msg, msgargs...)
		panic(msg)
	}
}
