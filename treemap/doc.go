/*
Package treemap implements an ordered map over an unbalanced binary
search tree.

No rebalancing is done: operations are O(log n) only for random-ish
insertion orders and degrade to O(n) on sorted input; this is the
intended trade-off of a teaching container. Nodes carry no parent
pointers, so the in-order iterator keeps its pending ancestors on an
explicit stack; rewinding means constructing a fresh iterator.
*/
package treemap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.treemap'.
func tracer() tracing.Trace {
	return tracing.Select("adt.treemap")
}
