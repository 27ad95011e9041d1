/*
Package hashmap implements a hash table with open hashing (separate
chaining): an array of bins, each holding a singly-linked chain of
entries. The table doubles its bin count once occupancy climbs past 80%,
so Put stays O(1) amortized.

Keys hash through a Hasher function; the defaults use xxhash for strings
and the identity for integer keys, and anything else hashes through its
fmt rendering. Iteration order is unspecified.
*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("adt.hashmap")
}
