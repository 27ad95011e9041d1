package hashmap

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

// defaultHasher picks a hash function for the key type: xxhash over the
// bytes for strings, the identity for the integer kinds, and xxhash over
// the fmt rendering for everything else.
func defaultHasher[K comparable]() Hasher[K] {
	var zero K
	switch any(zero).(type) {
	case string:
		return func(k K) uint64 { return xxhash.Sum64String(any(k).(string)) }
	case int:
		return func(k K) uint64 { return uint64(any(k).(int)) }
	case int32:
		return func(k K) uint64 { return uint64(any(k).(int32)) }
	case int64:
		return func(k K) uint64 { return uint64(any(k).(int64)) }
	case uint:
		return func(k K) uint64 { return uint64(any(k).(uint)) }
	case uint32:
		return func(k K) uint64 { return uint64(any(k).(uint32)) }
	case uint64:
		return func(k K) uint64 { return any(k).(uint64) }
	default:
		return func(k K) uint64 { return xxhash.Sum64String(fmt.Sprintf("%v", k)) }
	}
}
