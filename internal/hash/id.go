// Package hash provides the string hash internal/dictionary.Interner
// buckets candidate ids by, ahead of the exact string compare that
// resolves collisions.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of data. Equal strings always hash to the same
// ID; unequal strings may still collide, which is why Interner keeps the
// full string alongside each bucketed id rather than trusting the hash
// alone.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
