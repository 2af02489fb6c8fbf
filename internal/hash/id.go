// Package hash provides the xxHash64 wrapper used to derive cheap,
// fixed-width identity keys during cycle detection.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
