package hash

import "github.com/cespare/xxhash/v2"

// Hash32 computes the xxHash64 of data and folds it to 32 bits by XOR-ing
// the high and low halves. Used for the container preamble's integrity
// hash field, which is 32 bits wide.
func Hash32(data []byte) uint32 {
	sum := xxhash.Sum64(data)
	return uint32(sum) ^ uint32(sum>>32)
}
