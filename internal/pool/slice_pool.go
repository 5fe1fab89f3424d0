package pool

import (
	"sync"

	"github.com/skelcodec/animclip/vecmath"
)

// Slice pools for efficient reuse of typed slices. These back the
// per-bone rotation/translation sample buffers a bone stream is built
// from, so a compression pass over many bones does not allocate a fresh
// slice per bone.
var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
	quatSlicePool = sync.Pool{
		New: func() any { return &[]vecmath.Quat{} },
	}
	vec3SlicePool = sync.Pool{
		New: func() any { return &[]vecmath.Vec3{} },
	}
)

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	values, cleanup := pool.GetFloat64Slice(1000)
//	defer cleanup()
//	// Use values slice...
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { float64SlicePool.Put(ptr) }
}

// GetQuatSlice retrieves and resizes a vecmath.Quat slice from the pool.
// Used for a bone stream's rotation sample sequence.
func GetQuatSlice(size int) ([]vecmath.Quat, func()) {
	ptr, _ := quatSlicePool.Get().(*[]vecmath.Quat)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]vecmath.Quat, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { quatSlicePool.Put(ptr) }
}

// GetVec3Slice retrieves and resizes a vecmath.Vec3 slice from the pool.
// Used for a bone stream's translation sample sequence.
func GetVec3Slice(size int) ([]vecmath.Vec3, func()) {
	ptr, _ := vec3SlicePool.Get().(*[]vecmath.Vec3)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]vecmath.Vec3, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { vec3SlicePool.Put(ptr) }
}
