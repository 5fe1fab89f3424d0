// Package alloc provides an aligned byte-slice allocator for the writer's
// output buffer. Go's make does not guarantee an arbitrary alignment
// beyond the element type's natural alignment, so DefaultAllocator
// over-allocates and hands back a sub-slice whose backing array starts on
// the requested boundary.
package alloc
