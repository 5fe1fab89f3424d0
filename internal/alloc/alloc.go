package alloc

import (
	"sync"
	"unsafe"

	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/internal/pool"
)

// Allocator hands out byte slices aligned to a caller-chosen boundary and
// reclaims them once the caller is done. Alignment must be a power of two.
type Allocator interface {
	Allocate(size, alignment int) ([]byte, error)
	Release(buf []byte)
}

// DefaultAllocator backs Allocate with internal/pool's container buffer
// pool, so repeated writer runs reuse the same backing arrays instead of
// allocating fresh ones every time.
type DefaultAllocator struct {
	mu   sync.Mutex
	live map[uintptr]*pool.ByteBuffer
}

// NewDefaultAllocator returns a ready-to-use DefaultAllocator.
func NewDefaultAllocator() *DefaultAllocator {
	return &DefaultAllocator{live: make(map[uintptr]*pool.ByteBuffer)}
}

// Allocate returns a zeroed slice of size bytes whose backing array starts
// at an address that is a multiple of alignment.
func (a *DefaultAllocator) Allocate(size, alignment int) ([]byte, error) {
	if size < 0 {
		return nil, errs.Newf(errs.KindInvalidInput, "allocate: negative size %d", size)
	}
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, errs.Newf(errs.KindInvalidInput, "allocate: alignment %d is not a power of two", alignment)
	}
	if size == 0 {
		return []byte{}, nil
	}

	bb := pool.GetContainerBuffer()
	bb.Grow(size + alignment)
	bb.SetLength(size + alignment)

	base := bb.Bytes()
	addr := uintptr(unsafe.Pointer(&base[0]))
	pad := int((uintptr(alignment) - addr%uintptr(alignment)) % uintptr(alignment))
	aligned := base[pad : pad+size]

	for i := range aligned {
		aligned[i] = 0
	}

	a.mu.Lock()
	a.live[uintptr(unsafe.Pointer(&aligned[0]))] = bb
	a.mu.Unlock()

	return aligned, nil
}

// Release returns buf's backing buffer to the pool. Slices not obtained
// from Allocate, or already released, are ignored.
func (a *DefaultAllocator) Release(buf []byte) {
	if len(buf) == 0 {
		return
	}

	key := uintptr(unsafe.Pointer(&buf[0]))

	a.mu.Lock()
	bb, ok := a.live[key]
	if ok {
		delete(a.live, key)
	}
	a.mu.Unlock()

	if ok {
		pool.PutContainerBuffer(bb)
	}
}
