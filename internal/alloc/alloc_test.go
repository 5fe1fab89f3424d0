package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAllocateReturnsAlignedSlice(t *testing.T) {
	require := require.New(t)

	a := NewDefaultAllocator()
	buf, err := a.Allocate(100, 16)
	require.NoError(err)
	require.Len(buf, 100)
	require.Zero(uintptr(unsafe.Pointer(&buf[0])) % 16)
}

func TestAllocateZeroSize(t *testing.T) {
	require := require.New(t)

	a := NewDefaultAllocator()
	buf, err := a.Allocate(0, 16)
	require.NoError(err)
	require.Empty(buf)
}

func TestAllocateRejectsNegativeSize(t *testing.T) {
	a := NewDefaultAllocator()
	_, err := a.Allocate(-1, 16)
	require.Error(t, err)
}

func TestAllocateRejectsNonPowerOfTwoAlignment(t *testing.T) {
	a := NewDefaultAllocator()
	_, err := a.Allocate(10, 3)
	require.Error(t, err)
}

func TestReleaseIsSafeOnUnknownSlice(t *testing.T) {
	a := NewDefaultAllocator()
	a.Release([]byte{1, 2, 3})
	a.Release(nil)
}

func TestAllocateThenReleaseAllowsReuse(t *testing.T) {
	require := require.New(t)

	a := NewDefaultAllocator()
	buf1, err := a.Allocate(64, 16)
	require.NoError(err)
	a.Release(buf1)

	buf2, err := a.Allocate(64, 16)
	require.NoError(err)
	require.Len(buf2, 64)
}
