package bignum

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// CacheLineSize is the alignment, in bytes, used by the default Allocator.
const CacheLineSize = 64

// Allocator hands out limb buffers. Alloc must return a zeroed slice whose
// length is exactly n; the caller owns it from then on.
type Allocator interface {
	Alloc(n int) []uint64
}

// AllocatorFunc adapts a plain function to the Allocator interface.
type AllocatorFunc func(n int) []uint64

func (f AllocatorFunc) Alloc(n int) []uint64 { return f(n) }

// AlignedAllocator returns buffers whose first limb sits on an Align-byte
// boundary. Align must be a power of two; values below 8 are treated as 8
// and zero means CacheLineSize.
type AlignedAllocator struct {
	Align int
}

func (a AlignedAllocator) Alloc(n int) []uint64 {
	align := a.Align
	if align == 0 {
		align = CacheLineSize
	} else if align < 8 {
		align = 8
	}
	if align&(align-1) != 0 {
		panic(fmt.Errorf("bignum: alignment %d is not a power of two", align))
	}

	// Over-allocate by one alignment unit and slice from the first aligned
	// limb. The Go heap does not move objects, so the offset stays valid.
	pad := align / 8
	buf := make([]uint64, n+pad)
	off := 0
	if rem := uintptr(unsafe.Pointer(&buf[0])) % uintptr(align); rem != 0 {
		off = int((uintptr(align) - rem) / 8)
	}
	return buf[off : off+n : off+n]
}

type allocatorHolder struct{ a Allocator }

var allocator atomic.Value

func init() {
	allocator.Store(allocatorHolder{AlignedAllocator{Align: CacheLineSize}})
}

// SetAllocator replaces the Allocator used for every subsequent limb buffer.
// Passing nil restores the default cache-line aligned allocator. It is safe
// to call concurrently with arithmetic, though buffers already handed out
// are not affected.
func SetAllocator(a Allocator) {
	if a == nil {
		a = AlignedAllocator{Align: CacheLineSize}
	}
	allocator.Store(allocatorHolder{a})
}

func allocLimbs(n int) []uint64 {
	a := allocator.Load().(allocatorHolder).a
	buf := a.Alloc(n)
	if len(buf) != n {
		panic(fmt.Errorf("bignum: allocator returned %d limbs, expected %d", len(buf), n))
	}
	return buf
}
