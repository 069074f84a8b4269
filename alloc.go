package vector

import (
	"math"
	"math/bits"
	"runtime"
	"unsafe"
)

// maxRegionBytes is the largest region, in bytes, the vector will request.
const maxRegionBytes = math.MaxInt

// layout describes a region: its size in bytes and the alignment of its slots.
type layout struct {
	size  uintptr
	align uintptr
}

// arrayLayout returns the layout of a region holding n slots of T.
// It fails with ErrCapacityOverflow if the byte size does not fit in an int.
func arrayLayout[T any](n int) (layout, error) {
	var zero T
	align := unsafe.Alignof(zero)
	if n < 0 {
		return layout{align: align}, ErrCapacityOverflow
	}
	stride := alignUp(unsafe.Sizeof(zero), align)
	hi, lo := bits.Mul64(uint64(n), uint64(stride))
	if hi != 0 || lo > maxRegionBytes {
		return layout{align: align}, ErrCapacityOverflow
	}
	return layout{size: uintptr(lo), align: align}, nil
}

// alignUp rounds off up to the next multiple of align (a power of two).
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}

// slots returns how many T fit in size bytes.
func slots[T any](size uintptr) int {
	var zero T
	stride := alignUp(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if stride == 0 {
		return 0
	}
	return int(size / stride)
}

// zerobase backs every zero-byte region. It is never read or written as a T.
var zerobase uintptr

// dangling returns the non-dereferenceable sentinel used for zero-byte regions.
func dangling() unsafe.Pointer {
	return unsafe.Pointer(&zerobase)
}

// allocator is the set of raw region primitives a Vector is built on.
// Implementations never see zero-byte requests.
type allocator interface {
	// allocate obtains a fresh region of l.size bytes aligned to l.align.
	allocate(l layout) (unsafe.Pointer, error)
	// reallocate resizes the region at p, preserving its leading
	// min(old.size, newSize) bytes. On error the old region is untouched.
	reallocate(p unsafe.Pointer, old layout, newSize uintptr) (unsafe.Pointer, error)
	// deallocate releases a region previously returned by allocate or
	// reallocate. l must be the layout it was obtained with.
	deallocate(p unsafe.Pointer, l layout)
}

// heap allocates regions from the Go heap.
//
// Regions are typed as []T rather than []byte so the garbage collector can
// see any pointers stored in the slots. A released region is cleared so the
// values it used to hold are not kept reachable through stale copies.
type heap[T any] struct{}

func (heap[T]) allocate(l layout) (p unsafe.Pointer, err error) {
	defer catchRefusal(&err)
	s := make([]T, slots[T](l.size))
	return unsafe.Pointer(unsafe.SliceData(s)), nil
}

func (heap[T]) reallocate(p unsafe.Pointer, old layout, newSize uintptr) (np unsafe.Pointer, err error) {
	defer catchRefusal(&err)
	s := make([]T, slots[T](newSize))
	prev := unsafe.Slice((*T)(p), slots[T](old.size))
	copy(s, prev)
	// The old slots were moved from; nothing may observe them again.
	clear(prev)
	return unsafe.Pointer(unsafe.SliceData(s)), nil
}

func (heap[T]) deallocate(p unsafe.Pointer, l layout) {
	clear(unsafe.Slice((*T)(p), slots[T](l.size)))
}

// catchRefusal turns the runtime's refusal of an oversized make into
// ErrOutOfMemory. Any other panic is re-raised.
func catchRefusal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(runtime.Error); ok {
		*err = ErrOutOfMemory
		return
	}
	panic(r)
}
