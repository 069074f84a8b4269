// Package vector implements a growable contiguous array on top of raw
// region primitives. Typical usage: create a vector, Append to it, and
// Drop it when done so every element's cleanup hook runs exactly once.
package vector

import (
	"math"
	"reflect"
	"unsafe"

	"go.uber.org/zap"
)

// MinCapacity is the capacity of the first region a vector allocates.
const MinCapacity = 4

// maxCapacity is the largest capacity that can still be doubled.
const maxCapacity = math.MaxInt / 2

// Dropper is implemented by element types that need cleanup when the vector
// holding them is dropped. Drop is called on a pointer to the slot.
type Dropper interface {
	Drop()
}

// Vector is a growable array of T. Not goroutine-safe.
//
// Slots [0, length) hold live values; slots [length, capacity) hold none.
// T must be movable by memory copy: the region is relocated in bulk when it
// grows, without any per-element hook.
//
// A Vector owns its region and must not be copied. Store *Vector in other
// containers, including other vectors.
type Vector[T any] struct {
	base     unsafe.Pointer // region start; nil while capacity == 0
	region   layout         // layout base was obtained with
	capacity int
	length   int

	alloc    allocator
	drop     func(*T)
	logger   *zap.Logger
	grows    int
	released bool
}

// New creates an empty vector. No memory is allocated until the first Append.
// If *T implements Dropper, its Drop method runs on every slot when the
// vector is dropped. Otherwise, if T itself implements Dropper (a pointer
// type such as *Vector[U]), Drop runs on every non-nil element.
func New[T any](opts ...Option) *Vector[T] {
	var drop func(*T)
	var zero T
	if _, ok := any(&zero).(Dropper); ok {
		drop = func(p *T) { any(p).(Dropper).Drop() }
	} else if _, ok := any(zero).(Dropper); ok {
		drop = func(p *T) {
			if d := any(*p).(Dropper); !isNilPointer(d) {
				d.Drop()
			}
		}
	}
	return NewFunc(drop, opts...)
}

// NewFunc creates an empty vector that calls drop on every live element
// when the vector is dropped. A nil drop disables element cleanup.
func NewFunc[T any](drop func(*T), opts ...Option) *Vector[T] {
	o := buildOptions(opts)
	return &Vector[T]{
		alloc:  heap[T]{},
		drop:   drop,
		logger: o.logger,
	}
}

// Append moves value into the vector, growing the region if it is full.
// If the region cannot grow, the failure is logged and Append panics with
// an *AllocError; the vector is left as it was.
func (v *Vector[T]) Append(value T) {
	if err := v.TryAppend(value); err != nil {
		v.logger.Error("append failed",
			zap.Int("len", v.length),
			zap.Int("cap", v.capacity),
			zap.Error(err))
		panic(err)
	}
}

// TryAppend is like Append but returns an *AllocError instead of panicking
// when the region cannot grow. On error the vector is unchanged and value is
// not stored.
func (v *Vector[T]) TryAppend(value T) error {
	v.panicIfReleased()
	if v.length == v.capacity {
		if err := v.grow(); err != nil {
			return err
		}
	}
	*v.slot(v.length) = value
	v.length++
	return nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of slots in the current region.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// Drop runs the element cleanup hook on every live element in index order,
// then releases the region. Drop is idempotent; any later Append panics.
//
// If a hook panics, the remaining elements are still dropped and the region
// is still released before the panic continues.
//
// A nil *Vector is a no-op, so vectors of *Vector may hold nil elements.
func (v *Vector[T]) Drop() {
	if v == nil || v.released {
		return
	}
	v.released = true
	n := v.length
	// From here on no slot is live as far as the vector is concerned.
	v.length = 0
	defer v.release()
	v.dropRange(0, n)
}

// dropRange runs the hook on slots [from, to).
func (v *Vector[T]) dropRange(from, to int) {
	if v.drop == nil {
		return
	}
	i := from
	defer func() {
		if i < to {
			// The hook panicked on slot i; finish the rest on the way out.
			v.dropRange(i+1, to)
		}
	}()
	for ; i < to; i++ {
		v.drop(v.slot(i))
	}
}

// release hands the region back to the allocator.
func (v *Vector[T]) release() {
	if v.region.size != 0 {
		v.alloc.deallocate(v.base, v.region)
		v.logger.Debug("region released",
			zap.Int("cap", v.capacity),
			zap.Uintptr("bytes", v.region.size))
	}
	v.base = nil
	v.region = layout{}
	v.capacity = 0
}

// grow makes room for at least one more element. The first region holds
// MinCapacity slots; every later one doubles the capacity.
// base, region and capacity are updated together, and only on success.
func (v *Vector[T]) grow() error {
	newCap := MinCapacity
	op := "allocate"
	if v.capacity != 0 {
		op = "reallocate"
		if v.capacity > maxCapacity {
			return v.allocError(op, v.capacity, ErrCapacityOverflow)
		}
		newCap = v.capacity * 2
	}

	newLayout, err := arrayLayout[T](newCap)
	if err != nil {
		return v.allocError(op, newCap, err)
	}

	var p unsafe.Pointer
	switch {
	case newLayout.size == 0:
		// Zero-size elements: track capacity, never touch the allocator.
		p = dangling()
	case v.region.size == 0:
		p, err = v.alloc.allocate(newLayout)
	default:
		p, err = v.alloc.reallocate(v.base, v.region, newLayout.size)
	}
	if err == nil && p == nil {
		err = ErrOutOfMemory
	}
	if err != nil {
		return &AllocError{Op: op, Cap: newCap, Size: newLayout.size, Align: newLayout.align, Err: err}
	}

	v.base = p
	v.region = newLayout
	v.capacity = newCap
	v.grows++
	v.logger.Debug("vector grew",
		zap.String("op", op),
		zap.Int("len", v.length),
		zap.Int("cap", newCap),
		zap.Uintptr("bytes", newLayout.size))
	return nil
}

func (v *Vector[T]) allocError(op string, capacity int, err error) *AllocError {
	var zero T
	return &AllocError{Op: op, Cap: capacity, Align: unsafe.Alignof(zero), Err: err}
}

// slot returns a pointer to slot i. The caller guarantees i < capacity.
func (v *Vector[T]) slot(i int) *T {
	var zero T
	return (*T)(unsafe.Add(v.base, uintptr(i)*unsafe.Sizeof(zero)))
}

// panicIfReleased panics if the vector has been dropped.
func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vector: use after Drop()")
	}
}

// isNilPointer reports whether d holds a nil pointer.
func isNilPointer(d Dropper) bool {
	rv := reflect.ValueOf(d)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
