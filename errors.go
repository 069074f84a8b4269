package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityOverflow is returned when the next capacity, or its size in
	// bytes, cannot be represented.
	ErrCapacityOverflow = errors.New("vector: capacity overflow")

	// ErrOutOfMemory is returned when the allocator refuses a region.
	ErrOutOfMemory = errors.New("vector: out of memory")
)

// AllocError reports a failed growth. The vector it came from is unchanged.
type AllocError struct {
	Op    string  // "allocate" or "reallocate"
	Cap   int     // requested capacity, or the current one if it cannot double
	Size  uintptr // requested region size in bytes, 0 if it overflowed
	Align uintptr // slot alignment
	Err   error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("vector: %s %d elements (%d bytes, align %d): %v", e.Op, e.Cap, e.Size, e.Align, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }
