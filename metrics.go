package vector

import "unsafe"

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	var zero T
	return v.length * int(unsafe.Sizeof(zero))
}

// CapacityBytes returns the size in bytes of the current region.
// Zero-size element types always report 0.
func (v *Vector[T]) CapacityBytes() int {
	var zero T
	return v.capacity * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live elements to slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.length) / float64(v.capacity)
}

// Grows returns how many times the vector has obtained a larger region.
func (v *Vector[T]) Grows() int {
	return v.grows
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Grows:       v.Grows(),
		SizeInUse:   v.SizeInUse(),
		Capacity:    v.CapacityBytes(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Slots in the region
	Grows       int     // Growth events so far
	SizeInUse   int     // Bytes held by live elements
	Capacity    int     // Region size in bytes
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}
