// Package vector implements a growable contiguous array built directly on
// raw region primitives (allocate, reallocate, deallocate) instead of the
// built-in append.
//
// # Overview
//
// A Vector owns one contiguous region sized for Cap() elements, of which the
// first Len() hold live values. Appending to a full vector grows the region:
// the first region holds MinCapacity slots and every later one doubles, so a
// sequence of N appends costs O(N) in total.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Drop() // Run element cleanup and release the region
//
//	for i := range 100 {
//		v.Append(i)
//	}
//	fmt.Println(v.Len(), v.Cap()) // 100 128
//
// # Element Cleanup
//
// Go has no destructors, so cleanup is explicit. When a vector is dropped it
// calls the element hook on every live element in index order, then releases
// the region. The hook is either given to NewFunc or discovered when *T
// implements Dropper:
//
//	type conn struct{ c net.Conn }
//
//	func (c *conn) Drop() { c.c.Close() }
//
//	conns := vector.New[conn]()
//	defer conns.Drop() // Closes every connection exactly once
//
// A *Vector is itself a Dropper, so a vector of *Vector drops its inner
// vectors recursively. Append the pointer, never the Vector value: a copied
// Vector would share its region with the original.
//
//	rows := vector.New[*vector.Vector[float64]]()
//	defer rows.Drop() // Drops every row, then the outer region
//
//	row := vector.New[float64]()
//	row.Append(1.5)
//	rows.Append(row) // rows now owns row; a later row.Drop() is a no-op
//
// # Relocation
//
// Growth moves the region in bulk without calling any per-element hook. The
// old slots are never read or dropped afterwards. Element types must
// therefore be movable by memory copy: a value must not hold a pointer into
// its own storage.
//
// # Allocation Failure
//
// Append panics with an *AllocError when the region cannot grow, after
// logging the failure. TryAppend returns the same error instead. In both
// cases the vector is left exactly as it was.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Growth events: %d\n", m.Grows)
//	fmt.Printf("Region size: %d bytes\n", m.Capacity)
package vector
