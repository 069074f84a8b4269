package vector

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Drop() // Always clean up

	v.Append(1)
	v.Append(2)
	v.Append(3)
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	// Grow past the first region
	for i := 0; i < 97; i++ {
		v.Append(i)
	}
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())
	fmt.Printf("Growth events: %d\n", v.Grows())
	fmt.Printf("Utilization: %.1f%%\n", v.Utilization()*100)

	// Output:
	// Len: 3, Cap: 4
	// Len: 100, Cap: 128
	// Growth events: 6
	// Utilization: 78.1%
}

type file struct {
	name string
}

func (f *file) Drop() {
	fmt.Println("closing", f.name)
}

// ExampleDropper shows element cleanup running in index order on Drop
func ExampleDropper() {
	files := New[file]()
	files.Append(file{name: "a.log"})
	files.Append(file{name: "b.log"})
	files.Append(file{name: "c.log"})

	fmt.Println("before drop")
	files.Drop()

	// Output:
	// before drop
	// closing a.log
	// closing b.log
	// closing c.log
}

// ExampleNewFunc attaches a cleanup hook to a type that has none
func ExampleNewFunc() {
	released := 0
	handles := NewFunc(func(fd *uintptr) { released++ })
	for fd := uintptr(3); fd < 8; fd++ {
		handles.Append(fd)
	}
	handles.Drop()
	fmt.Println("released:", released)

	// Output:
	// released: 5
}

// ExampleVector_TryAppend handles allocation failure instead of panicking
func ExampleVector_TryAppend() {
	v := New[string]()
	defer v.Drop()

	for _, s := range []string{"alpha", "beta"} {
		if err := v.TryAppend(s); err != nil {
			var ae *AllocError
			if errors.As(err, &ae) {
				fmt.Println("could not grow to", ae.Cap)
			}
			return
		}
	}
	fmt.Println("appended:", v.Len())

	// Output:
	// appended: 2
}

// ExampleWithLogger traces growth with a zap logger
func ExampleWithLogger() {
	logger := zap.NewExample()
	defer logger.Sync()

	v := New[int64](WithLogger(logger))
	for i := int64(0); i < 5; i++ {
		v.Append(i)
	}
	v.Drop()

	// Output:
	// {"level":"debug","msg":"vector grew","op":"allocate","len":0,"cap":4,"bytes":32}
	// {"level":"debug","msg":"vector grew","op":"reallocate","len":4,"cap":8,"bytes":64}
	// {"level":"debug","msg":"region released","cap":8,"bytes":64}
}
