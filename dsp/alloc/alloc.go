package alloc

import (
	"fmt"
	"math"
	"unsafe"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Allocator allocates and releases raw memory regions.
type Allocator interface {
	// Allocate returns a zeroed region of count elements of kind. It
	// returns nil, nil for count <= 0.
	Allocate(kind kernel.Kind, count int) ([]byte, error)

	// Free releases a region returned by Allocate. Freeing nil is a no-op.
	Free(mem []byte)
}

var defaultAllocator = &Aligned{}

// Default returns the shared cache-line aligned allocator.
func Default() Allocator {
	return defaultAllocator
}

// Make allocates n elements of T from a and returns the typed view together
// with the raw region that must later be passed to a.Free.
func Make[T kernel.Element](a Allocator, n int) ([]T, []byte, error) {
	if a == nil {
		a = Default()
	}
	if n < 0 {
		return nil, nil, fmt.Errorf("alloc: negative count %d: %w", n, algovec.ErrInvalidArgument)
	}
	kind := kernel.KindOf[T]()
	mem, err := a.Allocate(kind, n)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, mem, nil
	}
	if len(mem) < n*kind.Size() {
		a.Free(mem)
		return nil, nil, fmt.Errorf("alloc: region of %d bytes for %d x %s: %w",
			len(mem), n, kind, algovec.ErrAllocation)
	}

	var zero T
	if uintptr(unsafe.Pointer(&mem[0]))%unsafe.Alignof(zero) != 0 {
		a.Free(mem)
		return nil, nil, fmt.Errorf("alloc: misaligned region for %s: %w", kind, algovec.ErrAllocation)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), n), mem, nil
}

// requestSize validates a request and returns its size in bytes.
func requestSize(kind kernel.Kind, count int) (int, error) {
	size := kind.Size()
	if size == 0 {
		return 0, fmt.Errorf("alloc: unknown kind %v: %w", kind, algovec.ErrInvalidArgument)
	}
	if count > math.MaxInt/size {
		return 0, fmt.Errorf("alloc: %d x %s overflows: %w", count, kind, algovec.ErrAllocation)
	}
	return count * size, nil
}
