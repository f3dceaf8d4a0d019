package vector

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/alloc"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Buffer is an owning, resizable typed numeric array.
//
// The zero value is an empty buffer using alloc.Default().
type Buffer[T kernel.Element] struct {
	data  []T // len is the logical size, cap the capacity
	mem   []byte
	alloc alloc.Allocator
}

// New returns a zero-filled buffer of size elements. Size zero is legal and
// allocates nothing.
func New[T kernel.Element](size int, opts ...Option) (*Buffer[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("vector: size %d: %w", size, algovec.ErrInvalidArgument)
	}
	cfg := applyOptions(opts)
	b := &Buffer[T]{alloc: cfg.alloc}
	if err := b.allocate(size); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFilled returns a buffer of size elements all set to value.
func NewFilled[T kernel.Element](size int, value T, opts ...Option) (*Buffer[T], error) {
	b, err := New[T](size, opts...)
	if err != nil {
		return nil, err
	}
	if err := b.Assign(value); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// FromSlice returns a buffer holding a copy of data.
func FromSlice[T kernel.Element](data []T, opts ...Option) (*Buffer[T], error) {
	b, err := New[T](len(data), opts...)
	if err != nil {
		return nil, err
	}
	if err := b.AssignSlice(data); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

func (b *Buffer[T]) allocator() alloc.Allocator {
	if b.alloc == nil {
		b.alloc = alloc.Default()
	}
	return b.alloc
}

// allocate replaces the (empty) storage with size zeroed elements.
func (b *Buffer[T]) allocate(size int) error {
	data, mem, err := alloc.Make[T](b.allocator(), size)
	if err != nil {
		return fmt.Errorf("vector: allocate %d x %s: %w", size, kernel.KindOf[T](), err)
	}
	b.data, b.mem = data, mem
	return nil
}

// Len returns the logical number of elements.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap returns the number of allocated elements.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Empty reports whether Len is zero.
func (b *Buffer[T]) Empty() bool { return len(b.data) == 0 }

// Bytes returns the logical size in bytes.
func (b *Buffer[T]) Bytes() int { return len(b.data) * kernel.KindOf[T]().Size() }

// Data returns a view of the logical elements. The view is invalidated by
// Reinit, Resize beyond Cap, Move and Release.
func (b *Buffer[T]) Data() []T { return b.data }

// At returns element i. It panics if i is out of range, like slice indexing.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// SetAt sets element i. It panics if i is out of range.
func (b *Buffer[T]) SetAt(i int, v T) { b.data[i] = v }

// Clone returns a deep copy of b using the same allocator.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	c, err := New[T](b.Len(), WithAllocator(b.allocator()))
	if err != nil {
		return nil, err
	}
	if err := c.CopyFrom(b); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Move transfers ownership of src's memory to b. b's previous memory is
// released; src is left empty with zero capacity.
func (b *Buffer[T]) Move(src *Buffer[T]) {
	if src == b || src == nil {
		return
	}
	b.Release()
	b.data, b.mem, b.alloc = src.data, src.mem, src.alloc
	src.data, src.mem = nil, nil
}

// Release returns the memory to the allocator and leaves b empty.
func (b *Buffer[T]) Release() {
	if b.mem != nil {
		b.allocator().Free(b.mem)
	}
	b.data, b.mem = nil, nil
}

// Reinit reallocates b with size elements. The common prefix of the old
// contents is preserved and the rest is zeroed. The old memory is released
// only after the new region has been set up, so b is unchanged on failure.
func (b *Buffer[T]) Reinit(size int) error {
	if size < 0 {
		return fmt.Errorf("vector: reinit size %d: %w", size, algovec.ErrInvalidArgument)
	}
	tmp := &Buffer[T]{alloc: b.allocator()}
	if err := tmp.allocate(size); err != nil {
		return err
	}
	if n := min(size, b.Len()); n > 0 {
		ops := kernel.Provider[T]()
		if err := algovec.Check(ops.Copy(b.data[:n], tmp.data[:n]), "copy"); err != nil {
			tmp.Release()
			return fmt.Errorf("vector: reinit: %w", err)
		}
	}
	b.Move(tmp)
	return nil
}

// Resize changes the logical size. Shrinking or growing within Cap only
// moves the logical end and keeps the stored values; growing beyond Cap
// reallocates through Reinit.
func (b *Buffer[T]) Resize(size int) error {
	if size < 0 {
		return fmt.Errorf("vector: resize %d: %w", size, algovec.ErrInvalidArgument)
	}
	if size > b.Cap() {
		return b.Reinit(size)
	}
	b.data = b.data[:size]
	return nil
}

// Clear zero-fills the logical elements.
func (b *Buffer[T]) Clear() error {
	if b.Empty() {
		return nil
	}
	return algovec.Check(kernel.Provider[T]().Zero(b.data), "zero")
}

// String formats the logical elements like a slice.
func (b *Buffer[T]) String() string {
	return fmt.Sprint(b.data)
}
