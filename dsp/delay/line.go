package delay

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
	"github.com/cwbudde/algo-vec/internal/ring"
)

// Line is a circular delay line of vectors.
type Line[T kernel.Element] struct {
	slots      ring.Slots[T]
	cursor     int
	vectorSize int
	opts       []vector.Option
}

// New returns a zeroed delay line of depth pushes for vectors of
// vectorSize elements. Options are applied to every slot buffer.
func New[T kernel.Element](vectorSize, depth int, opts ...vector.Option) (*Line[T], error) {
	if vectorSize <= 0 || depth < 0 {
		return nil, fmt.Errorf("delay: vector size %d, depth %d: %w", vectorSize, depth, algovec.ErrInvalidArgument)
	}
	slots, err := ring.New[T](depth+1, vectorSize, opts)
	if err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}
	return &Line[T]{slots: slots, vectorSize: vectorSize, opts: opts}, nil
}

// Len returns the number of slots in the ring (depth+1).
func (d *Line[T]) Len() int {
	return len(d.slots)
}

// Depth returns the delay in pushes.
func (d *Line[T]) Depth() int {
	return len(d.slots) - 1
}

// VectorSize returns the length of every slot.
func (d *Line[T]) VectorSize() int {
	return d.vectorSize
}

// Data returns the slot at the cursor: the oldest stored vector, which the
// next Push overwrites.
func (d *Line[T]) Data() *vector.Buffer[T] {
	return d.slots[d.cursor]
}

// Get copies Data into out.
func (d *Line[T]) Get(out *vector.Buffer[T]) error {
	return out.CopyFrom(d.Data())
}

// Push copies value into the slot at the cursor and advances. On failure
// the cursor is not moved.
func (d *Line[T]) Push(value *vector.Buffer[T]) error {
	if err := d.slots[d.cursor].CopyFrom(value); err != nil {
		return fmt.Errorf("delay: push: %w", err)
	}
	d.Advance()
	return nil
}

// Advance moves the cursor without copying. Use it after writing into
// Data directly.
func (d *Line[T]) Advance() {
	d.cursor = d.slots.Next(d.cursor)
}

// Reset zeroes all slots and rewinds the cursor.
func (d *Line[T]) Reset() error {
	d.cursor = 0
	return d.slots.Clear()
}

// Reinit rebuilds the line for a new vector size and depth. Contents are
// discarded. The line is unchanged on failure.
func (d *Line[T]) Reinit(vectorSize, depth int) error {
	if vectorSize <= 0 || depth < 0 {
		return fmt.Errorf("delay: reinit vector size %d, depth %d: %w", vectorSize, depth, algovec.ErrInvalidArgument)
	}
	if vectorSize == d.vectorSize && depth+1 == len(d.slots) {
		return d.Reset()
	}
	tmp, err := New[T](vectorSize, depth, d.opts...)
	if err != nil {
		return err
	}
	d.slots.Release()
	*d = *tmp
	return nil
}

// Resize changes the depth, keeping the vector size. Contents are
// discarded.
func (d *Line[T]) Resize(depth int) error {
	return d.Reinit(d.vectorSize, depth)
}

// Release returns the slot memory to the allocator. The line must not be
// used afterwards.
func (d *Line[T]) Release() {
	d.slots.Release()
	d.slots = nil
}
