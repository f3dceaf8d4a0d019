// Package average provides Running, a running mean over the last N pushed
// vectors.
package average

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
	"github.com/cwbudde/algo-vec/internal/ring"
)

// Running keeps the elementwise sum of the last Len() vectors added to it.
//
// The sum is updated incrementally: once the ring has wrapped, the vector
// about to be overwritten is subtracted before the new one is added. For
// floating-point types this accumulates rounding error over long runs;
// Reset restarts from an exact zero sum.
type Running[T kernel.Element] struct {
	sum        *vector.Buffer[T]
	slots      ring.Slots[T]
	cursor     int
	wrapped    bool
	vectorSize int
	opts       []vector.Option
}

// New returns a running average over window vectors of vectorSize
// elements.
func New[T kernel.Element](vectorSize, window int, opts ...vector.Option) (*Running[T], error) {
	if vectorSize <= 0 || window <= 0 {
		return nil, fmt.Errorf("average: vector size %d, window %d: %w", vectorSize, window, algovec.ErrInvalidArgument)
	}
	sum, err := vector.New[T](vectorSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}
	slots, err := ring.New[T](window, vectorSize, opts)
	if err != nil {
		sum.Release()
		return nil, fmt.Errorf("average: %w", err)
	}
	return &Running[T]{
		sum:        sum,
		slots:      slots,
		vectorSize: vectorSize,
		opts:       opts,
	}, nil
}

// Add pushes value into the window. The size is validated before any state
// changes.
func (r *Running[T]) Add(value *vector.Buffer[T]) error {
	if value.Len() != r.vectorSize {
		return fmt.Errorf("average: add %d elements to %d: %w", value.Len(), r.vectorSize, algovec.ErrSizeMismatch)
	}
	slot := r.slots[r.cursor]
	if r.wrapped {
		if err := r.sum.Sub(slot); err != nil {
			return fmt.Errorf("average: %w", err)
		}
	}
	if err := slot.CopyFrom(value); err != nil {
		return fmt.Errorf("average: %w", err)
	}
	if err := r.sum.Add(slot); err != nil {
		return fmt.Errorf("average: %w", err)
	}
	r.cursor = r.slots.Next(r.cursor)
	if r.cursor == 0 {
		r.wrapped = true
	}
	return nil
}

// Data returns the raw running sum. Callers must not modify it.
func (r *Running[T]) Data() *vector.Buffer[T] {
	return r.sum
}

// Get writes the current mean into out.
func (r *Running[T]) Get(out *vector.Buffer[T]) error {
	if err := out.CopyFrom(r.sum); err != nil {
		return fmt.Errorf("average: %w", err)
	}
	return r.Normalize(out)
}

// Normalize divides out by the number of vectors in the window: Len() once
// the ring has wrapped, otherwise the number added so far. With nothing
// added out is left unchanged.
func (r *Running[T]) Normalize(out *vector.Buffer[T]) error {
	n := r.Count()
	if n == 0 {
		return nil
	}
	if err := out.DivC(kernel.FromInt[T](n)); err != nil {
		return fmt.Errorf("average: normalize: %w", err)
	}
	return nil
}

// Len returns the window length.
func (r *Running[T]) Len() int {
	return len(r.slots)
}

// Count returns how many vectors currently contribute to the sum.
func (r *Running[T]) Count() int {
	if r.wrapped {
		return len(r.slots)
	}
	return r.cursor
}

// Full reports whether the window has been filled at least once.
func (r *Running[T]) Full() bool {
	return r.wrapped
}

// VectorSize returns the length of the averaged vectors.
func (r *Running[T]) VectorSize() int {
	return r.vectorSize
}

// Reset clears the sum and the window.
func (r *Running[T]) Reset() error {
	r.cursor = 0
	r.wrapped = false
	if err := r.sum.Clear(); err != nil {
		return err
	}
	return r.slots.Clear()
}

// Reinit rebuilds the average for a new vector size and window. Contents
// are discarded. r is unchanged on failure.
func (r *Running[T]) Reinit(vectorSize, window int) error {
	if vectorSize <= 0 || window <= 0 {
		return fmt.Errorf("average: reinit vector size %d, window %d: %w", vectorSize, window, algovec.ErrInvalidArgument)
	}
	if vectorSize == r.vectorSize && window == len(r.slots) {
		return r.Reset()
	}
	tmp, err := New[T](vectorSize, window, r.opts...)
	if err != nil {
		return err
	}
	r.Release()
	*r = *tmp
	return nil
}

// Resize changes the window length. Contents are discarded.
func (r *Running[T]) Resize(window int) error {
	return r.Reinit(r.vectorSize, window)
}

// Release returns all memory to the allocator.
func (r *Running[T]) Release() {
	r.sum.Release()
	r.slots.Release()
	r.slots = nil
}
