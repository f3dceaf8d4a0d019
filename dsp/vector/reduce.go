package vector

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Extrema is the result of MinMaxIndex.
type Extrema[T kernel.Real] struct {
	Min      T
	MinIndex int
	Max      T
	MaxIndex int
}

// span returns the elements in the reduction window [pos, pos+count),
// clamped to the end. Reductions of an empty buffer fail with
// ErrOutOfRange.
func (b *Buffer[T]) span(pos, count int) ([]T, error) {
	n, err := b.window(pos, count)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("vector: empty window at %d: %w", pos, algovec.ErrOutOfRange)
	}
	return b.data[pos : pos+n], nil
}

// Sum returns the sum of all elements.
func (b *Buffer[T]) Sum() (T, error) {
	return b.SumRange(0, -1)
}

// SumRange returns the sum of up to count elements starting at pos.
func (b *Buffer[T]) SumRange(pos, count int) (T, error) {
	var zero T
	s, err := b.span(pos, count)
	if err != nil {
		return zero, err
	}
	v, status := kernel.Provider[T]().Sum(s)
	if err := algovec.Check(status, "sum"); err != nil {
		return zero, err
	}
	return v, nil
}

// Min returns the smallest element of b.
func Min[T kernel.Real](b *Buffer[T]) (T, error) {
	return MinRange(b, 0, -1)
}

// MinRange returns the smallest element in the window.
func MinRange[T kernel.Real](b *Buffer[T], pos, count int) (T, error) {
	v, _, err := MinIndexRange(b, pos, count)
	return v, err
}

// Max returns the largest element of b.
func Max[T kernel.Real](b *Buffer[T]) (T, error) {
	return MaxRange(b, 0, -1)
}

// MaxRange returns the largest element in the window.
func MaxRange[T kernel.Real](b *Buffer[T], pos, count int) (T, error) {
	v, _, err := MaxIndexRange(b, pos, count)
	return v, err
}

// MinIndex returns the smallest element and the index of its first
// occurrence.
func MinIndex[T kernel.Real](b *Buffer[T]) (T, int, error) {
	return MinIndexRange(b, 0, -1)
}

// MinIndexRange is MinIndex over a window. The index is relative to the
// start of the buffer, not the window.
func MinIndexRange[T kernel.Real](b *Buffer[T], pos, count int) (T, int, error) {
	var zero T
	s, err := b.span(pos, count)
	if err != nil {
		return zero, 0, err
	}
	v, i, status := kernel.Provider[T]().MinIndex(s)
	if err := algovec.Check(status, "minindex"); err != nil {
		return zero, 0, err
	}
	return v, pos + i, nil
}

// MaxIndex returns the largest element and the index of its first
// occurrence.
func MaxIndex[T kernel.Real](b *Buffer[T]) (T, int, error) {
	return MaxIndexRange(b, 0, -1)
}

// MaxIndexRange is MaxIndex over a window. The index is relative to the
// start of the buffer.
func MaxIndexRange[T kernel.Real](b *Buffer[T], pos, count int) (T, int, error) {
	var zero T
	s, err := b.span(pos, count)
	if err != nil {
		return zero, 0, err
	}
	v, i, status := kernel.Provider[T]().MaxIndex(s)
	if err := algovec.Check(status, "maxindex"); err != nil {
		return zero, 0, err
	}
	return v, pos + i, nil
}

// MinMaxIndex returns both extremes of b in one pass.
func MinMaxIndex[T kernel.Real](b *Buffer[T]) (Extrema[T], error) {
	return MinMaxIndexRange(b, 0, -1)
}

// MinMaxIndexRange is MinMaxIndex over a window.
func MinMaxIndexRange[T kernel.Real](b *Buffer[T], pos, count int) (Extrema[T], error) {
	s, err := b.span(pos, count)
	if err != nil {
		return Extrema[T]{}, err
	}
	minValue, minIndex, maxValue, maxIndex, status := kernel.Provider[T]().MinMaxIndex(s)
	if err := algovec.Check(status, "minmaxindex"); err != nil {
		return Extrema[T]{}, err
	}
	return Extrema[T]{
		Min:      minValue,
		MinIndex: pos + minIndex,
		Max:      maxValue,
		MaxIndex: pos + maxIndex,
	}, nil
}
