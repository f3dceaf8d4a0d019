package vector

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

type binaryKernel[T kernel.Element] func(src, srcDst []T) kernel.Status

type scalarKernel[T kernel.Element] func(value T, srcDst []T) kernel.Status

func (b *Buffer[T]) binary(op string, fn binaryKernel[T], other *Buffer[T]) error {
	if other.Len() != b.Len() {
		return fmt.Errorf("vector: %s %d and %d elements: %w", op, b.Len(), other.Len(), algovec.ErrSizeMismatch)
	}
	if b.Empty() {
		return nil
	}
	return algovec.Check(fn(other.data, b.data), op)
}

func (b *Buffer[T]) scalar(op string, fn scalarKernel[T], value T) error {
	if b.Empty() {
		return nil
	}
	return algovec.Check(fn(value, b.data), op)
}

// Add performs b[i] += other[i].
func (b *Buffer[T]) Add(other *Buffer[T]) error {
	return b.binary("add", kernel.Provider[T]().Add, other)
}

// Sub performs b[i] -= other[i].
func (b *Buffer[T]) Sub(other *Buffer[T]) error {
	return b.binary("sub", kernel.Provider[T]().Sub, other)
}

// Mul performs b[i] *= other[i].
func (b *Buffer[T]) Mul(other *Buffer[T]) error {
	return b.binary("mul", kernel.Provider[T]().Mul, other)
}

// Div performs b[i] /= other[i]. Integer buffers fail with a kernel error
// when other holds a zero; b is unchanged in that case.
func (b *Buffer[T]) Div(other *Buffer[T]) error {
	return b.binary("div", kernel.Provider[T]().Div, other)
}

// AddC adds value to every element.
func (b *Buffer[T]) AddC(value T) error {
	return b.scalar("addc", kernel.Provider[T]().AddC, value)
}

// SubC subtracts value from every element.
func (b *Buffer[T]) SubC(value T) error {
	return b.scalar("subc", kernel.Provider[T]().SubC, value)
}

// MulC multiplies every element by value.
func (b *Buffer[T]) MulC(value T) error {
	return b.scalar("mulc", kernel.Provider[T]().MulC, value)
}

// DivC divides every element by value. Dividing by zero fails and leaves b
// unchanged.
func (b *Buffer[T]) DivC(value T) error {
	return b.scalar("divc", kernel.Provider[T]().DivC, value)
}

// outOfPlace clones a and applies fn to the clone.
func outOfPlace[T kernel.Element](a *Buffer[T], fn func(*Buffer[T]) error) (*Buffer[T], error) {
	out, err := a.Clone()
	if err != nil {
		return nil, err
	}
	if err := fn(out); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

// Add returns a new buffer holding a + b.
func Add[T kernel.Element](a, b *Buffer[T]) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.Add(b) })
}

// Sub returns a new buffer holding a - b.
func Sub[T kernel.Element](a, b *Buffer[T]) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.Sub(b) })
}

// Mul returns a new buffer holding a * b.
func Mul[T kernel.Element](a, b *Buffer[T]) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.Mul(b) })
}

// Div returns a new buffer holding a / b.
func Div[T kernel.Element](a, b *Buffer[T]) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.Div(b) })
}

// AddScalar returns a new buffer holding a + v.
func AddScalar[T kernel.Element](a *Buffer[T], v T) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.AddC(v) })
}

// SubScalar returns a new buffer holding a - v.
func SubScalar[T kernel.Element](a *Buffer[T], v T) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.SubC(v) })
}

// MulScalar returns a new buffer holding a * v.
func MulScalar[T kernel.Element](a *Buffer[T], v T) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.MulC(v) })
}

// DivScalar returns a new buffer holding a / v.
func DivScalar[T kernel.Element](a *Buffer[T], v T) (*Buffer[T], error) {
	return outOfPlace(a, func(out *Buffer[T]) error { return out.DivC(v) })
}
