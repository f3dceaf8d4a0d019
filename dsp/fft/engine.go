package fft

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
)

// ComplexEngine runs transforms on interleaved complex buffers. It reuses
// the plan's work region on every call and is not safe for concurrent use.
type ComplexEngine[C kernel.Complex] struct {
	plan *Plan[C]
}

// NewComplexEngine builds an engine for transforms of length 1<<order.
func NewComplexEngine[C kernel.Complex](order int, opts ...Option) (*ComplexEngine[C], error) {
	plan, err := NewPlan[C](order, opts...)
	if err != nil {
		return nil, err
	}
	return &ComplexEngine[C]{plan: plan}, nil
}

// Plan returns the engine's plan.
func (e *ComplexEngine[C]) Plan() *Plan[C] { return e.plan }

// Len returns the transform length.
func (e *ComplexEngine[C]) Len() int { return e.plan.Len() }

// Forward writes the forward transform of src into dst.
func (e *ComplexEngine[C]) Forward(src, dst *vector.Buffer[C]) error {
	if err := checkBuffers(e.plan.Len(), src, dst); err != nil {
		return err
	}
	return algovec.CheckTransform(e.plan.forward(dst.Data(), src.Data()), "fft.Forward")
}

// ForwardInPlace replaces data with its forward transform.
func (e *ComplexEngine[C]) ForwardInPlace(data *vector.Buffer[C]) error {
	if err := checkBuffers(e.plan.Len(), data); err != nil {
		return err
	}
	return algovec.CheckTransform(e.plan.forward(data.Data(), data.Data()), "fft.ForwardInPlace")
}

// Inverse writes the inverse transform of src into dst.
func (e *ComplexEngine[C]) Inverse(src, dst *vector.Buffer[C]) error {
	if err := checkBuffers(e.plan.Len(), src, dst); err != nil {
		return err
	}
	return algovec.CheckTransform(e.plan.inverse(dst.Data(), src.Data()), "fft.Inverse")
}

// InverseInPlace replaces data with its inverse transform.
func (e *ComplexEngine[C]) InverseInPlace(data *vector.Buffer[C]) error {
	if err := checkBuffers(e.plan.Len(), data); err != nil {
		return err
	}
	return algovec.CheckTransform(e.plan.inverse(data.Data(), data.Data()), "fft.InverseInPlace")
}

// Reinit rebuilds the plan. On failure the engine keeps its old plan.
func (e *ComplexEngine[C]) Reinit(order int, scaling Scaling) error {
	return e.plan.Reinit(order, scaling)
}

// Release frees the plan.
func (e *ComplexEngine[C]) Release() { e.plan.Release() }

func checkBuffers[T kernel.Element](n int, bufs ...*vector.Buffer[T]) error {
	for _, b := range bufs {
		if b == nil {
			return fmt.Errorf("fft: nil buffer: %w", algovec.ErrInvalidArgument)
		}
		if b.Len() != n {
			return fmt.Errorf("fft: buffer length %d, plan length %d: %w",
				b.Len(), n, algovec.ErrSizeMismatch)
		}
	}
	return nil
}
