package fft

import (
	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
)

// SplitEngine runs complex transforms on data held as separate real and
// imaginary buffers. Each call packs the parts into an interleaved scratch
// buffer, transforms it in place and unpacks the result.
type SplitEngine[F kernel.Float, C kernel.Complex] struct {
	plan   *Plan[C]
	packed *vector.Buffer[C]

	pack   func(re, im []F, dst []C) kernel.Status
	unpack func(src []C, re, im []F) kernel.Status
}

// NewSplitEngine32 builds a single-precision split engine.
func NewSplitEngine32(order int, opts ...Option) (*SplitEngine[float32, complex64], error) {
	conv := kernel.Conversions()
	return newSplitEngine(order, conv.RealToCplx32, conv.CplxToReal32, opts)
}

// NewSplitEngine64 builds a double-precision split engine.
func NewSplitEngine64(order int, opts ...Option) (*SplitEngine[float64, complex128], error) {
	conv := kernel.Conversions()
	return newSplitEngine(order, conv.RealToCplx64, conv.CplxToReal64, opts)
}

func newSplitEngine[F kernel.Float, C kernel.Complex](
	order int,
	pack func(re, im []F, dst []C) kernel.Status,
	unpack func(src []C, re, im []F) kernel.Status,
	opts []Option,
) (*SplitEngine[F, C], error) {
	plan, err := NewPlan[C](order, opts...)
	if err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)
	packed, err := vector.New[C](plan.Len(), vector.WithAllocator(cfg.alloc))
	if err != nil {
		plan.Release()
		return nil, err
	}
	return &SplitEngine[F, C]{plan: plan, packed: packed, pack: pack, unpack: unpack}, nil
}

// Plan returns the engine's plan.
func (e *SplitEngine[F, C]) Plan() *Plan[C] { return e.plan }

// Len returns the transform length.
func (e *SplitEngine[F, C]) Len() int { return e.plan.Len() }

// Forward writes the forward transform of (srcRe, srcIm) into
// (dstRe, dstIm).
func (e *SplitEngine[F, C]) Forward(srcRe, srcIm, dstRe, dstIm *vector.Buffer[F]) error {
	return e.run("fft.SplitForward", e.plan.forward, srcRe, srcIm, dstRe, dstIm)
}

// ForwardInPlace replaces (re, im) with its forward transform.
func (e *SplitEngine[F, C]) ForwardInPlace(re, im *vector.Buffer[F]) error {
	return e.run("fft.SplitForwardInPlace", e.plan.forward, re, im, re, im)
}

// Inverse writes the inverse transform of (srcRe, srcIm) into
// (dstRe, dstIm).
func (e *SplitEngine[F, C]) Inverse(srcRe, srcIm, dstRe, dstIm *vector.Buffer[F]) error {
	return e.run("fft.SplitInverse", e.plan.inverse, srcRe, srcIm, dstRe, dstIm)
}

// InverseInPlace replaces (re, im) with its inverse transform.
func (e *SplitEngine[F, C]) InverseInPlace(re, im *vector.Buffer[F]) error {
	return e.run("fft.SplitInverseInPlace", e.plan.inverse, re, im, re, im)
}

func (e *SplitEngine[F, C]) run(
	op string,
	transform func(dst, src []C) kernel.Status,
	srcRe, srcIm, dstRe, dstIm *vector.Buffer[F],
) error {
	if err := checkBuffers(e.plan.Len(), srcRe, srcIm, dstRe, dstIm); err != nil {
		return err
	}
	buf := e.packed.Data()
	if err := algovec.Check(e.pack(srcRe.Data(), srcIm.Data(), buf), op); err != nil {
		return err
	}
	if err := algovec.CheckTransform(transform(buf, buf), op); err != nil {
		return err
	}
	return algovec.Check(e.unpack(buf, dstRe.Data(), dstIm.Data()), op)
}

// Reinit rebuilds the plan and the scratch buffer. On failure the engine
// is unchanged.
func (e *SplitEngine[F, C]) Reinit(order int, scaling Scaling) error {
	tmp := &Plan[C]{alloc: e.plan.allocator()}
	backend := e.plan.Backend()
	if backend == "" {
		backend = DefaultBackend
	}
	if err := tmp.build(order, scaling, backend); err != nil {
		return err
	}
	if err := e.packed.Reinit(tmp.Len()); err != nil {
		tmp.Release()
		return err
	}
	e.plan.free()
	*e.plan = *tmp
	return nil
}

// Release frees the plan and the scratch buffer.
func (e *SplitEngine[F, C]) Release() {
	e.plan.Release()
	e.packed.Release()
}
