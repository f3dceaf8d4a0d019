package fft

import (
	"errors"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

func init() {
	RegisterBackend(DefaultBackend, algofftBackend[complex64]{}, algofftBackend[complex128]{})
}

// algofftBackend plans transforms with algo-fft. Its inverse divides by N.
type algofftBackend[C kernel.Complex] struct{}

func (algofftBackend[C]) NormalizedInverse() bool { return true }

func (algofftBackend[C]) Sizes(order int, scaling Scaling) (Sizes, kernel.Status) {
	n := 1 << order
	return Sizes{
		Spec: specHeaderSize,
		Init: 2 * n * elemSize[C](),
		Work: n * elemSize[C](),
	}, kernel.StatusOK
}

// Init builds the algo-fft plan and runs one forward transform between the
// two halves of the init region so the plan's kernels and twiddles are ready
// before the first real call.
func (algofftBackend[C]) Init(order int, scaling Scaling, spec, init []byte) (Transformer[C], kernel.Status) {
	if s := writeSpecHeader(spec, order, scaling); !s.OK() {
		return nil, s
	}
	if order == 0 {
		return identity[C]{spec: spec}, kernel.StatusOK
	}

	n := 1 << order
	plan, err := algofft.NewPlanT[C](n)
	if err != nil {
		return nil, algofftStatus(err)
	}

	scratch := view[C](init, 2*n)
	if scratch == nil {
		return nil, kernel.StatusMemAlloc
	}
	scratch[0] = 1
	if err := plan.Forward(scratch[n:], scratch[:n]); err != nil {
		return nil, algofftStatus(err)
	}
	return &algofftTransformer[C]{plan: plan, spec: spec}, kernel.StatusOK
}

type algofftTransformer[C kernel.Complex] struct {
	plan *algofft.Plan[C]
	spec []byte
}

func (t *algofftTransformer[C]) Forward(dst, src []C, work []byte) kernel.Status {
	src, s := t.operands(dst, src, work)
	if !s.OK() {
		return s
	}
	return algofftStatus(t.plan.Forward(dst, src))
}

func (t *algofftTransformer[C]) Inverse(dst, src []C, work []byte) kernel.Status {
	src, s := t.operands(dst, src, work)
	if !s.OK() {
		return s
	}
	return algofftStatus(t.plan.Inverse(dst, src))
}

// operands validates the lengths and, for in-place calls, moves src into
// the work region so the plan never reads and writes the same memory.
func (t *algofftTransformer[C]) operands(dst, src []C, work []byte) ([]C, kernel.Status) {
	if s := checkLens(t.spec, dst, src); !s.OK() {
		return nil, s
	}
	if &dst[0] != &src[0] {
		return src, kernel.StatusOK
	}
	tmp := view[C](work, len(src))
	if tmp == nil {
		return nil, kernel.StatusMemAlloc
	}
	copy(tmp, src)
	return tmp, kernel.StatusOK
}

// algofftStatus maps algo-fft errors onto kernel statuses.
func algofftStatus(err error) kernel.Status {
	switch {
	case err == nil:
		return kernel.StatusOK
	case errors.Is(err, algofft.ErrInvalidLength):
		return kernel.StatusFFTOrderErr
	case errors.Is(err, algofft.ErrLengthMismatch):
		return kernel.StatusSizeErr
	default:
		return kernel.StatusErr
	}
}
