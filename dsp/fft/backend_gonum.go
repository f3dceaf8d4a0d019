package fft

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// GonumBackend is the name of the gonum backend.
const GonumBackend = "gonum"

func init() {
	RegisterBackend(GonumBackend, nil, gonumBackend{})
}

// gonumBackend plans complex128 transforms with gonum's fftpack port. Both
// directions are unnormalized and run in place without scratch memory.
type gonumBackend struct{}

func (gonumBackend) NormalizedInverse() bool { return false }

func (gonumBackend) Sizes(order int, scaling Scaling) (Sizes, kernel.Status) {
	return Sizes{Spec: specHeaderSize}, kernel.StatusOK
}

func (gonumBackend) Init(order int, scaling Scaling, spec, _ []byte) (Transformer[complex128], kernel.Status) {
	if s := writeSpecHeader(spec, order, scaling); !s.OK() {
		return nil, s
	}
	if order == 0 {
		return identity[complex128]{spec: spec}, kernel.StatusOK
	}
	return &gonumTransformer{fft: fourier.NewCmplxFFT(1 << order), spec: spec}, kernel.StatusOK
}

type gonumTransformer struct {
	fft  *fourier.CmplxFFT
	spec []byte
}

func (t *gonumTransformer) Forward(dst, src []complex128, _ []byte) kernel.Status {
	if s := checkLens(t.spec, dst, src); !s.OK() {
		return s
	}
	t.fft.Coefficients(dst, src)
	return kernel.StatusOK
}

func (t *gonumTransformer) Inverse(dst, src []complex128, _ []byte) kernel.Status {
	if s := checkLens(t.spec, dst, src); !s.OK() {
		return s
	}
	t.fft.Sequence(dst, src)
	return kernel.StatusOK
}
