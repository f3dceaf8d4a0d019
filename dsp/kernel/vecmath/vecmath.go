// Package vecmath registers float64 kernels backed by algo-vecmath, which
// dispatches internally to AVX2, SSE2 or NEON implementations.
package vecmath

import (
	"github.com/cwbudde/algo-vec/dsp/kernel"
	vm "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Name identifies the vecmath entries in the kernel registries.
const Name = "vecmath"

func init() {
	kernel.Register(kernel.Entry[kernel.Ops[float64]]{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Ops: kernel.Ops[float64]{
			Add:  Add,
			Mul:  Mul,
			MulC: MulC,
			Sum:  Sum,
		},
	})

	kernel.RegisterConversions(kernel.Entry[kernel.ConvOps]{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Ops: kernel.ConvOps{
			MagnitudeSplit64: MagnitudeSplit,
			PowerSplit64:     PowerSplit,
		},
	})
}

// Add performs srcDst[i] += src[i].
func Add(src, srcDst []float64) kernel.Status {
	if len(src) == 0 || len(src) != len(srcDst) {
		return kernel.StatusSizeErr
	}
	vm.AddBlockInPlace(srcDst, src)
	return kernel.StatusOK
}

// Mul performs srcDst[i] *= src[i].
func Mul(src, srcDst []float64) kernel.Status {
	if len(src) == 0 || len(src) != len(srcDst) {
		return kernel.StatusSizeErr
	}
	vm.MulBlockInPlace(srcDst, src)
	return kernel.StatusOK
}

// MulC performs srcDst[i] *= value.
func MulC(value float64, srcDst []float64) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	vm.ScaleBlockInPlace(srcDst, value)
	return kernel.StatusOK
}

// Sum returns the sum of src.
func Sum(src []float64) (float64, kernel.Status) {
	if len(src) == 0 {
		return 0, kernel.StatusSizeErr
	}
	return vm.Sum(src), kernel.StatusOK
}

// MagnitudeSplit computes sqrt(re[i]^2 + im[i]^2).
func MagnitudeSplit(re, im, dst []float64) kernel.Status {
	if len(dst) == 0 || len(re) != len(dst) || len(im) != len(dst) {
		return kernel.StatusSizeErr
	}
	vm.Magnitude(dst, re, im)
	return kernel.StatusOK
}

// PowerSplit computes re[i]^2 + im[i]^2.
func PowerSplit(re, im, dst []float64) kernel.Status {
	if len(dst) == 0 || len(re) != len(dst) || len(im) != len(dst) {
		return kernel.StatusSizeErr
	}
	vm.Power(dst, re, im)
	return kernel.StatusOK
}
