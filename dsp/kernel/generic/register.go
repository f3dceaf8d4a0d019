package generic

import (
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Name identifies the pure Go entries in the kernel registries.
const Name = "generic"

// init registers the pure Go kernels for every element type.
//
// Generic implementations are the baseline fallback: priority 0, no SIMD
// requirement, every operation populated.
func init() {
	kernel.Register(kernel.Entry[kernel.Ops[int16]]{
		Name: Name, SIMDLevel: cpu.SIMDNone, Ops: realOps[int16](),
	})
	kernel.Register(kernel.Entry[kernel.Ops[int32]]{
		Name: Name, SIMDLevel: cpu.SIMDNone, Ops: realOps[int32](),
	})

	f32 := realOps[float32]()
	f32.Sum = SumFloat32
	kernel.Register(kernel.Entry[kernel.Ops[float32]]{
		Name: Name, SIMDLevel: cpu.SIMDNone, Ops: f32,
	})
	kernel.Register(kernel.Entry[kernel.Ops[float64]]{
		Name: Name, SIMDLevel: cpu.SIMDNone, Ops: realOps[float64](),
	})

	kernel.Register(kernel.Entry[kernel.Ops[complex64]]{
		Name: Name, SIMDLevel: cpu.SIMDNone, Ops: baseOps[complex64](),
	})
	kernel.Register(kernel.Entry[kernel.Ops[complex128]]{
		Name: Name, SIMDLevel: cpu.SIMDNone, Ops: baseOps[complex128](),
	})

	kernel.RegisterConversions(kernel.Entry[kernel.ConvOps]{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Ops: kernel.ConvOps{
			RealToCplx32:     RealToCplx[float32, complex64],
			RealToCplx64:     RealToCplx[float64, complex128],
			CplxToReal32:     CplxToReal[complex64, float32],
			CplxToReal64:     CplxToReal[complex128, float64],
			Real32:           Real[complex64, float32],
			Real64:           Real[complex128, float64],
			Imag32:           Imag[complex64, float32],
			Imag64:           Imag[complex128, float64],
			Float32To64:      Cast[float32, float64],
			Float64To32:      Cast[float64, float32],
			Int32ToFloat32:   Cast[int32, float32],
			Int16ToFloat32:   Cast[int16, float32],
			Magnitude32:      Magnitude[complex64, float32],
			Magnitude64:      Magnitude[complex128, float64],
			MagnitudeSplit32: MagnitudeSplit[float32],
			MagnitudeSplit64: MagnitudeSplit[float64],
			Power32:          Power[complex64, float32],
			Power64:          Power[complex128, float64],
			PowerSplit32:     PowerSplit[float32],
			PowerSplit64:     PowerSplit[float64],
		},
	})
}

func baseOps[T kernel.Element]() kernel.Ops[T] {
	return kernel.Ops[T]{
		Copy:  Copy[T],
		Set:   Set[T],
		Zero:  Zero[T],
		Add:   Add[T],
		Sub:   Sub[T],
		Mul:   Mul[T],
		Div:   Div[T],
		AddC:  AddC[T],
		SubC:  SubC[T],
		MulC:  MulC[T],
		DivC:  DivC[T],
		Sum:   Sum[T],
		Equal: Equal[T],
	}
}

func realOps[T interface {
	kernel.Element
	kernel.Real
}]() kernel.Ops[T] {
	ops := baseOps[T]()
	ops.Min = Min[T]
	ops.Max = Max[T]
	ops.MinIndex = MinIndex[T]
	ops.MaxIndex = MaxIndex[T]
	ops.MinMaxIndex = MinMaxIndex[T]
	return ops
}
