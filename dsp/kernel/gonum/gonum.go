// Package gonum registers float64 kernels backed by gonum.org/v1/gonum/floats.
//
// gonum's floats package panics on length mismatches; every kernel here
// validates its operands first and reports StatusSizeErr instead.
package gonum

import (
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
	"gonum.org/v1/gonum/floats"
)

// Name identifies the gonum entry in the float64 registry.
const Name = "gonum"

func init() {
	kernel.Register(kernel.Entry[kernel.Ops[float64]]{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  5,
		Ops: kernel.Ops[float64]{
			Add:      Add,
			Sub:      Sub,
			Mul:      Mul,
			Div:      Div,
			AddC:     AddC,
			SubC:     SubC,
			MulC:     MulC,
			Sum:      Sum,
			Min:      Min,
			Max:      Max,
			MinIndex: MinIndex,
			MaxIndex: MaxIndex,
		},
	})
}

func checkPair(a, b []float64) kernel.Status {
	if len(a) == 0 || len(a) != len(b) {
		return kernel.StatusSizeErr
	}
	return kernel.StatusOK
}

// Add performs srcDst[i] += src[i].
func Add(src, srcDst []float64) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	floats.Add(srcDst, src)
	return kernel.StatusOK
}

// Sub performs srcDst[i] -= src[i].
func Sub(src, srcDst []float64) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	floats.Sub(srcDst, src)
	return kernel.StatusOK
}

// Mul performs srcDst[i] *= src[i].
func Mul(src, srcDst []float64) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	floats.Mul(srcDst, src)
	return kernel.StatusOK
}

// Div performs srcDst[i] /= src[i].
func Div(src, srcDst []float64) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	floats.Div(srcDst, src)
	return kernel.StatusOK
}

func AddC(value float64, srcDst []float64) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	floats.AddConst(value, srcDst)
	return kernel.StatusOK
}

func SubC(value float64, srcDst []float64) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	floats.AddConst(-value, srcDst)
	return kernel.StatusOK
}

func MulC(value float64, srcDst []float64) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	floats.Scale(value, srcDst)
	return kernel.StatusOK
}

// Sum returns the sum of src.
func Sum(src []float64) (float64, kernel.Status) {
	if len(src) == 0 {
		return 0, kernel.StatusSizeErr
	}
	return floats.Sum(src), kernel.StatusOK
}

func Min(src []float64) (float64, kernel.Status) {
	if len(src) == 0 {
		return 0, kernel.StatusSizeErr
	}
	return floats.Min(src), kernel.StatusOK
}

func Max(src []float64) (float64, kernel.Status) {
	if len(src) == 0 {
		return 0, kernel.StatusSizeErr
	}
	return floats.Max(src), kernel.StatusOK
}

// MinIndex returns the minimum and the index of its first occurrence.
func MinIndex(src []float64) (float64, int, kernel.Status) {
	if len(src) == 0 {
		return 0, 0, kernel.StatusSizeErr
	}
	i := floats.MinIdx(src)
	return src[i], i, kernel.StatusOK
}

// MaxIndex returns the maximum and the index of its first occurrence.
func MaxIndex(src []float64) (float64, int, kernel.Status) {
	if len(src) == 0 {
		return 0, 0, kernel.StatusSizeErr
	}
	i := floats.MaxIdx(src)
	return src[i], i, kernel.StatusOK
}
