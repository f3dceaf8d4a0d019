package generic

import "github.com/cwbudde/algo-vec/dsp/kernel"

// checkPair validates the common two-operand contract: both slices
// non-empty and of equal length.
func checkPair[A, B any](a []A, b []B) kernel.Status {
	if len(a) == 0 || len(b) == 0 {
		return kernel.StatusSizeErr
	}
	if len(a) != len(b) {
		return kernel.StatusSizeErr
	}
	return kernel.StatusOK
}

// Copy copies src into dst.
func Copy[T kernel.Element](src, dst []T) kernel.Status {
	if s := checkPair(src, dst); !s.OK() {
		return s
	}
	copy(dst, src)
	return kernel.StatusOK
}

// Set writes value into every element of dst.
func Set[T kernel.Element](value T, dst []T) kernel.Status {
	if len(dst) == 0 {
		return kernel.StatusSizeErr
	}
	for i := range dst {
		dst[i] = value
	}
	return kernel.StatusOK
}

// Zero clears dst.
func Zero[T kernel.Element](dst []T) kernel.Status {
	if len(dst) == 0 {
		return kernel.StatusSizeErr
	}
	clear(dst)
	return kernel.StatusOK
}

// Add performs srcDst[i] += src[i].
func Add[T kernel.Element](src, srcDst []T) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	for i := range srcDst {
		srcDst[i] += src[i]
	}
	return kernel.StatusOK
}

// Sub performs srcDst[i] -= src[i].
func Sub[T kernel.Element](src, srcDst []T) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	for i := range srcDst {
		srcDst[i] -= src[i]
	}
	return kernel.StatusOK
}

// Mul performs srcDst[i] *= src[i].
func Mul[T kernel.Element](src, srcDst []T) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	for i := range srcDst {
		srcDst[i] *= src[i]
	}
	return kernel.StatusOK
}

// Div performs srcDst[i] /= src[i].
//
// Floating-point division by zero follows IEEE 754. Integer element types
// reject any zero divisor before touching srcDst.
func Div[T kernel.Element](src, srcDst []T) kernel.Status {
	if s := checkPair(src, srcDst); !s.OK() {
		return s
	}
	if isInteger[T]() {
		var zero T
		for _, v := range src {
			if v == zero {
				return kernel.StatusDivByZero
			}
		}
	}
	for i := range srcDst {
		srcDst[i] /= src[i]
	}
	return kernel.StatusOK
}

// AddC performs srcDst[i] += value.
func AddC[T kernel.Element](value T, srcDst []T) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	for i := range srcDst {
		srcDst[i] += value
	}
	return kernel.StatusOK
}

// SubC performs srcDst[i] -= value.
func SubC[T kernel.Element](value T, srcDst []T) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	for i := range srcDst {
		srcDst[i] -= value
	}
	return kernel.StatusOK
}

// MulC performs srcDst[i] *= value.
func MulC[T kernel.Element](value T, srcDst []T) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	for i := range srcDst {
		srcDst[i] *= value
	}
	return kernel.StatusOK
}

// DivC performs srcDst[i] /= value. A zero divisor is rejected for every
// element type.
func DivC[T kernel.Element](value T, srcDst []T) kernel.Status {
	if len(srcDst) == 0 {
		return kernel.StatusSizeErr
	}
	var zero T
	if value == zero {
		return kernel.StatusDivByZero
	}
	for i := range srcDst {
		srcDst[i] /= value
	}
	return kernel.StatusOK
}

func isInteger[T kernel.Element]() bool {
	switch kernel.KindOf[T]() {
	case kernel.KindInt16, kernel.KindInt32:
		return true
	default:
		return false
	}
}
