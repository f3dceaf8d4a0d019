package generic

import (
	"bytes"
	"unsafe"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Sum returns the sum of all elements in src.
func Sum[T kernel.Element](src []T) (T, kernel.Status) {
	var sum T
	if len(src) == 0 {
		return sum, kernel.StatusSizeErr
	}
	for _, v := range src {
		sum += v
	}
	return sum, kernel.StatusOK
}

// SumFloat32 accumulates in float64 to limit rounding drift on long inputs.
func SumFloat32(src []float32) (float32, kernel.Status) {
	if len(src) == 0 {
		return 0, kernel.StatusSizeErr
	}
	sum := 0.0
	for _, v := range src {
		sum += float64(v)
	}
	return float32(sum), kernel.StatusOK
}

// Equal reports whether a and b hold identical bytes.
func Equal[T kernel.Element](a, b []T) (bool, kernel.Status) {
	if len(a) != len(b) {
		return false, kernel.StatusOK
	}
	if len(a) == 0 {
		return true, kernel.StatusOK
	}
	return bytes.Equal(asBytes(a), asBytes(b)), kernel.StatusOK
}

func asBytes[T kernel.Element](s []T) []byte {
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// Min returns the smallest element of src.
func Min[T kernel.Real](src []T) (T, kernel.Status) {
	v, _, s := MinIndex(src)
	return v, s
}

// Max returns the largest element of src.
func Max[T kernel.Real](src []T) (T, kernel.Status) {
	v, _, s := MaxIndex(src)
	return v, s
}

// MinIndex returns the smallest element of src and the index of its first
// occurrence.
func MinIndex[T kernel.Real](src []T) (T, int, kernel.Status) {
	if len(src) == 0 {
		var zero T
		return zero, 0, kernel.StatusSizeErr
	}
	idx := 0
	for i := 1; i < len(src); i++ {
		if src[i] < src[idx] {
			idx = i
		}
	}
	return src[idx], idx, kernel.StatusOK
}

// MaxIndex returns the largest element of src and the index of its first
// occurrence.
func MaxIndex[T kernel.Real](src []T) (T, int, kernel.Status) {
	if len(src) == 0 {
		var zero T
		return zero, 0, kernel.StatusSizeErr
	}
	idx := 0
	for i := 1; i < len(src); i++ {
		if src[i] > src[idx] {
			idx = i
		}
	}
	return src[idx], idx, kernel.StatusOK
}

// MinMaxIndex returns both extremes of src with their indices.
func MinMaxIndex[T kernel.Real](src []T) (minValue T, minIndex int, maxValue T, maxIndex int, status kernel.Status) {
	if len(src) == 0 {
		return minValue, 0, maxValue, 0, kernel.StatusSizeErr
	}
	for i := 1; i < len(src); i++ {
		if src[i] < src[minIndex] {
			minIndex = i
		}
		if src[i] > src[maxIndex] {
			maxIndex = i
		}
	}
	return src[minIndex], minIndex, src[maxIndex], maxIndex, kernel.StatusOK
}
