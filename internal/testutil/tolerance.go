package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// Number is the set of element types the helpers compare.
type Number interface {
	float32 | float64 | complex64 | complex128 | int16 | int32
}

// Distance returns |a-b| computed in float64 (complex modulus for complex
// types).
func Distance[T Number](a, b T) float64 {
	switch x := any(a).(type) {
	case complex64:
		return cmplx.Abs(complex128(x) - complex128(any(b).(complex64)))
	case complex128:
		return cmplx.Abs(x - any(b).(complex128))
	case float32:
		return math.Abs(float64(x) - float64(any(b).(float32)))
	case float64:
		return math.Abs(x - any(b).(float64))
	case int16:
		return math.Abs(float64(x) - float64(any(b).(int16)))
	case int32:
		return math.Abs(float64(x) - float64(any(b).(int32)))
	default:
		return math.NaN()
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T Number](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := Distance(got[i], want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element (or component) is NaN or Inf.
func RequireFinite[T Number](t *testing.T, data []T) {
	t.Helper()
	var zero T
	for i, v := range data {
		if d := Distance(v, zero); math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Number](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := Distance(a[i], b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
