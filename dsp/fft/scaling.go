package fft

import (
	"fmt"
	"math"
	"math/bits"
)

// MaxOrder is the largest supported transform order.
const MaxOrder = 24

// Scaling selects where the 1/N normalization of a forward/inverse pair is
// applied.
type Scaling int

const (
	// DivInverseByN leaves the forward transform unscaled and divides the
	// inverse by N.
	DivInverseByN Scaling = iota
	// DivForwardByN divides the forward transform by N.
	DivForwardByN
	// DivBySqrtN divides both directions by sqrt(N).
	DivBySqrtN
	// NoDivision applies no scaling; a round trip multiplies by N.
	NoDivision
)

// Valid reports whether s is a known scaling.
func (s Scaling) Valid() bool {
	return s >= DivInverseByN && s <= NoDivision
}

func (s Scaling) String() string {
	switch s {
	case DivInverseByN:
		return "div-inverse-by-n"
	case DivForwardByN:
		return "div-forward-by-n"
	case DivBySqrtN:
		return "div-by-sqrt-n"
	case NoDivision:
		return "no-division"
	default:
		return fmt.Sprintf("Scaling(%d)", int(s))
	}
}

// factors returns the multipliers applied after the backend's forward and
// inverse transforms. normalizedInverse reports that the backend's inverse
// already divides by N.
func (s Scaling) factors(n int, normalizedInverse bool) (fwd, inv float64) {
	fn := float64(n)
	switch s {
	case DivForwardByN:
		fwd, inv = 1/fn, 1
	case DivBySqrtN:
		fwd = 1 / math.Sqrt(fn)
		inv = fwd
	case NoDivision:
		fwd, inv = 1, 1
	default:
		fwd, inv = 1, 1/fn
	}
	if normalizedInverse {
		inv *= fn
	}
	return fwd, inv
}

// Order returns ceil(log2(length)), the smallest order whose transform
// holds length samples. It returns 0 for length <= 1.
func Order(length int) int {
	if length <= 1 {
		return 0
	}
	return bits.Len(uint(length - 1))
}
