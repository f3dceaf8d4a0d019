package kernel

import "fmt"

// Element is the set of numeric types a Buffer can hold.
type Element interface {
	float32 | float64 | complex64 | complex128 | int16 | int32
}

// Real is the set of ordered element types. Min/max reductions are only
// defined for these.
type Real interface {
	float32 | float64 | int16 | int32
}

// Float is the set of real floating-point element types.
type Float interface {
	float32 | float64
}

// Complex is the set of interleaved complex element types.
type Complex interface {
	complex64 | complex128
}

// Kind identifies an element type at run time.
type Kind int

const (
	KindInvalid Kind = iota
	KindUint8
	KindInt16
	KindInt32
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

// Size returns the size of one element of kind k in bytes.
func (k Kind) Size() int {
	switch k {
	case KindUint8:
		return 1
	case KindInt16:
		return 2
	case KindInt32, KindFloat32:
		return 4
	case KindFloat64, KindComplex64:
		return 8
	case KindComplex128:
		return 16
	default:
		return 0
	}
}

// String returns the short type suffix used by the wrapped library
// (e.g. "32f", "64fc").
func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "8u"
	case KindInt16:
		return "16s"
	case KindInt32:
		return "32s"
	case KindFloat32:
		return "32f"
	case KindFloat64:
		return "64f"
	case KindComplex64:
		return "32fc"
	case KindComplex128:
		return "64fc"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf returns the Kind of T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case complex64:
		return KindComplex64
	case complex128:
		return KindComplex128
	default:
		return KindInvalid
	}
}

// FromInt converts n to T. Go does not allow a direct conversion from a
// non-constant integer to a complex type parameter.
func FromInt[T Element](n int) T {
	var out T
	switch p := any(&out).(type) {
	case *int16:
		*p = int16(n)
	case *int32:
		*p = int32(n)
	case *float32:
		*p = float32(n)
	case *float64:
		*p = float64(n)
	case *complex64:
		*p = complex(float32(n), 0)
	case *complex128:
		*p = complex(float64(n), 0)
	}
	return out
}
