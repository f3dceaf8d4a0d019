package window

import (
	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
)

// Sample is the set of element types a window can be applied to.
type Sample interface {
	float32 | float64 | complex64 | complex128
}

// Apply multiplies buf in place by the selected window. Complex samples are
// scaled in both parts. An empty buffer is left alone.
func Apply[T Sample](t Type, buf *vector.Buffer[T], opts ...Option) error {
	if err := validateType(t); err != nil {
		return err
	}
	if buf == nil || buf.Empty() {
		return nil
	}
	if t == TypeRectangular {
		return nil
	}

	coeffs := Coefficients[T](t, buf.Len(), opts...)
	return algovec.Check(kernel.Provider[T]().Mul(coeffs, buf.Data()), "window.Apply")
}

// Coefficients returns Generate(t, n, opts...) converted to T.
func Coefficients[T Sample](t Type, n int, opts ...Option) []T {
	w := Generate(t, n, opts...)
	out := make([]T, len(w))
	for i, v := range w {
		out[i] = fromFloat[T](v)
	}
	return out
}

func fromFloat[T Sample](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(v, 0)
	}
	return out
}
