// Package convert moves data between buffer element types and layouts:
// split and interleaved complex, single and double precision, integer and
// floating point, and complex to magnitude or power.
//
// Every function requires all buffers to have the same length and fails
// with algovec.ErrSizeMismatch otherwise, leaving the destinations
// untouched.
package convert

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
)

func data[T kernel.Element](op string, b *vector.Buffer[T]) ([]T, error) {
	if b == nil {
		return nil, fmt.Errorf("convert: %s: nil buffer: %w", op, algovec.ErrInvalidArgument)
	}
	return b.Data(), nil
}

func unary[S, D kernel.Element](op string, fn func([]S, []D) kernel.Status, src *vector.Buffer[S], dst *vector.Buffer[D]) error {
	s, err := data(op, src)
	if err != nil {
		return err
	}
	d, err := data(op, dst)
	if err != nil {
		return err
	}
	return algovec.Check(fn(s, d), op)
}

func binary[A, B, D kernel.Element](op string, fn func([]A, []B, []D) kernel.Status, a *vector.Buffer[A], b *vector.Buffer[B], dst *vector.Buffer[D]) error {
	x, err := data(op, a)
	if err != nil {
		return err
	}
	y, err := data(op, b)
	if err != nil {
		return err
	}
	d, err := data(op, dst)
	if err != nil {
		return err
	}
	return algovec.Check(fn(x, y, d), op)
}

func split[C kernel.Complex, F kernel.Float](op string, fn func([]C, []F, []F) kernel.Status, src *vector.Buffer[C], re, im *vector.Buffer[F]) error {
	s, err := data(op, src)
	if err != nil {
		return err
	}
	r, err := data(op, re)
	if err != nil {
		return err
	}
	i, err := data(op, im)
	if err != nil {
		return err
	}
	return algovec.Check(fn(s, r, i), op)
}

// ToComplex32 interleaves re and im into dst.
func ToComplex32(re, im *vector.Buffer[float32], dst *vector.Buffer[complex64]) error {
	return binary("convert.ToComplex32", kernel.Conversions().RealToCplx32, re, im, dst)
}

// ToComplex64 interleaves re and im into dst.
func ToComplex64(re, im *vector.Buffer[float64], dst *vector.Buffer[complex128]) error {
	return binary("convert.ToComplex64", kernel.Conversions().RealToCplx64, re, im, dst)
}

// Split32 separates src into its real and imaginary parts.
func Split32(src *vector.Buffer[complex64], re, im *vector.Buffer[float32]) error {
	return split("convert.Split32", kernel.Conversions().CplxToReal32, src, re, im)
}

// Split64 separates src into its real and imaginary parts.
func Split64(src *vector.Buffer[complex128], re, im *vector.Buffer[float64]) error {
	return split("convert.Split64", kernel.Conversions().CplxToReal64, src, re, im)
}

// Real32 copies the real parts of src into re.
func Real32(src *vector.Buffer[complex64], re *vector.Buffer[float32]) error {
	return unary("convert.Real32", kernel.Conversions().Real32, src, re)
}

// Real64 copies the real parts of src into re.
func Real64(src *vector.Buffer[complex128], re *vector.Buffer[float64]) error {
	return unary("convert.Real64", kernel.Conversions().Real64, src, re)
}

// Imag32 copies the imaginary parts of src into im.
func Imag32(src *vector.Buffer[complex64], im *vector.Buffer[float32]) error {
	return unary("convert.Imag32", kernel.Conversions().Imag32, src, im)
}

// Imag64 copies the imaginary parts of src into im.
func Imag64(src *vector.Buffer[complex128], im *vector.Buffer[float64]) error {
	return unary("convert.Imag64", kernel.Conversions().Imag64, src, im)
}

// Float32To64 widens src into dst.
func Float32To64(src *vector.Buffer[float32], dst *vector.Buffer[float64]) error {
	return unary("convert.Float32To64", kernel.Conversions().Float32To64, src, dst)
}

// Float64To32 narrows src into dst with round-to-nearest.
func Float64To32(src *vector.Buffer[float64], dst *vector.Buffer[float32]) error {
	return unary("convert.Float64To32", kernel.Conversions().Float64To32, src, dst)
}

// Int32ToFloat32 converts src into dst. Values above 2^24 in magnitude are
// rounded.
func Int32ToFloat32(src *vector.Buffer[int32], dst *vector.Buffer[float32]) error {
	return unary("convert.Int32ToFloat32", kernel.Conversions().Int32ToFloat32, src, dst)
}

// Int16ToFloat32 converts src into dst. No scaling is applied.
func Int16ToFloat32(src *vector.Buffer[int16], dst *vector.Buffer[float32]) error {
	return unary("convert.Int16ToFloat32", kernel.Conversions().Int16ToFloat32, src, dst)
}

// Magnitude32 writes |src[i]| into dst.
func Magnitude32(src *vector.Buffer[complex64], dst *vector.Buffer[float32]) error {
	return unary("convert.Magnitude32", kernel.Conversions().Magnitude32, src, dst)
}

// Magnitude64 writes |src[i]| into dst.
func Magnitude64(src *vector.Buffer[complex128], dst *vector.Buffer[float64]) error {
	return unary("convert.Magnitude64", kernel.Conversions().Magnitude64, src, dst)
}

// MagnitudeSplit32 writes sqrt(re[i]^2 + im[i]^2) into dst.
func MagnitudeSplit32(re, im, dst *vector.Buffer[float32]) error {
	return binary("convert.MagnitudeSplit32", kernel.Conversions().MagnitudeSplit32, re, im, dst)
}

// MagnitudeSplit64 writes sqrt(re[i]^2 + im[i]^2) into dst.
func MagnitudeSplit64(re, im, dst *vector.Buffer[float64]) error {
	return binary("convert.MagnitudeSplit64", kernel.Conversions().MagnitudeSplit64, re, im, dst)
}

// Power32 writes |src[i]|^2 into dst.
func Power32(src *vector.Buffer[complex64], dst *vector.Buffer[float32]) error {
	return unary("convert.Power32", kernel.Conversions().Power32, src, dst)
}

// Power64 writes |src[i]|^2 into dst.
func Power64(src *vector.Buffer[complex128], dst *vector.Buffer[float64]) error {
	return unary("convert.Power64", kernel.Conversions().Power64, src, dst)
}

// PowerSplit32 writes re[i]^2 + im[i]^2 into dst.
func PowerSplit32(re, im, dst *vector.Buffer[float32]) error {
	return binary("convert.PowerSplit32", kernel.Conversions().PowerSplit32, re, im, dst)
}

// PowerSplit64 writes re[i]^2 + im[i]^2 into dst.
func PowerSplit64(re, im, dst *vector.Buffer[float64]) error {
	return binary("convert.PowerSplit64", kernel.Conversions().PowerSplit64, re, im, dst)
}
