package kernel

// Ops is the kernel table for one element type.
//
// In-place forms follow the wrapped library's argument order: the operand
// comes first and srcDst last, so Sub(src, srcDst) computes
// srcDst[i] = srcDst[i] - src[i]. Not all fields need to be populated; nil
// fields are filled from lower-priority entries during resolution.
type Ops[T Element] struct {
	// Copy copies src into dst. Lengths must match.
	Copy func(src, dst []T) Status

	// Set writes value into every element of dst.
	Set func(value T, dst []T) Status

	// Zero clears dst.
	Zero func(dst []T) Status

	// Add performs srcDst[i] += src[i].
	Add func(src, srcDst []T) Status

	// Sub performs srcDst[i] -= src[i].
	Sub func(src, srcDst []T) Status

	// Mul performs srcDst[i] *= src[i].
	Mul func(src, srcDst []T) Status

	// Div performs srcDst[i] /= src[i].
	Div func(src, srcDst []T) Status

	// AddC performs srcDst[i] += value.
	AddC func(value T, srcDst []T) Status

	// SubC performs srcDst[i] -= value.
	SubC func(value T, srcDst []T) Status

	// MulC performs srcDst[i] *= value.
	MulC func(value T, srcDst []T) Status

	// DivC performs srcDst[i] /= value.
	DivC func(value T, srcDst []T) Status

	// Sum returns the sum of all elements.
	Sum func(src []T) (T, Status)

	// Equal reports whether a and b hold identical bytes.
	Equal func(a, b []T) (bool, Status)

	// Min and Max return the extreme value. Real element types only.
	Min func(src []T) (T, Status)
	Max func(src []T) (T, Status)

	// MinIndex and MaxIndex return the extreme value and the index of its
	// first occurrence. Real element types only.
	MinIndex func(src []T) (T, int, Status)
	MaxIndex func(src []T) (T, int, Status)

	// MinMaxIndex returns both extremes and their indices in one pass.
	MinMaxIndex func(src []T) (minValue T, minIndex int, maxValue T, maxIndex int, status Status)
}

// ConvOps is the kernel table for conversions between element types.
// Every function requires all slices to have the same length.
type ConvOps struct {
	// RealToCplx interleaves re and im into dst.
	RealToCplx32 func(re, im []float32, dst []complex64) Status
	RealToCplx64 func(re, im []float64, dst []complex128) Status

	// CplxToReal splits src into re and im.
	CplxToReal32 func(src []complex64, re, im []float32) Status
	CplxToReal64 func(src []complex128, re, im []float64) Status

	// Real extracts the real part of src.
	Real32 func(src []complex64, re []float32) Status
	Real64 func(src []complex128, re []float64) Status

	// Imag extracts the imaginary part of src.
	Imag32 func(src []complex64, im []float32) Status
	Imag64 func(src []complex128, im []float64) Status

	// Precision and integer casts.
	Float32To64    func(src []float32, dst []float64) Status
	Float64To32    func(src []float64, dst []float32) Status
	Int32ToFloat32 func(src []int32, dst []float32) Status
	Int16ToFloat32 func(src []int16, dst []float32) Status

	// Magnitude computes |src[i]| of interleaved complex input.
	Magnitude32 func(src []complex64, dst []float32) Status
	Magnitude64 func(src []complex128, dst []float64) Status

	// MagnitudeSplit computes sqrt(re[i]^2 + im[i]^2).
	MagnitudeSplit32 func(re, im []float32, dst []float32) Status
	MagnitudeSplit64 func(re, im []float64, dst []float64) Status

	// Power computes |src[i]|^2 of interleaved complex input.
	Power32 func(src []complex64, dst []float32) Status
	Power64 func(src []complex128, dst []float64) Status

	// PowerSplit computes re[i]^2 + im[i]^2.
	PowerSplit32 func(re, im []float32, dst []float32) Status
	PowerSplit64 func(re, im []float64, dst []float64) Status
}
