package generic

import (
	"math"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

func check3[A, B, C any](a []A, b []B, c []C) kernel.Status {
	if s := checkPair(a, b); !s.OK() {
		return s
	}
	return checkPair(a, c)
}

// RealToCplx interleaves re and im into dst.
func RealToCplx[F kernel.Float, C kernel.Complex](re, im []F, dst []C) kernel.Status {
	if s := check3(re, im, dst); !s.OK() {
		return s
	}
	for i := range dst {
		dst[i] = C(complex(float64(re[i]), float64(im[i])))
	}
	return kernel.StatusOK
}

// CplxToReal splits src into re and im.
func CplxToReal[C kernel.Complex, F kernel.Float](src []C, re, im []F) kernel.Status {
	if s := check3(src, re, im); !s.OK() {
		return s
	}
	for i, v := range src {
		c := complex128(v)
		re[i] = F(real(c))
		im[i] = F(imag(c))
	}
	return kernel.StatusOK
}

// Real extracts the real part of src.
func Real[C kernel.Complex, F kernel.Float](src []C, re []F) kernel.Status {
	if s := checkPair(src, re); !s.OK() {
		return s
	}
	for i, v := range src {
		re[i] = F(real(complex128(v)))
	}
	return kernel.StatusOK
}

// Imag extracts the imaginary part of src.
func Imag[C kernel.Complex, F kernel.Float](src []C, im []F) kernel.Status {
	if s := checkPair(src, im); !s.OK() {
		return s
	}
	for i, v := range src {
		im[i] = F(imag(complex128(v)))
	}
	return kernel.StatusOK
}

// Cast converts between real element types.
func Cast[S kernel.Real, D kernel.Real](src []S, dst []D) kernel.Status {
	if s := checkPair(src, dst); !s.OK() {
		return s
	}
	for i, v := range src {
		dst[i] = D(v)
	}
	return kernel.StatusOK
}

// Magnitude computes |src[i]|.
func Magnitude[C kernel.Complex, F kernel.Float](src []C, dst []F) kernel.Status {
	if s := checkPair(src, dst); !s.OK() {
		return s
	}
	for i, v := range src {
		c := complex128(v)
		dst[i] = F(math.Hypot(real(c), imag(c)))
	}
	return kernel.StatusOK
}

// MagnitudeSplit computes sqrt(re[i]^2 + im[i]^2).
func MagnitudeSplit[F kernel.Float](re, im, dst []F) kernel.Status {
	if s := check3(re, im, dst); !s.OK() {
		return s
	}
	for i := range dst {
		dst[i] = F(math.Hypot(float64(re[i]), float64(im[i])))
	}
	return kernel.StatusOK
}

// Power computes |src[i]|^2.
func Power[C kernel.Complex, F kernel.Float](src []C, dst []F) kernel.Status {
	if s := checkPair(src, dst); !s.OK() {
		return s
	}
	for i, v := range src {
		c := complex128(v)
		dst[i] = F(real(c)*real(c) + imag(c)*imag(c))
	}
	return kernel.StatusOK
}

// PowerSplit computes re[i]^2 + im[i]^2.
func PowerSplit[F kernel.Float](re, im, dst []F) kernel.Status {
	if s := check3(re, im, dst); !s.OK() {
		return s
	}
	for i := range dst {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
	return kernel.StatusOK
}
