// Package fft provides precomputed transform plans and the engines that run
// forward and inverse FFTs against them.
//
// A Plan fixes the transform order (log2 of the length), the scaling
// convention and the backend. Building it queries the backend for the
// sizes of three memory regions (spec, init scratch and work buffer),
// allocates them through an alloc.Allocator and initializes the backend.
// After that the plan never allocates again.
//
// ComplexEngine runs interleaved complex transforms. SplitEngine runs
// transforms on separate real and imaginary buffers by packing them into
// the plan's work region. Engines are not safe for concurrent use; give
// every goroutine its own engine.
//
// Two backends are registered by default:
//
//   - "algofft": github.com/cwbudde/algo-fft, complex64 and complex128
//   - "gonum": gonum.org/v1/gonum/dsp/fourier, complex128 only
//
// Failures during plan construction or execution are *algovec.TransformError
// values; buffer length mismatches match algovec.ErrSizeMismatch.
package fft
