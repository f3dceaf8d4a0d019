// Package algovec is the root of a typed numeric-vector library for signal
// processing.
//
// The library is organised like this:
//
//   - dsp/vector: Buffer[T], an owning resizable array with arithmetic,
//     reductions and comparisons
//   - dsp/delay, dsp/average, dsp/queue: ring structures built on Buffer
//   - dsp/fft: transform plans and engines for complex and split data
//   - dsp/window, dsp/convert: FFT windows and type conversions
//   - dsp/kernel: the pluggable numeric kernel provider
//   - dsp/alloc: the allocator capability
//
// This package holds the shared error taxonomy. Kernels report Status codes;
// Check and CheckTransform translate them into errors that can be matched
// with errors.Is against the sentinels below.
package algovec
