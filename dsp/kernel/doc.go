// Package kernel defines the numeric kernel provider capability used by the
// vector, ring buffer and FFT packages.
//
// A provider is a table of typed function pointers (Ops[T] for one element
// type, ConvOps for conversions between types). Providers register
// themselves with a per-type registry, usually from init(), and callers
// resolve the best table for the current CPU with Provider[T] or
// Conversions. Resolution merges entries field by field, so a provider only
// needs to fill in the operations it accelerates; everything else falls
// through to lower-priority entries such as the pure Go fallback in
// kernel/generic.
//
// Kernels report failures through Status values instead of panicking. Status
// zero (StatusOK) is the only success value. Translating a status into an
// error is the caller's job (see algovec.Check).
package kernel
