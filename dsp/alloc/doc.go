// Package alloc provides the allocator capability used by vectors and FFT
// plans.
//
// An Allocator hands out raw byte regions sized for a number of elements of
// a given kernel.Kind. Make wraps the result in a typed slice. The default
// allocator aligns every region to the CPU cache line; Limited enforces a
// byte budget and Pool recycles regions by size class.
package alloc
