// Package vector provides Buffer, an owning resizable array of one numeric
// element type.
//
// A Buffer has a logical length (Len) that never exceeds its allocated
// capacity (Cap). Memory comes from an alloc.Allocator and every numeric
// operation goes through the kernel provider resolved for the element type,
// so registering a faster provider speeds up all buffers of that type.
//
// Operations that combine two buffers require equal lengths and leave the
// destination unchanged when they fail. Failures are reported as errors
// that match the sentinels in the algovec package:
//
//	if err := a.Add(b); errors.Is(err, algovec.ErrSizeMismatch) {
//		// lengths differ, a is untouched
//	}
//
// Buffers are not safe for concurrent mutation.
package vector
