// Package ring holds the slot bookkeeping shared by the delay, average and
// queue packages: a fixed number of equally sized buffers.
package ring

import (
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
)

// Slots is a fixed set of buffers of one length.
type Slots[T kernel.Element] []*vector.Buffer[T]

// New allocates count zeroed buffers of vectorSize elements. On failure the
// buffers allocated so far are released.
func New[T kernel.Element](count, vectorSize int, opts []vector.Option) (Slots[T], error) {
	s := make(Slots[T], 0, count)
	for range count {
		b, err := vector.New[T](vectorSize, opts...)
		if err != nil {
			s.Release()
			return nil, err
		}
		s = append(s, b)
	}
	return s, nil
}

// Clear zero-fills every slot.
func (s Slots[T]) Clear() error {
	for _, b := range s {
		if err := b.Clear(); err != nil {
			return err
		}
	}
	return nil
}

// Release returns every slot's memory to its allocator.
func (s Slots[T]) Release() {
	for _, b := range s {
		b.Release()
	}
}

// Next returns the index after i, wrapping at len(s).
func (s Slots[T]) Next(i int) int {
	i++
	if i == len(s) {
		return 0
	}
	return i
}
