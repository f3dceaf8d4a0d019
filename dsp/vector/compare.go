package vector

import (
	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Equal reports whether b and other have the same length and identical
// element bytes. NaN elements with the same bit pattern compare equal.
func (b *Buffer[T]) Equal(other *Buffer[T]) (bool, error) {
	if b.Len() != other.Len() {
		return false, nil
	}
	if b.Empty() {
		return true, nil
	}
	eq, status := kernel.Provider[T]().Equal(b.data, other.data)
	if err := algovec.Check(status, "equal"); err != nil {
		return false, err
	}
	return eq, nil
}

// EqualScalar reports whether every element == v. NaN never matches. An
// empty buffer returns true.
func (b *Buffer[T]) EqualScalar(v T) bool {
	for _, x := range b.data {
		if x != v {
			return false
		}
	}
	return true
}
