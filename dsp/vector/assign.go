package vector

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// window returns the number of elements available from pos, limited by
// count. A negative count means "to the end".
func (b *Buffer[T]) window(pos, count int) (int, error) {
	if pos < 0 || pos >= b.Len() {
		return 0, fmt.Errorf("vector: position %d of %d: %w", pos, b.Len(), algovec.ErrOutOfRange)
	}
	n := b.Len() - pos
	if count >= 0 && count < n {
		n = count
	}
	return n, nil
}

// Assign sets every element to value.
func (b *Buffer[T]) Assign(value T) error {
	if b.Empty() {
		return nil
	}
	return algovec.Check(kernel.Provider[T]().Set(value, b.data), "set")
}

// AssignRange sets up to count elements starting at pos to value. The range
// is clamped to the end of the buffer; a negative count fills to the end.
func (b *Buffer[T]) AssignRange(value T, pos, count int) error {
	n, err := b.window(pos, count)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return algovec.Check(kernel.Provider[T]().Set(value, b.data[pos:pos+n]), "set")
}

// CopyFrom copies other into b. Both buffers must have the same length,
// except that a buffer that has never been allocated adopts other's size.
func (b *Buffer[T]) CopyFrom(other *Buffer[T]) error {
	if other == b {
		return nil
	}
	return b.AssignSlice(other.data)
}

// AssignSlice copies data into b under the same rules as CopyFrom.
func (b *Buffer[T]) AssignSlice(data []T) error {
	if b.mem == nil && b.Len() == 0 && len(data) > 0 {
		if err := b.allocate(len(data)); err != nil {
			return err
		}
	}
	if len(data) != b.Len() {
		return fmt.Errorf("vector: copy %d elements into %d: %w", len(data), b.Len(), algovec.ErrSizeMismatch)
	}
	if b.Empty() {
		return nil
	}
	return algovec.Check(kernel.Provider[T]().Copy(data, b.data), "copy")
}

// AssignSliceRange copies the leading elements of data into b starting at
// pos. The number copied is the smallest of len(data), count (if
// non-negative) and the room left after pos.
func (b *Buffer[T]) AssignSliceRange(data []T, pos, count int) error {
	n, err := b.window(pos, count)
	if err != nil {
		return err
	}
	n = min(n, len(data))
	if n == 0 {
		return nil
	}
	return algovec.Check(kernel.Provider[T]().Copy(data[:n], b.data[pos:pos+n]), "copy")
}

// CopyTo copies up to count elements of b starting at pos into the front of
// dst. The number copied is also limited by dst.Len(). It returns the number
// of elements copied.
func (b *Buffer[T]) CopyTo(dst *Buffer[T], pos, count int) (int, error) {
	n, err := b.window(pos, count)
	if err != nil {
		return 0, err
	}
	n = min(n, dst.Len())
	if n == 0 {
		return 0, nil
	}
	if err := algovec.Check(kernel.Provider[T]().Copy(b.data[pos:pos+n], dst.data[:n]), "copy"); err != nil {
		return 0, err
	}
	return n, nil
}
