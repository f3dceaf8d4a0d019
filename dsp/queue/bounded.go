// Package queue provides Bounded, a fixed-capacity FIFO of vectors.
package queue

import (
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
	"github.com/cwbudde/algo-vec/dsp/vector"
	"github.com/cwbudde/algo-vec/internal/ring"
)

// Bounded is a circular FIFO of equally sized vectors.
//
// Pushing never blocks or fails for lack of room. When the queue is full a
// push overwrites the slot at the tail, the oldest unread vector, and the
// tail stays where it is, so the next Pop returns the vector just pushed.
type Bounded[T kernel.Element] struct {
	slots      ring.Slots[T]
	head       int
	tail       int
	count      int
	vectorSize int
	opts       []vector.Option
}

// New returns an empty queue holding up to capacity vectors of vectorSize
// elements.
func New[T kernel.Element](vectorSize, capacity int, opts ...vector.Option) (*Bounded[T], error) {
	if vectorSize <= 0 || capacity <= 0 {
		return nil, fmt.Errorf("queue: vector size %d, capacity %d: %w", vectorSize, capacity, algovec.ErrInvalidArgument)
	}
	slots, err := ring.New[T](capacity, vectorSize, opts)
	if err != nil {
		return nil, fmt.Errorf("queue: %w", err)
	}
	return &Bounded[T]{slots: slots, vectorSize: vectorSize, opts: opts}, nil
}

// Front returns the slot the next Push writes to. Fill it in place and call
// Advance to enqueue without an extra copy.
func (q *Bounded[T]) Front() *vector.Buffer[T] {
	return q.slots[q.head]
}

// Back returns the slot the next Pop reads from.
func (q *Bounded[T]) Back() *vector.Buffer[T] {
	return q.slots[q.tail]
}

// Push copies value into Front and enqueues it.
func (q *Bounded[T]) Push(value *vector.Buffer[T]) error {
	if err := q.Front().CopyFrom(value); err != nil {
		return fmt.Errorf("queue: push: %w", err)
	}
	q.Advance()
	return nil
}

// Advance enqueues the current Front slot.
func (q *Bounded[T]) Advance() {
	q.head = q.slots.Next(q.head)
	if q.count < len(q.slots) {
		q.count++
	}
}

// Pop copies Back into out and dequeues it. Popping an empty queue fails
// with ErrOutOfRange and leaves the queue unchanged.
func (q *Bounded[T]) Pop(out *vector.Buffer[T]) error {
	if q.count == 0 {
		return fmt.Errorf("queue: pop from empty queue: %w", algovec.ErrOutOfRange)
	}
	if err := out.CopyFrom(q.Back()); err != nil {
		return fmt.Errorf("queue: pop: %w", err)
	}
	q.Drop()
	return nil
}

// Drop dequeues Back without copying. It is a no-op on an empty queue.
func (q *Bounded[T]) Drop() {
	if q.count == 0 {
		return
	}
	q.tail = q.slots.Next(q.tail)
	q.count--
}

// Empty reports whether the queue holds no vectors.
func (q *Bounded[T]) Empty() bool { return q.count == 0 }

// Full reports whether the queue holds Cap vectors.
func (q *Bounded[T]) Full() bool { return q.count == len(q.slots) }

// Len returns the number of queued vectors.
func (q *Bounded[T]) Len() int { return q.count }

// Cap returns the maximum number of queued vectors.
func (q *Bounded[T]) Cap() int { return len(q.slots) }

// VectorSize returns the length of every slot.
func (q *Bounded[T]) VectorSize() int { return q.vectorSize }

// Reset empties the queue and zeroes all slots.
func (q *Bounded[T]) Reset() error {
	q.head, q.tail, q.count = 0, 0, 0
	return q.slots.Clear()
}

// Reinit rebuilds the queue for a new vector size and capacity. Contents
// are discarded. q is unchanged on failure.
func (q *Bounded[T]) Reinit(vectorSize, capacity int) error {
	if vectorSize <= 0 || capacity <= 0 {
		return fmt.Errorf("queue: reinit vector size %d, capacity %d: %w", vectorSize, capacity, algovec.ErrInvalidArgument)
	}
	if vectorSize == q.vectorSize && capacity == len(q.slots) {
		return q.Reset()
	}
	tmp, err := New[T](vectorSize, capacity, q.opts...)
	if err != nil {
		return err
	}
	q.slots.Release()
	*q = *tmp
	return nil
}

// Resize changes the capacity. Contents are discarded.
func (q *Bounded[T]) Resize(capacity int) error {
	return q.Reinit(q.vectorSize, capacity)
}

// Release returns the slot memory to the allocator.
func (q *Bounded[T]) Release() {
	q.slots.Release()
	q.slots = nil
}
