package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Limited wraps another allocator with a byte budget. It is safe for
// concurrent use.
type Limited struct {
	mu     sync.Mutex
	next   Allocator
	budget int
	inUse  int
	live   map[*byte]int
}

// NewLimited returns an allocator that fails with ErrAllocation once more
// than budget bytes are outstanding. A nil next uses Default().
func NewLimited(next Allocator, budget int) *Limited {
	if next == nil {
		next = Default()
	}
	return &Limited{
		next:   next,
		budget: budget,
		live:   make(map[*byte]int),
	}
}

// Allocate implements Allocator.
func (l *Limited) Allocate(kind kernel.Kind, count int) ([]byte, error) {
	if count <= 0 {
		return nil, nil
	}
	n, err := requestSize(kind, count)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inUse+n > l.budget {
		return nil, fmt.Errorf("alloc: %d bytes requested, %d of %d in use: %w",
			n, l.inUse, l.budget, algovec.ErrAllocation)
	}
	mem, err := l.next.Allocate(kind, count)
	if err != nil {
		return nil, err
	}
	l.inUse += n
	l.live[unsafe.SliceData(mem)] = n
	return mem, nil
}

// Free implements Allocator. Regions not handed out by l are ignored.
func (l *Limited) Free(mem []byte) {
	if len(mem) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := unsafe.SliceData(mem)
	n, ok := l.live[key]
	if !ok {
		return
	}
	delete(l.live, key)
	l.inUse -= n
	l.next.Free(mem)
}

// InUse returns the number of bytes currently allocated.
func (l *Limited) InUse() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inUse
}

// Budget returns the configured byte budget.
func (l *Limited) Budget() int {
	return l.budget
}
