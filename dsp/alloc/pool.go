package alloc

import (
	"math/bits"
	"sync"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Pool recycles regions through sync.Pool, one pool per power-of-two size
// class, to reduce GC pressure when plans or buffers are rebuilt in a loop.
// Regions come from Aligned and are zeroed on reuse.
type Pool struct {
	mu      sync.Mutex
	classes map[int]*sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{classes: make(map[int]*sync.Pool)}
}

// Allocate implements Allocator. The returned region has the requested
// length; its capacity is the size class.
func (p *Pool) Allocate(kind kernel.Kind, count int) ([]byte, error) {
	if count <= 0 {
		return nil, nil
	}
	n, err := requestSize(kind, count)
	if err != nil {
		return nil, err
	}

	class := sizeClass(n)
	if mem, ok := p.class(class).Get().(*[]byte); ok {
		region := (*mem)[:n]
		clear(region)
		return region, nil
	}

	mem, err := Aligned{}.Allocate(kernel.KindUint8, class)
	if err != nil {
		return nil, err
	}
	return mem[:n], nil
}

// Free implements Allocator. The caller must not use mem afterwards.
func (p *Pool) Free(mem []byte) {
	if mem == nil {
		return
	}
	class := cap(mem)
	if class != sizeClass(class) {
		return
	}
	full := mem[:class]
	p.class(class).Put(&full)
}

func (p *Pool) class(size int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, ok := p.classes[size]
	if !ok {
		sp = &sync.Pool{}
		p.classes[size] = sp
	}
	return sp
}

// sizeClass rounds n up to the next power of two.
func sizeClass(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
