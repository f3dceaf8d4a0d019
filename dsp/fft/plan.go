package fft

import (
	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/alloc"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Plan holds the precomputed state for complex transforms of one length.
// A built plan is immutable; Reinit replaces it wholesale.
//
// The zero Plan is uninitialized and every transform on it fails.
type Plan[C kernel.Complex] struct {
	order   int
	scaling Scaling
	backend string
	sizes   Sizes

	spec []byte
	init []byte
	work []byte

	tr       Transformer[C]
	fwd, inv C
	alloc    alloc.Allocator
}

// NewPlan builds a plan for transforms of length 1<<order.
func NewPlan[C kernel.Complex](order int, opts ...Option) (*Plan[C], error) {
	cfg := applyOptions(opts)
	p := &Plan[C]{alloc: cfg.alloc}
	if err := p.build(order, cfg.scaling, cfg.backend); err != nil {
		return nil, err
	}
	return p, nil
}

// build fills an uninitialized p. On failure p is left uninitialized and
// every region it allocated has been freed.
func (p *Plan[C]) build(order int, scaling Scaling, backend string) error {
	if order < 0 || order > MaxOrder {
		return algovec.CheckTransform(kernel.StatusFFTOrderErr, "fft.NewPlan")
	}
	if !scaling.Valid() {
		return algovec.CheckTransform(kernel.StatusFFTFlagErr, "fft.NewPlan")
	}
	b, status := lookupBackend[C](backend)
	if !status.OK() {
		return algovec.CheckTransform(status, "fft.NewPlan")
	}

	sizes, status := b.Sizes(order, scaling)
	if !status.OK() {
		return algovec.CheckTransform(status, "fft.NewPlan")
	}

	a := p.allocator()
	var err error
	if p.spec, err = a.Allocate(kernel.KindUint8, sizes.Spec); err != nil {
		p.free()
		return err
	}
	if p.init, err = a.Allocate(kernel.KindUint8, sizes.Init); err != nil {
		p.free()
		return err
	}
	if p.work, err = a.Allocate(kernel.KindUint8, sizes.Work); err != nil {
		p.free()
		return err
	}

	tr, status := b.Init(order, scaling, p.spec, p.init)
	if !status.OK() {
		p.free()
		return algovec.CheckTransform(status, "fft.NewPlan")
	}

	fwd, inv := scaling.factors(1<<order, b.NormalizedInverse())
	p.order = order
	p.scaling = scaling
	p.backend = backend
	p.sizes = sizes
	p.tr = tr
	p.fwd = C(complex(fwd, 0))
	p.inv = C(complex(inv, 0))
	return nil
}

func (p *Plan[C]) allocator() alloc.Allocator {
	if p.alloc == nil {
		p.alloc = alloc.Default()
	}
	return p.alloc
}

func (p *Plan[C]) free() {
	a := p.allocator()
	a.Free(p.spec)
	a.Free(p.init)
	a.Free(p.work)
	p.spec, p.init, p.work = nil, nil, nil
	p.tr = nil
}

// Built reports whether p holds an initialized transform.
func (p *Plan[C]) Built() bool { return p.tr != nil }

// Order returns log2 of the transform length.
func (p *Plan[C]) Order() int { return p.order }

// Len returns the transform length, or 0 for an uninitialized plan.
func (p *Plan[C]) Len() int {
	if !p.Built() {
		return 0
	}
	return 1 << p.order
}

// Scaling returns the plan's normalization.
func (p *Plan[C]) Scaling() Scaling { return p.scaling }

// Sizes returns the byte sizes of the plan's memory regions.
func (p *Plan[C]) Sizes() Sizes { return p.sizes }

// Backend returns the name of the backend the plan was built on.
func (p *Plan[C]) Backend() string { return p.backend }

// Reinit rebuilds the plan for a new order and scaling on the same backend
// and allocator. The replacement is built first; on failure p is unchanged.
func (p *Plan[C]) Reinit(order int, scaling Scaling) error {
	backend := p.backend
	if backend == "" {
		backend = DefaultBackend
	}
	tmp := &Plan[C]{alloc: p.allocator()}
	if err := tmp.build(order, scaling, backend); err != nil {
		return err
	}
	p.free()
	*p = *tmp
	return nil
}

// Release frees the plan's memory and leaves it uninitialized.
func (p *Plan[C]) Release() {
	p.free()
	p.order = 0
	p.sizes = Sizes{}
}

// forward transforms src into dst (which may alias) and applies the
// forward scale factor.
func (p *Plan[C]) forward(dst, src []C) kernel.Status {
	if !p.Built() {
		return kernel.StatusNullPtr
	}
	if s := p.tr.Forward(dst, src, p.work); !s.OK() {
		return s
	}
	return p.scale(p.fwd, dst)
}

func (p *Plan[C]) inverse(dst, src []C) kernel.Status {
	if !p.Built() {
		return kernel.StatusNullPtr
	}
	if s := p.tr.Inverse(dst, src, p.work); !s.OK() {
		return s
	}
	return p.scale(p.inv, dst)
}

func (p *Plan[C]) scale(f C, dst []C) kernel.Status {
	if f == 1 {
		return kernel.StatusOK
	}
	return kernel.Provider[C]().MulC(f, dst)
}
