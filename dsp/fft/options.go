package fft

import "github.com/cwbudde/algo-vec/dsp/alloc"

type config struct {
	scaling Scaling
	backend string
	alloc   alloc.Allocator
}

// Option configures a Plan or engine at construction time.
type Option func(*config)

// WithScaling selects the normalization. The default is DivInverseByN.
func WithScaling(s Scaling) Option {
	return func(cfg *config) {
		cfg.scaling = s
	}
}

// WithBackend selects a registered backend by name.
func WithBackend(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.backend = name
		}
	}
}

// WithAllocator sets the allocator for the plan's memory regions and the
// engine's buffers. Nil selects alloc.Default().
func WithAllocator(a alloc.Allocator) Option {
	return func(cfg *config) {
		if a != nil {
			cfg.alloc = a
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		scaling: DivInverseByN,
		backend: DefaultBackend,
		alloc:   alloc.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
