package vector

import "github.com/cwbudde/algo-vec/dsp/alloc"

type config struct {
	alloc alloc.Allocator
}

// Option configures a Buffer at construction time.
type Option func(*config)

// WithAllocator sets the allocator used for the buffer's memory and for
// every reallocation. Nil selects alloc.Default().
func WithAllocator(a alloc.Allocator) Option {
	return func(cfg *config) {
		if a != nil {
			cfg.alloc = a
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{alloc: alloc.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
