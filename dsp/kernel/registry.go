package kernel

import (
	"reflect"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Entry is one registered provider variant for a kernel table type E
// (Ops[T] or ConvOps).
type Entry[E any] struct {
	// Name is a human-readable identifier (e.g. "generic", "gonum").
	Name string

	// SIMDLevel is the instruction set the entry requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries. Higher wins. Suggested values:
	//   - pure Go fallback: 0
	//   - third-party pure Go libraries: 5
	//   - SIMD-dispatching libraries: 10
	//   - hand-written assembly for one level: 20+
	Priority int

	// Ops holds the kernel functions. Nil fields are allowed.
	Ops E
}

// Registry stores the provider variants for one kernel table type.
//
// Registration is safe for concurrent use. Resolve caches the merged table
// until the next Register or Reset.
type Registry[E any] struct {
	mu       sync.RWMutex
	entries  []Entry[E]
	sorted   bool
	resolved *E
	features cpu.Features
}

// Register adds an entry and invalidates the resolved table.
func (r *Registry[E]) Register(entry Entry[E]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
	r.resolved = nil
}

// Lookup returns the highest-priority entry compatible with features, or
// nil if none is registered.
func (r *Registry[E]) Lookup(features cpu.Features) *Entry[E] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortLocked()
	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// Resolve merges all entries compatible with features into one table.
//
// Entries are visited in priority order; each function field that is still
// nil is taken from the first entry that provides it. The result is cached
// per feature set.
func (r *Registry[E]) Resolve(features cpu.Features) E {
	r.mu.RLock()
	if r.resolved != nil && r.features == features {
		out := *r.resolved
		r.mu.RUnlock()
		return out
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortLocked()

	var out E
	dst := reflect.ValueOf(&out).Elem()
	for i := range r.entries {
		if !cpu.Supports(features, r.entries[i].SIMDLevel) {
			continue
		}
		src := reflect.ValueOf(r.entries[i].Ops)
		for f := 0; f < dst.NumField(); f++ {
			field := dst.Field(f)
			if field.Kind() != reflect.Func || !field.IsNil() {
				continue
			}
			if fn := src.Field(f); !fn.IsNil() {
				field.Set(fn)
			}
		}
	}

	r.resolved = &out
	r.features = features
	return out
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *Registry[E]) ListEntries() []Entry[E] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortLocked()
	entries := make([]Entry[E], len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry[E]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
	r.resolved = nil
}

// sortLocked sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry[E]) sortLocked() {
	if r.sorted {
		return
	}
	// Insertion sort keeps registration order for equal priorities.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}
