package fft

import (
	"encoding/binary"
	"sort"
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

// Sizes are the byte sizes of a plan's memory regions.
type Sizes struct {
	Spec int
	Init int
	Work int
}

// Transformer executes transforms for one initialized plan. dst and src
// may alias. work is the plan's work region.
type Transformer[C kernel.Complex] interface {
	Forward(dst, src []C, work []byte) kernel.Status
	Inverse(dst, src []C, work []byte) kernel.Status
}

// Backend is an FFT implementation that plans are built on.
type Backend[C kernel.Complex] interface {
	// Sizes reports the memory a plan of this order needs.
	Sizes(order int, scaling Scaling) (Sizes, kernel.Status)

	// Init prepares a transformer. spec and init have the lengths
	// reported by Sizes; spec stays valid for the transformer's lifetime.
	Init(order int, scaling Scaling, spec, init []byte) (Transformer[C], kernel.Status)

	// NormalizedInverse reports whether Inverse already divides by N.
	NormalizedInverse() bool
}

type backendPair struct {
	c64  Backend[complex64]
	c128 Backend[complex128]
}

var backends = struct {
	sync.RWMutex
	m map[string]backendPair
}{m: make(map[string]backendPair)}

// DefaultBackend is the backend plans use unless WithBackend says
// otherwise.
const DefaultBackend = "algofft"

// RegisterBackend makes a backend available under name. Either
// implementation may be nil if the backend does not support that precision.
// Registering an existing name replaces it.
func RegisterBackend(name string, c64 Backend[complex64], c128 Backend[complex128]) {
	backends.Lock()
	defer backends.Unlock()
	backends.m[name] = backendPair{c64: c64, c128: c128}
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	backends.RLock()
	defer backends.RUnlock()

	names := make([]string, 0, len(backends.m))
	for name := range backends.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether backend name has an implementation for C.
func Supports[C kernel.Complex](name string) bool {
	_, status := lookupBackend[C](name)
	return status.OK()
}

func lookupBackend[C kernel.Complex](name string) (Backend[C], kernel.Status) {
	backends.RLock()
	pair, ok := backends.m[name]
	backends.RUnlock()
	if !ok {
		return nil, kernel.StatusNotSupported
	}

	var (
		zero C
		b    any
	)
	switch any(zero).(type) {
	case complex64:
		if pair.c64 != nil {
			b = pair.c64
		}
	case complex128:
		if pair.c128 != nil {
			b = pair.c128
		}
	}
	if b == nil {
		return nil, kernel.StatusNotSupported
	}
	return b.(Backend[C]), kernel.StatusOK
}

// The spec region starts with a header describing the plan. Transformers
// read the transform length from it.
const specHeaderSize = 16

func writeSpecHeader(spec []byte, order int, scaling Scaling) kernel.Status {
	if len(spec) < specHeaderSize {
		return kernel.StatusSizeErr
	}
	binary.LittleEndian.PutUint32(spec[0:], uint32(order))
	binary.LittleEndian.PutUint32(spec[4:], uint32(scaling))
	binary.LittleEndian.PutUint64(spec[8:], uint64(1)<<order)
	return kernel.StatusOK
}

func specLen(spec []byte) int {
	return int(binary.LittleEndian.Uint64(spec[8:]))
}

// checkLens validates transform operands against the plan length.
func checkLens[C kernel.Complex](spec []byte, dst, src []C) kernel.Status {
	n := specLen(spec)
	if len(dst) != n || len(src) != n {
		return kernel.StatusSizeErr
	}
	return kernel.StatusOK
}

// view reinterprets mem as a []C. It returns nil if mem is too short or
// not aligned for C.
func view[C kernel.Complex](mem []byte, n int) []C {
	var zero C
	size := int(unsafe.Sizeof(zero))
	if n == 0 || len(mem) < n*size {
		return nil
	}
	// complex values only need the alignment of their float component.
	if uintptr(unsafe.Pointer(&mem[0]))%uintptr(size/2) != 0 {
		return nil
	}
	return unsafe.Slice((*C)(unsafe.Pointer(&mem[0])), n)
}

func elemSize[C kernel.Complex]() int {
	var zero C
	return int(unsafe.Sizeof(zero))
}

// identity is the transformer for order 0, where both directions copy.
type identity[C kernel.Complex] struct {
	spec []byte
}

func (t identity[C]) Forward(dst, src []C, _ []byte) kernel.Status {
	if s := checkLens(t.spec, dst, src); !s.OK() {
		return s
	}
	copy(dst, src)
	return kernel.StatusOK
}

func (t identity[C]) Inverse(dst, src []C, work []byte) kernel.Status {
	return t.Forward(dst, src, work)
}
