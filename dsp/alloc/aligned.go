package alloc

import (
	"unsafe"

	"github.com/cwbudde/algo-vec/dsp/kernel"
	"golang.org/x/sys/cpu"
)

// CacheLine is the alignment used by Aligned, taken from the padding size
// golang.org/x/sys/cpu uses for the running architecture.
const CacheLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Aligned allocates regions aligned to CacheLine. Memory is managed by the
// Go runtime; Free only drops the reference.
type Aligned struct{}

// Allocate implements Allocator.
func (Aligned) Allocate(kind kernel.Kind, count int) ([]byte, error) {
	if count <= 0 {
		return nil, nil
	}
	n, err := requestSize(kind, count)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, n+CacheLine)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) % uintptr(CacheLine)); rem != 0 {
		off = CacheLine - rem
	}
	return raw[off : off+n : off+n], nil
}

// Free implements Allocator.
func (Aligned) Free([]byte) {}
