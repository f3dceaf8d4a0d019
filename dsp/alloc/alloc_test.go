package alloc

import (
	"errors"
	"testing"
	"unsafe"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/kernel"
)

func TestAligned_Allocate(t *testing.T) {
	for _, kind := range []kernel.Kind{kernel.KindUint8, kernel.KindInt16, kernel.KindFloat64, kernel.KindComplex128} {
		t.Run(kind.String(), func(t *testing.T) {
			mem, err := Aligned{}.Allocate(kind, 17)
			if err != nil {
				t.Fatalf("Allocate: %v", err)
			}
			if len(mem) != 17*kind.Size() {
				t.Fatalf("len = %d, want %d", len(mem), 17*kind.Size())
			}
			if p := uintptr(unsafe.Pointer(&mem[0])); p%uintptr(CacheLine) != 0 {
				t.Fatalf("region at %#x not aligned to %d", p, CacheLine)
			}
			for i, b := range mem {
				if b != 0 {
					t.Fatalf("mem[%d] = %d, want 0", i, b)
				}
			}
		})
	}
}

func TestAligned_ZeroCount(t *testing.T) {
	mem, err := Default().Allocate(kernel.KindFloat32, 0)
	if mem != nil || err != nil {
		t.Fatalf("Allocate(0) = (%v, %v), want (nil, nil)", mem, err)
	}
	Default().Free(nil)
}

func TestAllocate_UnknownKind(t *testing.T) {
	if _, err := Default().Allocate(kernel.KindInvalid, 4); !errors.Is(err, algovec.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMake(t *testing.T) {
	data, mem, err := Make[complex64](nil, 8)
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if len(data) != 8 || len(mem) != 64 {
		t.Fatalf("len(data)=%d len(mem)=%d", len(data), len(mem))
	}
	data[3] = 1 + 2i
	if got := *(*complex64)(unsafe.Pointer(&mem[24])); got != 1+2i {
		t.Fatalf("typed view does not alias region: %v", got)
	}

	if _, _, err := Make[float32](nil, -1); !errors.Is(err, algovec.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative count, got %v", err)
	}
}

type offsetAllocator struct{}

func (offsetAllocator) Allocate(kind kernel.Kind, count int) ([]byte, error) {
	mem, err := Aligned{}.Allocate(kernel.KindUint8, count*kind.Size()+1)
	if err != nil {
		return nil, err
	}
	return mem[1:], nil
}

func (offsetAllocator) Free([]byte) {}

func TestMake_Misaligned(t *testing.T) {
	_, _, err := Make[float64](offsetAllocator{}, 4)
	if !errors.Is(err, algovec.ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
}

func TestLimited(t *testing.T) {
	l := NewLimited(nil, 100)

	a, err := l.Allocate(kernel.KindFloat64, 10)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if l.InUse() != 80 {
		t.Fatalf("InUse = %d, want 80", l.InUse())
	}

	if _, err := l.Allocate(kernel.KindFloat64, 3); !errors.Is(err, algovec.ErrAllocation) {
		t.Fatalf("expected ErrAllocation over budget, got %v", err)
	}
	if l.InUse() != 80 {
		t.Fatalf("failed request changed InUse to %d", l.InUse())
	}

	l.Free(a)
	l.Free(a)
	if l.InUse() != 0 {
		t.Fatalf("InUse after Free = %d, want 0", l.InUse())
	}

	if _, err := l.Allocate(kernel.KindFloat64, 12); err != nil {
		t.Fatalf("Allocate after Free: %v", err)
	}
}

func TestPool(t *testing.T) {
	p := NewPool()

	mem, err := p.Allocate(kernel.KindFloat32, 5)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(mem) != 20 || cap(mem) != 32 {
		t.Fatalf("len=%d cap=%d, want 20/32", len(mem), cap(mem))
	}
	for i := range mem {
		mem[i] = 0xff
	}
	p.Free(mem)

	again, err := p.Allocate(kernel.KindInt32, 6)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	for i, b := range again {
		if b != 0 {
			t.Fatalf("reused region not zeroed at %d", i)
		}
	}
}

func TestSizeClass(t *testing.T) {
	tests := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128, 1000: 1024}
	for n, want := range tests {
		if got := sizeClass(n); got != want {
			t.Errorf("sizeClass(%d) = %d, want %d", n, got, want)
		}
	}
}
