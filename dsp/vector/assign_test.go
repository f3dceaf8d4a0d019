package vector

import (
	"errors"
	"testing"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/internal/testutil"
)

func TestAssignRange(t *testing.T) {
	tests := []struct {
		name  string
		pos   int
		count int
		want  []float32
	}{
		{"whole", 0, -1, []float32{7, 7, 7, 7, 7}},
		{"middle", 1, 2, []float32{0, 7, 7, 0, 0}},
		{"clamped", 3, 10, []float32{0, 0, 0, 7, 7}},
		{"zero count", 2, 0, []float32{0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := New[float32](5)
			if err := b.AssignRange(7, tt.pos, tt.count); err != nil {
				t.Fatalf("AssignRange: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, b.Data(), tt.want, 0)
		})
	}

	b, _ := New[float32](5)
	for _, pos := range []int{-1, 5} {
		if err := b.AssignRange(1, pos, 1); !errors.Is(err, algovec.ErrOutOfRange) {
			t.Errorf("AssignRange(pos=%d) err = %v, want ErrOutOfRange", pos, err)
		}
	}
}

func TestAssignSlice(t *testing.T) {
	b, _ := New[int32](3)
	if err := b.AssignSlice([]int32{4, 5, 6}); err != nil {
		t.Fatalf("AssignSlice: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, b.Data(), []int32{4, 5, 6}, 0)

	if err := b.AssignSlice([]int32{1, 2}); !errors.Is(err, algovec.ErrSizeMismatch) {
		t.Fatalf("AssignSlice mismatch err = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, b.Data(), []int32{4, 5, 6}, 0)
}

func TestCopyFrom_AdoptsSizeWhenUnallocated(t *testing.T) {
	src := mustFromSlice(t, []float64{1, 2, 3})

	var dst Buffer[float64]
	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst.Data(), src.Data(), 0)

	// Once allocated the size is fixed.
	longer := mustFromSlice(t, []float64{1, 2, 3, 4})
	if err := dst.CopyFrom(longer); !errors.Is(err, algovec.ErrSizeMismatch) {
		t.Fatalf("CopyFrom mismatch err = %v", err)
	}
}

func TestAssignSliceRange(t *testing.T) {
	b, _ := New[float64](5)
	if err := b.AssignSliceRange([]float64{1, 2, 3, 4}, 3, -1); err != nil {
		t.Fatalf("AssignSliceRange: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, b.Data(), []float64{0, 0, 0, 1, 2}, 0)

	if err := b.AssignSliceRange([]float64{9, 9}, 0, 1); err != nil {
		t.Fatalf("AssignSliceRange count: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, b.Data(), []float64{9, 0, 0, 1, 2}, 0)

	if err := b.AssignSliceRange([]float64{1}, 5, 1); !errors.Is(err, algovec.ErrOutOfRange) {
		t.Fatalf("AssignSliceRange(pos=5) err = %v", err)
	}
}

func TestCopyTo(t *testing.T) {
	src := mustFromSlice(t, []int16{1, 2, 3, 4, 5})
	dst, _ := New[int16](3)

	n, err := src.CopyTo(dst, 1, -1)
	if err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if n != 3 {
		t.Fatalf("copied %d, want 3", n)
	}
	testutil.RequireSliceNearlyEqual(t, dst.Data(), []int16{2, 3, 4}, 0)

	n, err = src.CopyTo(dst, 4, 10)
	if err != nil || n != 1 {
		t.Fatalf("CopyTo tail = (%d, %v)", n, err)
	}
	if dst.At(0) != 5 {
		t.Fatalf("dst[0] = %d, want 5", dst.At(0))
	}

	if _, err := src.CopyTo(dst, 7, 1); !errors.Is(err, algovec.ErrOutOfRange) {
		t.Fatalf("CopyTo(pos=7) err = %v", err)
	}
}
