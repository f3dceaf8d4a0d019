package delay

import (
	"errors"
	"testing"

	algovec "github.com/cwbudde/algo-vec"
	"github.com/cwbudde/algo-vec/dsp/alloc"
	"github.com/cwbudde/algo-vec/dsp/vector"
	"github.com/cwbudde/algo-vec/internal/testutil"
)

func filled(t *testing.T, n int, v float64) *vector.Buffer[float64] {
	t.Helper()
	b, err := vector.NewFilled(n, v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// --- construction and validation ---

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name              string
		vectorSize, depth int
	}{
		{"zero vector size", 0, 1},
		{"negative vector size", -1, 1},
		{"negative depth", 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New[float64](tt.vectorSize, tt.depth); !errors.Is(err, algovec.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New[complex64](16, 3)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 4 || d.Depth() != 3 || d.VectorSize() != 16 {
		t.Fatalf("Len=%d Depth=%d VectorSize=%d", d.Len(), d.Depth(), d.VectorSize())
	}
	if !d.Data().EqualScalar(0) {
		t.Fatal("new line not zeroed")
	}
}

// --- push/data ---

func TestDelayByDepth(t *testing.T) {
	const depth = 3
	d, err := New[float64](2, depth)
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k < 10; k++ {
		if err := d.Push(filled(t, 2, float64(k+1))); err != nil {
			t.Fatalf("Push %d: %v", k, err)
		}
		want := 0.0
		if k >= depth {
			want = float64(k - depth + 1)
		}
		if !d.Data().EqualScalar(want) {
			t.Fatalf("after push %d: Data = %v, want %v", k, d.Data(), want)
		}
	}
}

func TestZeroDepthPassesThrough(t *testing.T) {
	d, err := New[int32](3, 0)
	if err != nil {
		t.Fatal(err)
	}
	in, _ := vector.FromSlice([]int32{1, 2, 3})
	if err := d.Push(in); err != nil {
		t.Fatal(err)
	}

	out, _ := vector.New[int32](3)
	if err := d.Get(out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Data(), []int32{1, 2, 3}, 0)
}

func TestRingOccupancy(t *testing.T) {
	d, err := New[float32](1, 4)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < d.Len(); k++ {
		if err := d.Push(mustSlice(t, []float32{float32(k)})); err != nil {
			t.Fatal(err)
		}
	}
	// A full cycle returns the cursor to the first slot.
	if got := d.Data().At(0); got != 0 {
		t.Fatalf("Data after full cycle = %v, want 0", got)
	}
	d.Advance()
	if got := d.Data().At(0); got != 1 {
		t.Fatalf("Data after Advance = %v, want 1", got)
	}
}

func mustSlice(t *testing.T, data []float32) *vector.Buffer[float32] {
	t.Helper()
	b, err := vector.FromSlice(data)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestPushSizeMismatch(t *testing.T) {
	d, _ := New[float64](4, 1)
	if err := d.Push(filled(t, 3, 1)); !errors.Is(err, algovec.ErrSizeMismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
	// Cursor untouched: the next valid push lands in slot 0.
	if err := d.Push(filled(t, 4, 2)); err != nil {
		t.Fatal(err)
	}
	d.Advance()
	if !d.Data().EqualScalar(2) {
		t.Fatalf("Data = %v, want 2s", d.Data())
	}
}

// --- lifecycle ---

func TestReset(t *testing.T) {
	d, _ := New[float64](2, 1)
	_ = d.Push(filled(t, 2, 5))
	if err := d.Reset(); err != nil {
		t.Fatal(err)
	}
	d.Advance()
	if !d.Data().EqualScalar(0) {
		t.Fatalf("Reset left %v", d.Data())
	}
}

func TestReinitAndResize(t *testing.T) {
	lim := alloc.NewLimited(nil, 1<<12)
	d, err := New[float64](4, 2, vector.WithAllocator(lim))
	if err != nil {
		t.Fatal(err)
	}
	if lim.InUse() != 3*4*8 {
		t.Fatalf("InUse = %d", lim.InUse())
	}

	if err := d.Reinit(8, 1); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	if d.Len() != 2 || d.VectorSize() != 8 {
		t.Fatalf("after Reinit Len=%d VectorSize=%d", d.Len(), d.VectorSize())
	}
	if lim.InUse() != 2*8*8 {
		t.Fatalf("old slots not released: InUse = %d", lim.InUse())
	}

	if err := d.Resize(5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if d.Depth() != 5 || d.VectorSize() != 8 {
		t.Fatalf("after Resize Depth=%d VectorSize=%d", d.Depth(), d.VectorSize())
	}

	if err := d.Resize(-1); !errors.Is(err, algovec.ErrInvalidArgument) {
		t.Fatalf("Resize(-1) err = %v", err)
	}

	d.Release()
	if lim.InUse() != 0 {
		t.Fatalf("Release left %d bytes", lim.InUse())
	}
}
