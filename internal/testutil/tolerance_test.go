package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestMaxAbsDiffComplex(t *testing.T) {
	a := []complex128{1 + 1i, 0}
	b := []complex128{1 + 1i, 3 + 4i}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-5) > 1e-12 {
		t.Fatalf("MaxAbsDiff = %v, want 5", d)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance[int16](-3, 4); d != 7 {
		t.Fatalf("Distance(int16) = %v, want 7", d)
	}
	if d := Distance[float32](0.5, 0.25); d != 0.25 {
		t.Fatalf("Distance(float32) = %v, want 0.25", d)
	}
	if d := Distance[complex64](1i, 0); d != 1 {
		t.Fatalf("Distance(complex64) = %v, want 1", d)
	}
}
