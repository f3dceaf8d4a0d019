package generic

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

func TestArith(t *testing.T) {
	dst := []float64{1, 2, 3, 4}
	if s := Add([]float64{1, 1, 1, 1}, dst); s != kernel.StatusOK {
		t.Fatalf("Add status = %v", s)
	}
	if s := Mul([]float64{2, 2, 2, 2}, dst); s != kernel.StatusOK {
		t.Fatalf("Mul status = %v", s)
	}
	if s := Sub([]float64{1, 1, 1, 1}, dst); s != kernel.StatusOK {
		t.Fatalf("Sub status = %v", s)
	}
	if s := DivC(2, dst); s != kernel.StatusOK {
		t.Fatalf("DivC status = %v", s)
	}
	want := []float64{1.5, 2.5, 3.5, 4.5}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestArith_SizeMismatch(t *testing.T) {
	dst := []int32{1, 2, 3}
	if s := Add([]int32{1, 2}, dst); s != kernel.StatusSizeErr {
		t.Fatalf("Add status = %v, want %v", s, kernel.StatusSizeErr)
	}
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("dst modified on error: %v", dst)
	}
	if s := Set[int32](5, nil); s != kernel.StatusSizeErr {
		t.Fatalf("Set on empty status = %v", s)
	}
}

func TestDiv_IntegerByZero(t *testing.T) {
	dst := []int16{10, 20, 30}
	if s := Div([]int16{2, 0, 3}, dst); s != kernel.StatusDivByZero {
		t.Fatalf("Div status = %v, want %v", s, kernel.StatusDivByZero)
	}
	if dst[0] != 10 {
		t.Fatalf("dst modified before divisor check: %v", dst)
	}
	if s := DivC[int32](0, []int32{1}); s != kernel.StatusDivByZero {
		t.Fatalf("DivC status = %v, want %v", s, kernel.StatusDivByZero)
	}
}

func TestDiv_FloatByZero(t *testing.T) {
	dst := []float32{1, -1}
	if s := Div([]float32{0, 0}, dst); s != kernel.StatusOK {
		t.Fatalf("Div status = %v", s)
	}
	if !math.IsInf(float64(dst[0]), 1) || !math.IsInf(float64(dst[1]), -1) {
		t.Fatalf("expected ±Inf, got %v", dst)
	}
}

func TestComplexArith(t *testing.T) {
	dst := []complex128{1 + 1i, 2}
	if s := MulC(1i, dst); s != kernel.StatusOK {
		t.Fatalf("MulC status = %v", s)
	}
	if dst[0] != -1+1i || dst[1] != 2i {
		t.Fatalf("unexpected result %v", dst)
	}
	sum, s := Sum(dst)
	if s != kernel.StatusOK || sum != -1+3i {
		t.Fatalf("Sum = %v (%v)", sum, s)
	}
}

func TestReductions(t *testing.T) {
	src := []float64{3, -1, 7, -1, 7, 0}

	minValue, minIndex, maxValue, maxIndex, s := MinMaxIndex(src)
	if s != kernel.StatusOK {
		t.Fatalf("status = %v", s)
	}
	if minValue != -1 || minIndex != 1 {
		t.Errorf("min = (%v, %d), want (-1, 1)", minValue, minIndex)
	}
	if maxValue != 7 || maxIndex != 2 {
		t.Errorf("max = (%v, %d), want (7, 2)", maxValue, maxIndex)
	}

	if v, s := Min(src); s != kernel.StatusOK || v != -1 {
		t.Errorf("Min = %v (%v)", v, s)
	}
	if v, s := Max(src); s != kernel.StatusOK || v != 7 {
		t.Errorf("Max = %v (%v)", v, s)
	}
	if _, _, s := MaxIndex([]int16{}); s != kernel.StatusSizeErr {
		t.Errorf("MaxIndex on empty status = %v", s)
	}
	if _, s := Sum([]int32{}); s != kernel.StatusSizeErr {
		t.Errorf("Sum on empty status = %v", s)
	}
}

func TestSumFloat32(t *testing.T) {
	src := make([]float32, 10000)
	for i := range src {
		src[i] = 0.1
	}
	sum, s := SumFloat32(src)
	if s != kernel.StatusOK {
		t.Fatalf("status = %v", s)
	}
	if math.Abs(float64(sum)-1000) > 1e-3 {
		t.Fatalf("SumFloat32 = %v, want ~1000", sum)
	}
}

func TestEqual(t *testing.T) {
	a := []float32{1, 2, 3}
	if eq, _ := Equal(a, []float32{1, 2, 3}); !eq {
		t.Error("expected equal slices")
	}
	if eq, _ := Equal(a, []float32{1, 2, 4}); eq {
		t.Error("expected unequal slices")
	}
	if eq, _ := Equal(a, a[:2]); eq {
		t.Error("expected length mismatch to be unequal")
	}
	if eq, _ := Equal[float32](nil, nil); !eq {
		t.Error("expected empty slices to be equal")
	}
	nan := float32(math.NaN())
	if eq, _ := Equal([]float32{nan}, []float32{nan}); !eq {
		t.Error("expected identical NaN bit patterns to compare equal")
	}
}

func TestConversions(t *testing.T) {
	re := []float32{1, 3}
	im := []float32{2, 4}
	c := make([]complex64, 2)
	if s := RealToCplx(re, im, c); s != kernel.StatusOK {
		t.Fatalf("RealToCplx status = %v", s)
	}
	if c[0] != 1+2i || c[1] != 3+4i {
		t.Fatalf("RealToCplx = %v", c)
	}

	gotRe := make([]float32, 2)
	gotIm := make([]float32, 2)
	if s := CplxToReal(c, gotRe, gotIm); s != kernel.StatusOK {
		t.Fatalf("CplxToReal status = %v", s)
	}
	for i := range re {
		if gotRe[i] != re[i] || gotIm[i] != im[i] {
			t.Fatalf("CplxToReal[%d] = (%v, %v)", i, gotRe[i], gotIm[i])
		}
	}

	mag := make([]float32, 2)
	if s := Magnitude(c, mag); s != kernel.StatusOK {
		t.Fatalf("Magnitude status = %v", s)
	}
	if math.Abs(float64(mag[1])-5) > 1e-6 {
		t.Errorf("Magnitude[1] = %v, want 5", mag[1])
	}

	pow := make([]float64, 1)
	if s := PowerSplit([]float64{3}, []float64{4}, pow); s != kernel.StatusOK || pow[0] != 25 {
		t.Errorf("PowerSplit = %v (%v)", pow, s)
	}

	f := make([]float32, 3)
	if s := Cast([]int16{-32768, 0, 32767}, f); s != kernel.StatusOK {
		t.Fatalf("Cast status = %v", s)
	}
	if f[0] != -32768 || f[2] != 32767 {
		t.Errorf("Cast = %v", f)
	}

	if s := Real(c, make([]float32, 3)); s != kernel.StatusSizeErr {
		t.Errorf("Real length mismatch status = %v", s)
	}
}
