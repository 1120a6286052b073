package ndscene

import (
	"math"
	"testing"
)

func TestNewLayerDefaults(t *testing.T) {
	l := newLayer(4)
	if l.Dim() != 4 {
		t.Fatalf("Dim() = %d, want 4", l.Dim())
	}
	if l.CartesianPosition.Len() != 4 || l.CartesianTarget.Len() != 4 || l.PolarPosition.Len() != 4 {
		t.Error("camera vectors should have length 4")
	}
	for i := 0; i < 4; i++ {
		if l.CartesianPosition.AtVec(i) != 0 {
			t.Errorf("CartesianPosition[%d] = %v, want 0", i, l.CartesianPosition.AtVec(i))
		}
		if l.CartesianTarget.AtVec(i) != 0 {
			t.Errorf("CartesianTarget[%d] = %v, want 0", i, l.CartesianTarget.AtVec(i))
		}
	}
	if got := l.PolarPosition.AtVec(0); got != 2 {
		t.Errorf("PolarPosition[0] = %v, want 2", got)
	}
	for i := 1; i < 4; i++ {
		if got := l.PolarPosition.AtVec(i); got != 1.57 {
			t.Errorf("PolarPosition[%d] = %v, want 1.57", i, got)
		}
	}

	r, c := l.Transform.Dims()
	if r != 5 || c != 5 {
		t.Fatalf("Transform dims = %dx%d, want 5x5", r, c)
	}
	assertIdentity(t, l)
}

func TestNewLayerLegacy3DDefaults(t *testing.T) {
	l := newLayer(3)
	want := []float64{3, 1, 1}
	for i, w := range want {
		if got := l.PolarPosition.AtVec(i); got != w {
			t.Errorf("PolarPosition[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestResetTransform(t *testing.T) {
	l := newLayer(3)
	l.Transform.Set(0, 1, 42)
	l.Transform.Set(3, 3, -1)

	l.ResetTransform()
	assertIdentity(t, l)
}

func TestApplyPolar2D(t *testing.T) {
	l := newLayer(2)
	l.PolarPosition.SetVec(0, 2)
	l.PolarPosition.SetVec(1, math.Pi/2)

	l.applyPolar()

	if got := l.CartesianPosition.AtVec(0); math.Abs(got) > 1e-15 {
		t.Errorf("CartesianPosition[0] = %v, want 0", got)
	}
	if got := l.CartesianPosition.AtVec(1); math.Abs(got-2) > 1e-15 {
		t.Errorf("CartesianPosition[1] = %v, want 2", got)
	}
}

func TestApplyPolarRadiusPreserved(t *testing.T) {
	// The cartesian image of a polar point keeps the polar radius.
	l := newLayer(4)
	l.PolarPosition.SetVec(0, 3)
	l.PolarPosition.SetVec(1, 0.3)
	l.PolarPosition.SetVec(2, 1.1)
	l.PolarPosition.SetVec(3, 2.4)

	l.applyPolar()

	var sum float64
	for i := 0; i < 4; i++ {
		v := l.CartesianPosition.AtVec(i)
		sum += v * v
	}
	if got := math.Sqrt(sum); math.Abs(got-3) > 1e-12 {
		t.Errorf("norm of cartesian image = %v, want 3", got)
	}
}

func assertIdentity(t *testing.T, l *Layer) {
	t.Helper()
	n := l.Dim() + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if got := l.Transform.At(i, j); got != want {
				t.Errorf("Transform[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}
