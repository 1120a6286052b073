package ndscene

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestProjectionUpdateDims(t *testing.T) {
	p := newProjection()
	from := mat.NewVecDense(4, []float64{0, 0, 0, 3})
	to := mat.NewVecDense(4, nil)

	p.Update(from, to)

	if p.Matrix == nil {
		t.Fatal("Matrix is nil after Update")
	}
	r, c := p.Matrix.Dims()
	if r != 5 || c != 5 {
		t.Fatalf("Matrix dims = %dx%d, want 5x5", r, c)
	}
	if got := p.Matrix.At(4, 4); got != 1 {
		t.Errorf("Matrix[4][4] = %v, want 1", got)
	}
}

func TestProjectionDeterministic(t *testing.T) {
	from := mat.NewVecDense(3, []float64{1, 2, 3})
	to := mat.NewVecDense(3, []float64{0, 0.5, -1})

	a := newProjection()
	a.Update(from, to)
	b := newProjection()
	b.Update(from, to)

	if !mat.Equal(a.Matrix, b.Matrix) {
		t.Error("two updates from the same camera should produce equal matrices")
	}
}

func TestProjectionDegenerateDirection(t *testing.T) {
	// from == to must not produce NaNs or infinities.
	p := newProjection()
	v := mat.NewVecDense(3, []float64{1, 1, 1})
	p.Update(v, v)

	r, c := p.Matrix.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got := p.Matrix.At(i, j)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Matrix[%d][%d] = %v, want finite", i, j, got)
			}
		}
	}
}

func TestProjectionCountsRecomputes(t *testing.T) {
	p := newProjection()
	from := mat.NewVecDense(2, []float64{1, 0})
	to := mat.NewVecDense(2, nil)

	p.Update(from, to)
	p.Update(from, to)

	if p.recomputes != 2 {
		t.Errorf("recomputes = %d, want 2", p.recomputes)
	}
}
