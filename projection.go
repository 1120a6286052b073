package ndscene

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultFov is the field of view, in radians, every layer's projection
// starts with.
const DefaultFov = math.Pi / 4

// degenerateEps is the squared-length threshold below which a view
// direction is treated as degenerate.
const degenerateEps = 1e-12

// Projection holds the perspective-projection parameters of one layer.
// The matrix is derived from the layer's cartesian position and target;
// it is recomputed by Update and never read from documents.
type Projection struct {
	// Fov is the field of view in radians.
	Fov float64
	// Matrix is the (d+1)×(d+1) view-projection transform produced by the
	// last Update call, or nil before the first one.
	Matrix *mat.Dense

	// recomputes counts Update calls. State.UpdateMatrix guarantees it
	// advances exactly once per layer per pass.
	recomputes int
}

// newProjection returns a projection with the default field of view and
// no matrix computed yet.
func newProjection() *Projection {
	return &Projection{Fov: DefaultFov}
}

// Update recomputes the projection matrix for a camera at from looking at
// to. Both vectors must have the same length d; the resulting matrix is
// (d+1)×(d+1) in affine form.
//
// The view basis is built by normalizing the view direction and
// orthonormalizing the canonical axes against it (Gram-Schmidt), with the
// view direction as the last basis vector. All basis axes except the view
// direction are scaled by 1/tan(fov/2). A degenerate direction (from and
// to coincide) falls back to the canonical basis, keeping the result
// finite and deterministic.
func (p *Projection) Update(from, to *mat.VecDense) {
	d := from.Len()

	dir := mat.NewVecDense(d, nil)
	dir.SubVec(to, from)

	basis := make([]*mat.VecDense, 0, d)
	if mat.Dot(dir, dir) < degenerateEps {
		for i := 0; i < d; i++ {
			e := mat.NewVecDense(d, nil)
			e.SetVec(i, 1)
			basis = append(basis, e)
		}
	} else {
		dir.ScaleVec(1/mat.Norm(dir, 2), dir)
		basis = append(basis, dir)
		for i := 0; i < d && len(basis) < d; i++ {
			v := mat.NewVecDense(d, nil)
			v.SetVec(i, 1)
			for _, b := range basis {
				v.AddScaledVec(v, -mat.Dot(v, b), b)
			}
			if n := mat.Norm(v, 2); n > 1e-9 {
				v.ScaleVec(1/n, v)
				basis = append(basis, v)
			}
		}
		// View direction becomes the last basis vector.
		basis = append(basis[1:], basis[0])
	}

	scale := 1 / math.Tan(p.Fov/2)

	m := mat.NewDense(d+1, d+1, nil)
	for i := 0; i < d; i++ {
		s := scale
		if i == d-1 {
			s = 1
		}
		for j := 0; j < d; j++ {
			m.Set(i, j, s*basis[i].AtVec(j))
		}
		m.Set(i, d, -s*mat.Dot(basis[i], from))
	}
	m.Set(d, d, 1)

	p.Matrix = m
	p.recomputes++
}
