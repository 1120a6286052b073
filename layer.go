package ndscene

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Layer is the per-dimension slice of a State: the camera and affine
// transform for one specific dimension count. Layers exist for every
// dimension from 2 up to the State's maximum; layer k conceptually extends
// layer k-1 by one camera axis and one transform row and column.
type Layer struct {
	dim int

	// CartesianPosition is the camera "from" point.
	CartesianPosition *mat.VecDense
	// CartesianTarget is the camera "to" point (meaningful from 3D up).
	CartesianTarget *mat.VecDense
	// PolarPosition is the alternate representation of the camera
	// position: radius at index 0 followed by dim-1 angles. Which of the
	// two position vectors is authoritative is decided by the State's
	// coordinate mode when projections are recomputed.
	PolarPosition *mat.VecDense

	// Transform is the (dim+1)×(dim+1) affine transform applied to the
	// scene at this dimension. Identity by default.
	Transform *mat.Dense

	// Projection is derived from the cartesian position and target. It is
	// recomputed by State.UpdateMatrix, never parsed from documents.
	Projection *Projection
}

// newLayer builds the layer for one dimension with its constructor
// defaults: identity transform, zero cartesian vectors, and the legacy
// polar defaults (radius 3 and unit angles at dimension 3, radius 2 and
// right angles everywhere else).
func newLayer(dim int) *Layer {
	l := &Layer{
		dim:               dim,
		CartesianPosition: mat.NewVecDense(dim, nil),
		CartesianTarget:   mat.NewVecDense(dim, nil),
		PolarPosition:     mat.NewVecDense(dim, nil),
		Transform:         identityMatrix(dim + 1),
		Projection:        newProjection(),
	}
	if dim == 3 {
		l.PolarPosition.SetVec(0, 3)
		l.PolarPosition.SetVec(1, 1)
		l.PolarPosition.SetVec(2, 1)
	} else {
		l.PolarPosition.SetVec(0, 2)
		for i := 1; i < dim; i++ {
			l.PolarPosition.SetVec(i, 1.57)
		}
	}
	return l
}

// Dim returns the dimension this layer describes.
func (l *Layer) Dim() int {
	return l.dim
}

// ResetTransform sets the layer's transform back to the identity matrix.
func (l *Layer) ResetTransform() {
	l.Transform = identityMatrix(l.dim + 1)
}

// applyPolar writes the polar position into the cartesian position using
// the n-spherical convention: with p = (r, θ1, ..., θ(d-1)),
//
//	c[i]   = r · sin θ1 · ... · sin θi · cos θ(i+1)   for i < d-1
//	c[d-1] = r · sin θ1 · ... · sin θ(d-1)
func (l *Layer) applyPolar() {
	prod := l.PolarPosition.AtVec(0)
	for i := 0; i < l.dim-1; i++ {
		theta := l.PolarPosition.AtVec(i + 1)
		l.CartesianPosition.SetVec(i, prod*math.Cos(theta))
		prod *= math.Sin(theta)
	}
	l.CartesianPosition.SetVec(l.dim-1, prod)
}

// identityMatrix returns the n×n identity matrix.
func identityMatrix(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
