package gcellset

import (
	"fmt"
	"math"

	"github.com/mriveralee/gofea/utils"
)

/*
JacobianMatrix maps parametric to physical space: xT * nder, where x holds
the nodal spatial coordinates (CellSize x sdim) and nder the parametric
derivatives (CellSize x dim). The result's columns are the tangent vectors
of the manifold, one per parametric axis.
*/
func JacobianMatrix(nder, x utils.Matrix) utils.Matrix {
	return x.Transpose().Mul(nder)
}

/*
JacobianInDim evaluates the Jacobian of a cell with respect to a target
manifold dimension: 1 for curve, 2 for surface, 3 for volume. A target the
variant cannot produce is a programming error.
*/
func (gcs *GCellSet) JacobianInDim(conn []int, N utils.Vector, J, x utils.Matrix, targetDim int) float64 {
	switch targetDim {
	case 1:
		return gcs.JacobianCurve(conn, N, J, x)
	case 2:
		return gcs.JacobianSurface(conn, N, J, x)
	case 3:
		return gcs.JacobianVolume(conn, N, J, x)
	}
	panic(fmt.Errorf("%v cannot produce a Jacobian in dimension %d, valid targets are 1..3",
		gcs.Type(), targetDim))
}

// JacobianCurve is the arc-length Jacobian: 1 for a point, the norm of the
// single tangent column for a curve
func (gcs *GCellSet) JacobianCurve(conn []int, N utils.Vector, J, x utils.Matrix) float64 {
	switch gcs.Dim() {
	case 0:
		return 1
	case 1:
		gcs.checkTangents(J, 1)
		return J.Col(0).Norm()
	}
	panic(fmt.Errorf("%v (manifold dimension %d) has no curve Jacobian", gcs.Type(), gcs.Dim()))
}

/*
JacobianSurface is the area Jacobian. Reduced-dimension cells scale their
curve Jacobian by the other dimension (thickness), or by 2 pi r for bodies
of revolution. Surface cells use the 2x2 determinant when the tangent space
fills the physical space, otherwise the cross-product norm of the two
tangent columns.
*/
func (gcs *GCellSet) JacobianSurface(conn []int, N utils.Vector, J, x utils.Matrix) float64 {
	switch gcs.Dim() {
	case 0, 1:
		c := gcs.JacobianCurve(conn, N, J, x)
		if gcs.axisym {
			return c * 2 * math.Pi * radius(N, x)
		}
		return c * gcs.OtherDimension(conn, N, x)
	case 2:
		gcs.checkTangents(J, 2)
		sdim, _ := J.Dims()
		if sdim == 2 {
			return J.At(0, 0)*J.At(1, 1) - J.At(1, 0)*J.At(0, 1)
		}
		return utils.SkewSym(J.Col(0)).MulVec(J.Col(1)).Norm()
	}
	panic(fmt.Errorf("%v (manifold dimension %d) has no surface Jacobian", gcs.Type(), gcs.Dim()))
}

/*
JacobianVolume is the volume Jacobian. Cells below manifold dimension 3
scale their intrinsic Jacobian by the other dimension (area for curves,
thickness for surfaces), or by 2 pi r when axisymmetric. Volume cells take
the determinant of the full 3x3 Jacobian matrix.
*/
func (gcs *GCellSet) JacobianVolume(conn []int, N utils.Vector, J, x utils.Matrix) float64 {
	switch gcs.Dim() {
	case 0, 1:
		c := gcs.JacobianCurve(conn, N, J, x)
		if gcs.axisym {
			return c * 2 * math.Pi * radius(N, x)
		}
		return c * gcs.OtherDimension(conn, N, x)
	case 2:
		s := gcs.JacobianSurface(conn, N, J, x)
		if gcs.axisym {
			return s * 2 * math.Pi * radius(N, x)
		}
		return s * gcs.OtherDimension(conn, N, x)
	case 3:
		gcs.checkTangents(J, 3)
		return J.Det()
	}
	panic(fmt.Errorf("%v (manifold dimension %d) has no volume Jacobian", gcs.Type(), gcs.Dim()))
}

func (gcs *GCellSet) checkTangents(J utils.Matrix, want int) {
	if _, nc := J.Dims(); nc != want {
		err := fmt.Errorf("%v Jacobian requires exactly %d tangent columns, have %d",
			gcs.Type(), want, nc)
		panic(err)
	}
}

// radius interpolates the first physical coordinate at the evaluation
// point: the first row of xT * N
func radius(N utils.Vector, x utils.Matrix) float64 {
	return x.Transpose().MulVec(N).AtVec(0)
}
