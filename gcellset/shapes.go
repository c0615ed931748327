package gcellset

import (
	"fmt"

	"github.com/mriveralee/gofea/topology"
	"github.com/mriveralee/gofea/utils"
)

// shapeFor resolves the concrete shape for a cell type, used when walking a
// family chain for boundary and extrusion construction
func shapeFor(ct topology.CellType) Shape {
	switch ct {
	case topology.Point:
		return PointShape{}
	case topology.Line2:
		return LineShape{}
	case topology.Quad4:
		return QuadShape{}
	case topology.Hex8:
		return HexShape{}
	case topology.Tri3:
		return TriShape{}
	case topology.Tet4:
		return TetShape{}
	}
	panic(fmt.Errorf("no shape registered for cell type %v", ct))
}

// PointShape is the manifold-0 vertex element
type PointShape struct{}

func (PointShape) Type() topology.CellType { return topology.Point }
func (PointShape) Family() topology.Family { return topology.HypercubeFamily }
func (PointShape) Bfun(pc []float64) utils.Vector {
	return utils.NewVector(1, []float64{1})
}
func (PointShape) BfunDPar(pc []float64) utils.Matrix {
	panic(fmt.Errorf("%v has no parametric derivatives: manifold dimension is 0", topology.Point))
}

// LineShape is the 2-node linear curve element on [-1,1]
type LineShape struct{}

func (LineShape) Type() topology.CellType { return topology.Line2 }
func (LineShape) Family() topology.Family { return topology.HypercubeFamily }
func (LineShape) Bfun(pc []float64) utils.Vector {
	xi := pc[0]
	return utils.NewVector(2, []float64{
		(1 - xi) / 2,
		(1 + xi) / 2,
	})
}
func (LineShape) BfunDPar(pc []float64) utils.Matrix {
	return utils.NewMatrix(2, 1, []float64{
		-0.5,
		0.5,
	})
}

// QuadShape is the 4-node bilinear quadrilateral on [-1,1]^2, corners
// counterclockwise from (-1,-1)
type QuadShape struct{}

func (QuadShape) Type() topology.CellType { return topology.Quad4 }
func (QuadShape) Family() topology.Family { return topology.HypercubeFamily }
func (QuadShape) Bfun(pc []float64) utils.Vector {
	xi, eta := pc[0], pc[1]
	return utils.NewVector(4, []float64{
		(1 - xi) * (1 - eta) / 4,
		(1 + xi) * (1 - eta) / 4,
		(1 + xi) * (1 + eta) / 4,
		(1 - xi) * (1 + eta) / 4,
	})
}
func (QuadShape) BfunDPar(pc []float64) utils.Matrix {
	xi, eta := pc[0], pc[1]
	return utils.NewMatrix(4, 2, []float64{
		-(1 - eta) / 4, -(1 - xi) / 4,
		(1 - eta) / 4, -(1 + xi) / 4,
		(1 + eta) / 4, (1 + xi) / 4,
		-(1 + eta) / 4, (1 - xi) / 4,
	})
}

// HexShape is the 8-node trilinear hexahedron on [-1,1]^3, bottom quad then
// top quad in matching corner order
type HexShape struct{}

// hexCorners holds the reference coordinates of the 8 corners
var hexCorners = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

func (HexShape) Type() topology.CellType { return topology.Hex8 }
func (HexShape) Family() topology.Family { return topology.HypercubeFamily }
func (HexShape) Bfun(pc []float64) utils.Vector {
	var (
		xi, eta, zeta = pc[0], pc[1], pc[2]
		data          = make([]float64, 8)
	)
	for i, c := range hexCorners {
		data[i] = (1 + c[0]*xi) * (1 + c[1]*eta) * (1 + c[2]*zeta) / 8
	}
	return utils.NewVector(8, data)
}
func (HexShape) BfunDPar(pc []float64) utils.Matrix {
	var (
		xi, eta, zeta = pc[0], pc[1], pc[2]
		data          = make([]float64, 8*3)
	)
	for i, c := range hexCorners {
		data[3*i+0] = c[0] * (1 + c[1]*eta) * (1 + c[2]*zeta) / 8
		data[3*i+1] = (1 + c[0]*xi) * c[1] * (1 + c[2]*zeta) / 8
		data[3*i+2] = (1 + c[0]*xi) * (1 + c[1]*eta) * c[2] / 8
	}
	return utils.NewMatrix(8, 3, data)
}

// TriShape is the 3-node linear triangle on the unit reference triangle
type TriShape struct{}

func (TriShape) Type() topology.CellType { return topology.Tri3 }
func (TriShape) Family() topology.Family { return topology.SimplexFamily }
func (TriShape) Bfun(pc []float64) utils.Vector {
	xi, eta := pc[0], pc[1]
	return utils.NewVector(3, []float64{
		1 - xi - eta,
		xi,
		eta,
	})
}
func (TriShape) BfunDPar(pc []float64) utils.Matrix {
	return utils.NewMatrix(3, 2, []float64{
		-1, -1,
		1, 0,
		0, 1,
	})
}

// TetShape is the 4-node linear tetrahedron on the unit reference tet
type TetShape struct{}

func (TetShape) Type() topology.CellType { return topology.Tet4 }
func (TetShape) Family() topology.Family { return topology.SimplexFamily }
func (TetShape) Bfun(pc []float64) utils.Vector {
	xi, eta, zeta := pc[0], pc[1], pc[2]
	return utils.NewVector(4, []float64{
		1 - xi - eta - zeta,
		xi,
		eta,
		zeta,
	})
}
func (TetShape) BfunDPar(pc []float64) utils.Matrix {
	return utils.NewMatrix(4, 3, []float64{
		-1, -1, -1,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}
