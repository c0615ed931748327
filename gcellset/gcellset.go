package gcellset

import (
	"fmt"

	"github.com/mriveralee/gofea/topology"
	"github.com/mriveralee/gofea/utils"
)

/*
Shape is the capability set every concrete element type supplies: identity
within a family chain plus reference shape functions and their parametric
derivatives. Shapes are stateless; the GCellSet carries the mesh.
*/
type Shape interface {
	Type() topology.CellType
	Family() topology.Family
	// Bfun evaluates the shape functions at a parametric point as a column
	// vector of length CellSize. The values sum to one at every valid point.
	Bfun(pc []float64) utils.Vector
	// BfunDPar evaluates the parametric derivatives as a CellSize x Dim
	// matrix. Each column sums to zero at every valid point.
	BfunDPar(pc []float64) utils.Matrix
}

// OtherDimFunc computes a cell's reduced-dimension measure (thickness, area)
// from its connectivity, shape values and nodal coordinates
type OtherDimFunc func(conn []int, N utils.Vector, x utils.Matrix) float64

type Options struct {
	Axisymmetric   bool
	OtherDimension float64 // scalar thickness/area, 0 means the default of 1
	OtherDimFunc   OtherDimFunc
}

/*
GCellSet binds a Shape to an owned Topology. All numerical operations are
pure functions of the inputs and the immutable topology; the structural
operations produce new instances.
*/
type GCellSet struct {
	shape    Shape
	topo     *topology.Topology
	axisym   bool
	otherDim float64
	odFunc   OtherDimFunc
}

// New builds the GCellSet's own Topology from raw connectivity
func New(shape Shape, conn [][]int, opts ...Options) *GCellSet {
	return NewFromTopology(shape, topology.New(shape.Family(), conn), opts...)
}

/*
NewFromTopology wraps a pre-built Topology. The topology's manifold
dimension and maximal cell arity must match the shape; a mismatch is a
programming error reported at construction.
*/
func NewFromTopology(shape Shape, tp *topology.Topology, opts ...Options) *GCellSet {
	ct := shape.Type()
	if tp.Dim() != ct.Dim() {
		err := fmt.Errorf("%v cell set requires a %d-manifold topology, have dimension %d",
			ct, ct.Dim(), tp.Dim())
		panic(err)
	}
	if tp.CellCountAt(tp.Dim()) != 0 && tp.CellSizeAt(tp.Dim()) != ct.Size() {
		err := fmt.Errorf("%v cell set requires cells of arity %d, topology has %d",
			ct, ct.Size(), tp.CellSizeAt(tp.Dim()))
		panic(err)
	}
	if tp.Family() != shape.Family() {
		err := fmt.Errorf("%v cell set requires the %v family, topology is %v",
			ct, shape.Family(), tp.Family())
		panic(err)
	}
	gcs := &GCellSet{
		shape:    shape,
		topo:     tp,
		otherDim: 1,
	}
	if len(opts) != 0 {
		o := opts[0]
		gcs.axisym = o.Axisymmetric
		if o.OtherDimension != 0 {
			gcs.otherDim = o.OtherDimension
		}
		gcs.odFunc = o.OtherDimFunc
	}
	return gcs
}

func (gcs *GCellSet) Dim() int                { return gcs.shape.Type().Dim() }
func (gcs *GCellSet) CellSize() int           { return gcs.shape.Type().Size() }
func (gcs *GCellSet) Type() topology.CellType { return gcs.shape.Type() }
func (gcs *GCellSet) Shape() Shape            { return gcs.shape }
func (gcs *GCellSet) Topo() *topology.Topology {
	return gcs.topo
}
func (gcs *GCellSet) Conn() [][]int      { return gcs.topo.MaximalCells() }
func (gcs *GCellSet) Count() int         { return gcs.topo.CellCountAt(gcs.topo.Dim()) }
func (gcs *GCellSet) Axisymmetric() bool { return gcs.axisym }

func (gcs *GCellSet) Bfun(pc []float64) utils.Vector {
	gcs.checkParam(pc)
	return gcs.shape.Bfun(pc)
}

func (gcs *GCellSet) BfunDPar(pc []float64) utils.Matrix {
	gcs.checkParam(pc)
	return gcs.shape.BfunDPar(pc)
}

func (gcs *GCellSet) checkParam(pc []float64) {
	if len(pc) != gcs.Dim() {
		err := fmt.Errorf("%v expects %d parametric coordinates, got %d",
			gcs.Type(), gcs.Dim(), len(pc))
		panic(err)
	}
}

// OtherDimension resolves the reduced-dimension measure for one cell
func (gcs *GCellSet) OtherDimension(conn []int, N utils.Vector, x utils.Matrix) float64 {
	if gcs.odFunc != nil {
		return gcs.odFunc(conn, N, x)
	}
	return gcs.otherDim
}

func (gcs *GCellSet) options() Options {
	return Options{
		Axisymmetric:   gcs.axisym,
		OtherDimension: gcs.otherDim,
		OtherDimFunc:   gcs.odFunc,
	}
}

// Boundary derives the cell set of the exterior boundary, one step down the
// family chain. A closed manifold yields an empty set of the stepped-down type
func (gcs *GCellSet) Boundary() *GCellSet {
	prev := shapeFor(gcs.shape.Family().Prev(gcs.Type()))
	tp := topology.NewOfType(prev.Family(), prev.Type(), gcs.topo.BoundaryConn())
	return NewFromTopology(prev, tp, gcs.options())
}

// Extrude produces the cell set one step up the family chain, one flag per slab
func (gcs *GCellSet) Extrude(flags []bool) *GCellSet {
	next := shapeFor(gcs.shape.Family().Next(gcs.Type()))
	return NewFromTopology(next, gcs.topo.Extrude(flags), gcs.options())
}

// Subset keeps the cells selected by I, in I's order
func (gcs *GCellSet) Subset(I utils.Index) *GCellSet {
	var (
		cells = gcs.Conn()
		conn  = make([][]int, len(I))
	)
	for i, ind := range I {
		if ind < 0 || ind > len(cells)-1 {
			err := fmt.Errorf("subset index %d out of range, %v set has %d cells",
				ind, gcs.Type(), len(cells))
			panic(err)
		}
		conn[i] = cells[ind]
	}
	tp := topology.NewOfType(gcs.shape.Family(), gcs.Type(), conn)
	return NewFromTopology(gcs.shape, tp, gcs.options())
}

func (gcs *GCellSet) Clone() *GCellSet {
	return NewFromTopology(gcs.shape, gcs.topo.Clone(), gcs.options())
}

/*
Equals compares concrete type, axisymmetry, the scalar other-dimension when
neither side carries a function, and the canonicalized topologies.
*/
func (gcs *GCellSet) Equals(other *GCellSet) bool {
	if other == nil || gcs.Type() != other.Type() || gcs.axisym != other.axisym {
		return false
	}
	if gcs.odFunc == nil && other.odFunc == nil && gcs.otherDim != other.otherDim {
		return false
	}
	return gcs.topo.Equals(other.topo)
}
