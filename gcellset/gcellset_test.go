package gcellset

import (
	"testing"

	"github.com/mriveralee/gofea/topology"
	"github.com/mriveralee/gofea/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionOfUnity(t *testing.T) {
	// Representative midpoints
	line := LineShape{}.Bfun([]float64{0})
	assert.Equal(t, []float64{0.5, 0.5}, line.Data())

	quad := QuadShape{}.Bfun([]float64{0, 0})
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, quad.Data())

	hex := HexShape{}.Bfun([]float64{0, 0, 0})
	for i := 0; i < 8; i++ {
		assert.InDelta(t, 0.125, hex.AtVec(i), 1.e-14)
	}

	// Sum is one at arbitrary points, columns of the derivatives sum to zero
	points := map[Shape][][]float64{
		LineShape{}: {{-1}, {0.3}, {1}},
		QuadShape{}: {{-1, -1}, {0.2, -0.7}, {1, 1}},
		HexShape{}:  {{-1, -1, -1}, {0.1, 0.5, -0.9}},
		TriShape{}:  {{0, 0}, {0.25, 0.25}, {1, 0}},
		TetShape{}:  {{0, 0, 0}, {0.1, 0.2, 0.3}},
	}
	for shape, pcs := range points {
		for _, pc := range pcs {
			N := shape.Bfun(pc)
			assert.InDelta(t, 1, N.Sum(), 1.e-14, "%v at %v", shape.Type(), pc)
			D := shape.BfunDPar(pc)
			nr, nc := D.Dims()
			require.Equal(t, shape.Type().Size(), nr)
			require.Equal(t, shape.Type().Dim(), nc)
			for j := 0; j < nc; j++ {
				assert.InDelta(t, 0, D.Col(j).Sum(), 1.e-14, "%v ddim %d at %v", shape.Type(), j, pc)
			}
		}
	}
}

func TestConstructionContract(t *testing.T) {
	conn := [][]int{{0, 1, 2, 3}}
	gcs := New(QuadShape{}, conn)
	assert.Equal(t, 2, gcs.Dim())
	assert.Equal(t, 4, gcs.CellSize())
	assert.Equal(t, topology.Quad4, gcs.Type())
	assert.Equal(t, 1, gcs.Count())

	// A quad shape over a hex topology violates the dim/cellSize contract
	hexTopo := topology.New(topology.HypercubeFamily, [][]int{{0, 1, 2, 3, 4, 5, 6, 7}})
	assert.Panics(t, func() { NewFromTopology(QuadShape{}, hexTopo) })
	// Family mismatch
	triTopo := topology.New(topology.SimplexFamily, [][]int{{0, 1, 2}})
	assert.Panics(t, func() { NewFromTopology(QuadShape{}, triTopo) })
	// Malformed parametric input
	assert.Panics(t, func() { gcs.Bfun([]float64{0}) })
	assert.Panics(t, func() { gcs.BfunDPar([]float64{0, 0, 0}) })
	// Point sets have no parametric derivatives
	pt := New(PointShape{}, [][]int{{0}})
	assert.Panics(t, func() { pt.BfunDPar([]float64{}) })
}

func TestStructuralOps(t *testing.T) {
	gcs := New(QuadShape{}, [][]int{
		{0, 1, 4, 3},
		{1, 2, 5, 4},
	})

	// Boundary steps down the chain to a line set with the 6 exterior edges
	b := gcs.Boundary()
	assert.Equal(t, topology.Line2, b.Type())
	assert.Equal(t, 6, b.Count())
	// ... and the edge loop is closed, so its own boundary is an empty
	// point set rather than a failure
	pts := b.Boundary()
	assert.Equal(t, topology.Point, pts.Type())
	assert.Equal(t, 0, pts.Count())
	assert.Empty(t, pts.Conn())
	assert.True(t, pts.Equals(pts.Clone()))

	// Extrusion steps up the chain
	line := New(LineShape{}, [][]int{{0, 1}, {1, 2}})
	ext := line.Extrude([]bool{true, true})
	assert.Equal(t, topology.Quad4, ext.Type())
	assert.Equal(t, 4, ext.Count())
	hex := ext.Extrude([]bool{true})
	assert.Equal(t, topology.Hex8, hex.Type())
	assert.Panics(t, func() { hex.Extrude([]bool{true}) })

	// Subset filters and reorders
	sub := gcs.Subset(utils.Index{1})
	assert.Equal(t, 1, sub.Count())
	assert.Equal(t, []int{1, 2, 5, 4}, sub.Conn()[0])
	assert.Equal(t, 0, gcs.Subset(utils.Index{}).Count())
	assert.Panics(t, func() { gcs.Subset(utils.Index{2}) })

	// Clone/equality round trip without aliasing
	cl := gcs.Clone()
	assert.True(t, cl.Equals(gcs))
	cl.Conn()[0][0] = 99
	assert.False(t, cl.Equals(gcs))
	assert.Equal(t, 0, gcs.Conn()[0][0])

	// Options participate in equality
	axi := New(QuadShape{}, gcs.Conn(), Options{Axisymmetric: true})
	assert.False(t, axi.Equals(gcs))
	thick := New(QuadShape{}, gcs.Conn(), Options{OtherDimension: 0.5})
	assert.False(t, thick.Equals(gcs))
	assert.True(t, thick.Equals(thick.Clone()))
}

type coordTable [][]float64

func (c coordTable) CoordinatesAt(node int) []float64 { return c[node] }

func TestBoxSelect(t *testing.T) {
	// Two unit quads side by side on the x axis
	coords := coordTable{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	}
	gcs := New(QuadShape{}, [][]int{
		{0, 1, 4, 3},
		{1, 2, 5, 4},
	})

	// All nodes inside
	I := gcs.BoxSelect(coords, BoxOpts{Lo: []float64{-0.1, -0.1}, Hi: []float64{1.1, 1.1}})
	assert.Equal(t, utils.Index{0}, I)

	// Any node inside: the shared edge pulls in both cells
	I = gcs.BoxSelect(coords, BoxOpts{Lo: []float64{0.9, -0.1}, Hi: []float64{1.1, 1.1}, Any: true})
	assert.Equal(t, utils.Index{0, 1}, I)

	// Nothing inside a distant box
	I = gcs.BoxSelect(coords, BoxOpts{Lo: []float64{5, 5}, Hi: []float64{6, 6}})
	assert.Empty(t, I)

	// Inflation grows the box to cover everything
	I = gcs.BoxSelect(coords, BoxOpts{Lo: []float64{0.5, 0.5}, Hi: []float64{0.6, 0.6}, Inflate: []float64{2, 2}})
	assert.Equal(t, utils.Index{0, 1}, I)

	// Malformed boxes
	assert.Panics(t, func() { gcs.BoxSelect(coords, BoxOpts{Lo: []float64{0}, Hi: []float64{1, 1}}) })
	assert.Panics(t, func() {
		gcs.BoxSelect(coords, BoxOpts{Lo: []float64{0, 0}, Hi: []float64{1, 1}, Inflate: []float64{1}})
	})
}
