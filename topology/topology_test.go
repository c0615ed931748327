package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalCell(t *testing.T) {
	// Rotate left by the index of the minimum value
	assert.Equal(t, []int{1, 2, 3}, canonicalCell([]int{3, 1, 2}))
	assert.Equal(t, []int{0, 3, 1, 2}, canonicalCell([]int{1, 2, 0, 3}))
	// Idempotent
	c := canonicalCell([]int{3, 1, 2})
	assert.Equal(t, c, canonicalCell(c))
	// Rotation invariant
	cell := []int{7, 4, 9, 6}
	want := canonicalCell(cell)
	for r := 1; r < len(cell); r++ {
		rot := append(append([]int{}, cell[r:]...), cell[:r]...)
		assert.Equal(t, want, canonicalCell(rot))
	}
}

func TestFamilyChains(t *testing.T) {
	assert.Equal(t, Line2, HypercubeFamily.Next(Point))
	assert.Equal(t, Quad4, HypercubeFamily.Next(Line2))
	assert.Equal(t, Hex8, HypercubeFamily.Next(Quad4))
	assert.Equal(t, Quad4, HypercubeFamily.Prev(Hex8))
	assert.Equal(t, Tet4, SimplexFamily.Next(Tri3))
	assert.Panics(t, func() { HypercubeFamily.Next(Hex8) })
	assert.Panics(t, func() { HypercubeFamily.Prev(Point) })
	assert.Panics(t, func() { HypercubeFamily.Next(Tri3) })
	assert.Equal(t, Hex8, HypercubeFamily.TypeAt(3))
	assert.Panics(t, func() { HypercubeFamily.TypeAt(4) })
}

func TestTopologyConstruction(t *testing.T) {
	// Two quads sharing the edge 1-4
	tp := New(HypercubeFamily, [][]int{
		{0, 1, 4, 3},
		{1, 2, 5, 4},
	})
	assert.Equal(t, 2, tp.Dim())
	assert.Equal(t, 2, tp.CellCountAt(2))
	// 7 distinct edges: the shared one is stored once
	assert.Equal(t, 7, tp.CellCountAt(1))
	assert.Equal(t, 6, tp.CellCountAt(0))
	assert.Equal(t, 4, tp.CellSizeAt(2))
	assert.Equal(t, 2, tp.CellSizeAt(1))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, tp.PointIndices())

	// Arity mismatch is a contract violation
	assert.Panics(t, func() { New(HypercubeFamily, [][]int{{0, 1, 2}}) })
	assert.Panics(t, func() { New(HypercubeFamily, [][]int{{0, 1, 2, 3}, {4, 5}}) })
	assert.Panics(t, func() { New(HypercubeFamily, [][]int{}) })
	assert.Panics(t, func() { New(HypercubeFamily, [][]int{{0, -1, 2, 3}}) })
}

func TestBoundaryExtraction(t *testing.T) {
	// A single quad: all four edges have multiplicity one
	single := New(HypercubeFamily, [][]int{{0, 1, 2, 3}})
	b := single.BoundaryConn()
	require.Len(t, b, 4)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, b)

	// Two adjacent quads: the shared edge is interior and excluded
	two := New(HypercubeFamily, [][]int{
		{0, 1, 4, 3},
		{1, 2, 5, 4},
	})
	b = two.BoundaryConn()
	assert.Len(t, b, 6)
	for _, edge := range b {
		key := sharedKey(edge)
		assert.NotEqual(t, sharedKey([]int{1, 4}), key)
	}

	// Two hexes sharing a face: 12 - 2 = 10 exterior faces, and the shared
	// face appears with opposite orientation in its two parents
	hexes := New(HypercubeFamily, [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{4, 5, 6, 7, 8, 9, 10, 11},
	})
	assert.Equal(t, 11, hexes.CellCountAt(2))
	assert.Len(t, hexes.BoundaryConn(), 10)
}

func TestClosedManifoldBoundary(t *testing.T) {
	// A closed loop of line cells: every point has multiplicity two, so the
	// boundary is empty
	loop := New(HypercubeFamily, [][]int{{0, 1}, {1, 2}, {2, 0}})
	assert.Empty(t, loop.BoundaryConn())

	// An empty connectivity is legal when the cell type is stated
	empty := NewOfType(HypercubeFamily, Point, loop.BoundaryConn())
	assert.Equal(t, 0, empty.Dim())
	assert.Equal(t, 0, empty.CellCountAt(0))
	assert.Empty(t, empty.PointIndices())
	assert.True(t, empty.Equals(empty.Clone()))

	// ... but the type must sit on the stated family's chain, and the
	// inferring constructor still rejects emptiness
	assert.Panics(t, func() { NewOfType(SimplexFamily, Quad4, nil) })
	assert.Panics(t, func() { New(HypercubeFamily, nil) })
}

func TestCanonicalAndEquals(t *testing.T) {
	a := New(HypercubeFamily, [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}})
	// Same mesh with rotated cell tuples
	b := New(HypercubeFamily, [][]int{{4, 3, 0, 1}, {2, 5, 4, 1}})
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.True(t, a.Equals(a.Canonical()))

	c := New(HypercubeFamily, [][]int{{0, 1, 4, 3}, {1, 2, 6, 4}})
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	// Canonical is idempotent
	ac := a.Canonical()
	assert.True(t, ac.Equals(ac.Canonical()))
	for _, cell := range ac.MaximalCells() {
		assert.Equal(t, canonicalCell(cell), cell)
	}
}

func TestEqualsIgnoresCellOrder3D(t *testing.T) {
	// The shared face of two hexes is stored in the orientation of whichever
	// parent is visited first ({4,5,6,7} vs {4,7,6,5}), so derived dimensions
	// must compare orientation-insensitively
	conn := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{4, 5, 6, 7, 8, 9, 10, 11},
	}
	a := New(HypercubeFamily, conn)
	b := New(HypercubeFamily, [][]int{conn[1], conn[0]})
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))

	// Maximal cells keep their orientation in the comparison
	flipped := New(HypercubeFamily, [][]int{
		{3, 2, 1, 0, 7, 6, 5, 4},
		{4, 5, 6, 7, 8, 9, 10, 11},
	})
	assert.False(t, a.Equals(flipped))
}

func TestCloneIsDeep(t *testing.T) {
	tp := New(HypercubeFamily, [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}})
	cl := tp.Clone()
	assert.True(t, tp.Equals(cl))
	cl.MaximalCells()[0][0] = 99
	assert.Equal(t, 0, tp.MaximalCells()[0][0])
	assert.False(t, tp.Equals(cl))
}

func TestExtrude(t *testing.T) {
	// A line segment mesh extruded through two slabs of quads
	line := New(HypercubeFamily, [][]int{{0, 1}, {1, 2}})
	quads := line.Extrude([]bool{true, true})
	assert.Equal(t, 2, quads.Dim())
	assert.Equal(t, 4, quads.CellCountAt(2))
	assert.Equal(t, [][]int{
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{3, 4, 7, 6},
		{4, 5, 8, 7},
	}, quads.MaximalCells())

	// Dropping the first slab keeps only the second layer of cells
	upper := line.Extrude([]bool{false, true})
	assert.Equal(t, 2, upper.CellCountAt(2))
	assert.Equal(t, [][]int{
		{3, 4, 7, 6},
		{4, 5, 8, 7},
	}, upper.MaximalCells())

	// A quad extrudes into a hex
	quad := New(HypercubeFamily, [][]int{{0, 1, 2, 3}})
	hex := quad.Extrude([]bool{true})
	assert.Equal(t, 3, hex.Dim())
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}, hex.MaximalCells())

	// A point extrudes into a line
	pt := New(HypercubeFamily, [][]int{{0}})
	seg := pt.Extrude([]bool{true, true, true})
	assert.Equal(t, 1, seg.Dim())
	assert.Equal(t, 3, seg.CellCountAt(1))

	// Extruding past the end of the chain, an empty extrusion, and the
	// simplex family are all contract violations
	assert.Panics(t, func() { hex.Extrude([]bool{true}) })
	assert.Panics(t, func() { line.Extrude([]bool{false, false}) })
	tri := New(SimplexFamily, [][]int{{0, 1, 2}})
	assert.Panics(t, func() { tri.Extrude([]bool{true}) })
}
