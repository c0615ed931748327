package topology

import "fmt"

/*
Facet patterns for each reference shape. Each table lists a cell's boundary
sub-entities at one dimension below as index tuples into the cell's node
tuple, in the shape's standard orientation (cyclic for edges of 2D cells,
outward for faces of 3D cells).

Lower-dimension sub-entities (edges of a hex, vertices of everything) are
enumerated by dedicated tables so a maximal cell can generate its full
boundary complex in one pass.
*/

var edgesOfQuad = [][]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
}

var edgesOfTri = [][]int{
	{0, 1}, {1, 2}, {2, 0},
}

var facesOfHex = [][]int{
	{0, 3, 2, 1}, // bottom
	{4, 5, 6, 7}, // top
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

var edgesOfHex = [][]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var facesOfTet = [][]int{
	{0, 2, 1},
	{0, 1, 3},
	{1, 2, 3},
	{0, 3, 2},
}

var edgesOfTet = [][]int{
	{0, 1}, {1, 2}, {2, 0},
	{0, 3}, {1, 3}, {2, 3},
}

// subEntities enumerates the dimension-k boundary sub-entities of a single
// cell of type ct, as node-index tuples
func subEntities(ct CellType, cell []int, k int) (subs [][]int) {
	apply := func(pattern [][]int) {
		subs = make([][]int, len(pattern))
		for i, p := range pattern {
			sub := make([]int, len(p))
			for j, local := range p {
				sub[j] = cell[local]
			}
			subs[i] = sub
		}
	}
	switch {
	case k == 0:
		subs = make([][]int, len(cell))
		for i, node := range cell {
			subs[i] = []int{node}
		}
	case ct == Quad4 && k == 1:
		apply(edgesOfQuad)
	case ct == Tri3 && k == 1:
		apply(edgesOfTri)
	case ct == Hex8 && k == 2:
		apply(facesOfHex)
	case ct == Hex8 && k == 1:
		apply(edgesOfHex)
	case ct == Tet4 && k == 2:
		apply(facesOfTet)
	case ct == Tet4 && k == 1:
		apply(edgesOfTet)
	default:
		err := fmt.Errorf("no facet pattern for dimension-%d sub-entities of %v", k, ct)
		panic(err)
	}
	return
}
