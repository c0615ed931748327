package topology

import (
	"fmt"
	"sort"
)

/*
Topology is the canonical mesh-connectivity structure: an ordered cell list
for every dimension from 0 up to the manifold dimension, derived once from
the top-level connectivity and immutable afterwards. The maximal-dimension
list is the authoritative mesh connectivity; the lower-dimension lists are
the deduplicated boundary complexes of the maximal cells.
*/
type Topology struct {
	family Family
	dim    int
	cells  [][][]int // cells[k] holds the dimension-k cell tuples
}

/*
New builds a Topology from the top-level connectivity. The manifold dimension
is inferred from the cell arity via the family chain; every cell must carry
that arity. Sub-entities at every lower dimension are generated from the
facet patterns of the maximal shape and deduplicated on their
rotation-canonical key, so an edge or face shared by neighboring cells is
stored once.
*/
func New(family Family, conn [][]int) *Topology {
	if len(conn) == 0 {
		panic(fmt.Errorf("cannot infer the cell type of an empty connectivity"))
	}
	return NewOfType(family, family.typeForSize(len(conn[0])), conn)
}

/*
NewOfType builds a Topology whose maximal cell type is stated rather than
inferred, so the connectivity may be empty. The boundary of a closed manifold
is the canonical empty case: no cell has multiplicity one, yet the boundary
set still has a definite type one step down the chain.
*/
func NewOfType(family Family, ct CellType, conn [][]int) (tp *Topology) {
	d := ct.Dim()
	if family.TypeAt(d) != ct {
		err := fmt.Errorf("cell type %v is not on the %v chain at dimension %d", ct, family, d)
		panic(err)
	}
	tp = &Topology{
		family: family,
		dim:    d,
		cells:  make([][][]int, d+1),
	}
	tp.cells[d] = make([][]int, len(conn))
	for i, cell := range conn {
		if len(cell) != ct.Size() {
			err := fmt.Errorf("cell %d of %v topology has arity %d, expected %d for %v",
				i, family, len(cell), ct.Size(), ct)
			panic(err)
		}
		for _, node := range cell {
			if node < 0 {
				panic(fmt.Errorf("cell %d references negative node index %d", i, node))
			}
		}
		c := make([]int, len(cell))
		copy(c, cell)
		tp.cells[d][i] = c
	}
	for k := d - 1; k >= 0; k-- {
		tp.cells[k] = tp.deriveAt(k)
	}
	return
}

// deriveAt generates the deduplicated dimension-k cell list from the maximal cells
func (tp *Topology) deriveAt(k int) (cells [][]int) {
	var (
		ct   = tp.family.TypeAt(tp.dim)
		seen = make(map[string]bool)
	)
	for _, cell := range tp.cells[tp.dim] {
		for _, sub := range subEntities(ct, cell, k) {
			key := sharedKey(sub)
			if seen[key] {
				continue
			}
			seen[key] = true
			cells = append(cells, sub)
		}
	}
	return
}

func (tp *Topology) Dim() int       { return tp.dim }
func (tp *Topology) Family() Family { return tp.family }

func (tp *Topology) CellsAt(k int) [][]int {
	tp.checkDim(k)
	return tp.cells[k]
}

func (tp *Topology) CellCountAt(k int) int {
	tp.checkDim(k)
	return len(tp.cells[k])
}

func (tp *Topology) CellSizeAt(k int) int {
	tp.checkDim(k)
	if len(tp.cells[k]) == 0 {
		return 0
	}
	return len(tp.cells[k][0])
}

// MaximalCells returns the authoritative dimension-d connectivity
func (tp *Topology) MaximalCells() [][]int {
	return tp.cells[tp.dim]
}

func (tp *Topology) checkDim(k int) {
	if k < 0 || k > tp.dim {
		err := fmt.Errorf("dimension %d out of range for %d-manifold topology", k, tp.dim)
		panic(err)
	}
}

// PointIndices returns the distinct node indices referenced by the mesh, ascending
func (tp *Topology) PointIndices() (nodes []int) {
	seen := make(map[int]bool)
	for _, cell := range tp.cells[tp.dim] {
		for _, node := range cell {
			if !seen[node] {
				seen[node] = true
				nodes = append(nodes, node)
			}
		}
	}
	sort.Ints(nodes)
	return
}

/*
BoundaryConn extracts the connectivity of the exterior boundary: the (d-1)
sub-entities referenced by exactly one maximal cell. A facet shared between
two neighbors has multiplicity two and is interior.
*/
func (tp *Topology) BoundaryConn() (conn [][]int) {
	if tp.dim == 0 {
		return [][]int{}
	}
	var (
		ct    = tp.family.TypeAt(tp.dim)
		count = make(map[string]int)
		first = make(map[string][]int)
		order []string
	)
	for _, cell := range tp.cells[tp.dim] {
		for _, sub := range subEntities(ct, cell, tp.dim-1) {
			key := sharedKey(sub)
			if count[key] == 0 {
				first[key] = sub
				order = append(order, key)
			}
			count[key]++
		}
	}
	conn = [][]int{}
	for _, key := range order {
		if count[key] == 1 {
			conn = append(conn, first[key])
		}
	}
	return
}

// Canonical returns an equivalent Topology with every cell rotated to canonical form
func (tp *Topology) Canonical() (R *Topology) {
	R = &Topology{
		family: tp.family,
		dim:    tp.dim,
		cells:  make([][][]int, tp.dim+1),
	}
	for k := range tp.cells {
		R.cells[k] = make([][]int, len(tp.cells[k]))
		for i, cell := range tp.cells[k] {
			R.cells[k][i] = canonicalCell(cell)
		}
	}
	return
}

/*
Equals reports structural equality after canonicalization of both sides:
same family, same dimension, and the same canonical cell set at every
dimension regardless of cell ordering. Maximal cells compare by their
rotation-canonical key, preserving orientation; derived sub-entities compare
orientation-insensitively, because each is stored in the traversal order of
whichever parent generated it first.
*/
func (tp *Topology) Equals(other *Topology) bool {
	if other == nil || tp.family != other.family || tp.dim != other.dim {
		return false
	}
	for k := 0; k <= tp.dim; k++ {
		if len(tp.cells[k]) != len(other.cells[k]) {
			return false
		}
		keyOf := canonicalKey
		if k != tp.dim {
			keyOf = sharedKey
		}
		a := sortedKeys(tp.cells[k], keyOf)
		b := sortedKeys(other.cells[k], keyOf)
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

func sortedKeys(cells [][]int, keyOf func([]int) string) (keys []string) {
	keys = make([]string, len(cells))
	for i, cell := range cells {
		keys[i] = keyOf(cell)
	}
	sort.Strings(keys)
	return
}

// Clone returns a deep copy sharing no storage with the receiver
func (tp *Topology) Clone() (R *Topology) {
	R = &Topology{
		family: tp.family,
		dim:    tp.dim,
		cells:  make([][][]int, len(tp.cells)),
	}
	for k := range tp.cells {
		R.cells[k] = make([][]int, len(tp.cells[k]))
		for i, cell := range tp.cells[k] {
			c := make([]int, len(cell))
			copy(c, cell)
			R.cells[k][i] = c
		}
	}
	return
}

/*
Extrude stitches the mesh into a Topology one manifold dimension higher.
Each flag gates the slab between node layer l and layer l+1; the node index
stride between layers is one past the highest node index of the base mesh.
Slabs flagged false are omitted along with every facet they would contribute.

Only the hypercube family extrudes shape-to-shape along its chain (point to
line, line to quad, quad to hex); extruding a simplex topology would require
prism cells outside the chain and panics.
*/
func (tp *Topology) Extrude(flags []bool) (R *Topology) {
	if tp.family != HypercubeFamily {
		err := fmt.Errorf("extrusion is only defined for the %v family, have %v",
			HypercubeFamily, tp.family)
		panic(err)
	}
	tp.family.Next(tp.family.TypeAt(tp.dim)) // panics when the chain ends
	var (
		stride = tp.nodeStride()
		conn   [][]int
	)
	for l, keep := range flags {
		if !keep {
			continue
		}
		lo, hi := l*stride, (l+1)*stride
		for _, cell := range tp.cells[tp.dim] {
			conn = append(conn, stitch(cell, lo, hi))
		}
	}
	if len(conn) == 0 {
		panic(fmt.Errorf("extrusion with no retained layers produces an empty topology"))
	}
	R = New(tp.family, conn)
	return
}

// stitch joins a cell's copy at node offset lo to its copy at offset hi,
// producing the extruded cell in the standard orientation of the next shape
func stitch(cell []int, lo, hi int) (ext []int) {
	switch len(cell) {
	case 1: // point -> line
		ext = []int{cell[0] + lo, cell[0] + hi}
	case 2: // line -> quad, top edge reversed to keep the cyclic corner order
		ext = []int{cell[0] + lo, cell[1] + lo, cell[1] + hi, cell[0] + hi}
	case 4: // quad -> hex, bottom then top in matching order
		ext = make([]int, 8)
		for i, node := range cell {
			ext[i] = node + lo
			ext[i+4] = node + hi
		}
	default:
		panic(fmt.Errorf("no extrusion stitch for cells of arity %d", len(cell)))
	}
	return
}

func (tp *Topology) nodeStride() (stride int) {
	for _, cell := range tp.cells[tp.dim] {
		for _, node := range cell {
			if node+1 > stride {
				stride = node + 1
			}
		}
	}
	return
}
