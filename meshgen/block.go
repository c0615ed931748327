package meshgen

import (
	"fmt"

	"github.com/mriveralee/gofea/gcellset"
)

// NodeSet is a node coordinate table, the coordinate provider consumed by
// spatial selection
type NodeSet struct {
	coords [][]float64
}

func NewNodeSet(coords [][]float64) *NodeSet {
	return &NodeSet{coords: coords}
}

func (ns *NodeSet) CoordinatesAt(node int) []float64 { return ns.coords[node] }
func (ns *NodeSet) Count() int                       { return len(ns.coords) }

// Box returns the axis-aligned bounding box of the node set
func (ns *NodeSet) Box() (lo, hi []float64) {
	if len(ns.coords) == 0 {
		return
	}
	n := len(ns.coords[0])
	lo, hi = make([]float64, n), make([]float64, n)
	copy(lo, ns.coords[0])
	copy(hi, ns.coords[0])
	for _, xyz := range ns.coords[1:] {
		for j, v := range xyz {
			if v < lo[j] {
				lo[j] = v
			}
			if v > hi[j] {
				hi[j] = v
			}
		}
	}
	return
}

func checkDivisions(name string, divs ...int) {
	for _, n := range divs {
		if n < 1 {
			panic(fmt.Errorf("%s requires at least one division per axis, have %v", name, divs))
		}
	}
}

// BlockLine meshes the segment [x0,x1] with n 2-node line cells
func BlockLine(n int, x0, x1 float64) (*gcellset.GCellSet, *NodeSet) {
	checkDivisions("BlockLine", n)
	var (
		dx     = (x1 - x0) / float64(n)
		coords = make([][]float64, n+1)
		conn   = make([][]int, n)
	)
	for i := 0; i <= n; i++ {
		coords[i] = []float64{x0 + float64(i)*dx}
	}
	for i := 0; i < n; i++ {
		conn[i] = []int{i, i + 1}
	}
	return gcellset.New(gcellset.LineShape{}, conn), NewNodeSet(coords)
}

// BlockQuad meshes a w x h rectangle with nx x ny 4-node quads on a
// row-major node grid anchored at the origin
func BlockQuad(nx, ny int, w, h float64) (*gcellset.GCellSet, *NodeSet) {
	checkDivisions("BlockQuad", nx, ny)
	var (
		dx, dy = w / float64(nx), h / float64(ny)
		coords = make([][]float64, 0, (nx+1)*(ny+1))
		conn   = make([][]int, 0, nx*ny)
		node   = func(i, j int) int { return j*(nx+1) + i }
	)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			coords = append(coords, []float64{float64(i) * dx, float64(j) * dy})
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			conn = append(conn, []int{
				node(i, j), node(i+1, j), node(i+1, j+1), node(i, j+1),
			})
		}
	}
	return gcellset.New(gcellset.QuadShape{}, conn), NewNodeSet(coords)
}

// BlockHex meshes a w x h x d box with nx x ny x nz 8-node hexes
func BlockHex(nx, ny, nz int, w, h, d float64) (*gcellset.GCellSet, *NodeSet) {
	checkDivisions("BlockHex", nx, ny, nz)
	var (
		dx, dy, dz = w / float64(nx), h / float64(ny), d / float64(nz)
		coords     = make([][]float64, 0, (nx+1)*(ny+1)*(nz+1))
		conn       = make([][]int, 0, nx*ny*nz)
		node       = func(i, j, k int) int { return k*(nx+1)*(ny+1) + j*(nx+1) + i }
	)
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				coords = append(coords, []float64{
					float64(i) * dx, float64(j) * dy, float64(k) * dz,
				})
			}
		}
	}
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				conn = append(conn, []int{
					node(i, j, k), node(i+1, j, k), node(i+1, j+1, k), node(i, j+1, k),
					node(i, j, k+1), node(i+1, j, k+1), node(i+1, j+1, k+1), node(i, j+1, k+1),
				})
			}
		}
	}
	return gcellset.New(gcellset.HexShape{}, conn), NewNodeSet(coords)
}
