package gcellset

import (
	"fmt"

	"github.com/mriveralee/gofea/utils"
)

// NodeCoordinates supplies the physical location of a mesh node
type NodeCoordinates interface {
	CoordinatesAt(node int) []float64
}

/*
BoxOpts describes an axis-aligned selection box. Lo and Hi are the corner
coordinates, one entry per tested axis. Inflate optionally grows the box
per axis before the test. With Any set, a cell is selected when at least
one of its nodes lies inside; by default every node must.
*/
type BoxOpts struct {
	Lo, Hi  []float64
	Inflate []float64
	Any     bool
}

// BoxSelect returns the indices of cells inside the box, in cell order
func (gcs *GCellSet) BoxSelect(coords NodeCoordinates, opts BoxOpts) (I utils.Index) {
	var (
		lo, hi = opts.Lo, opts.Hi
		nAxes  = len(lo)
	)
	if nAxes == 0 || len(hi) != nAxes {
		err := fmt.Errorf("malformed box: lo and hi must have the same non-zero length, have %d and %d",
			nAxes, len(hi))
		panic(err)
	}
	if opts.Inflate != nil && len(opts.Inflate) != nAxes {
		err := fmt.Errorf("malformed box: inflate must match the box axes, have %d for %d axes",
			len(opts.Inflate), nAxes)
		panic(err)
	}
	lo, hi = append([]float64{}, lo...), append([]float64{}, hi...)
	for j := 0; j < nAxes; j++ {
		if opts.Inflate != nil {
			lo[j] -= opts.Inflate[j]
			hi[j] += opts.Inflate[j]
		}
		if lo[j] > hi[j] {
			lo[j], hi[j] = hi[j], lo[j]
		}
	}
	inside := func(node int) bool {
		xyz := coords.CoordinatesAt(node)
		if len(xyz) < nAxes {
			err := fmt.Errorf("node %d has %d coordinates, box tests %d axes", node, len(xyz), nAxes)
			panic(err)
		}
		for j := 0; j < nAxes; j++ {
			if xyz[j] < lo[j] || xyz[j] > hi[j] {
				return false
			}
		}
		return true
	}
	for i, cell := range gcs.Conn() {
		hits := 0
		for _, node := range cell {
			if inside(node) {
				hits++
			}
		}
		if (opts.Any && hits > 0) || (!opts.Any && hits == len(cell)) {
			I = append(I, i)
		}
	}
	return
}
