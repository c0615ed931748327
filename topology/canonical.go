package topology

import (
	"fmt"
	"strings"
)

/*
canonicalCell rotates a cell's node tuple left so its minimum entry comes
first. Cells with the same cyclic node ordering but different starting
offsets map to the same canonical form, which is what collapses a shared
sub-entity generated from two neighboring parents into one stored cell.
*/
func canonicalCell(cell []int) (canon []int) {
	var (
		n   = len(cell)
		at  = 0
		min = cell[0]
	)
	for i, node := range cell {
		if node < min {
			min, at = node, i
		}
	}
	canon = make([]int, n)
	for i := 0; i < n; i++ {
		canon[i] = cell[(i+at)%n]
	}
	return
}

// canonicalKey renders the canonical form as a map key
func canonicalKey(cell []int) string {
	var sb strings.Builder
	for _, node := range canonicalCell(cell) {
		fmt.Fprintf(&sb, "%d,", node)
	}
	return sb.String()
}

/*
sharedKey identifies a sub-entity independent of traversal orientation: a
face generated by two neighboring volume cells appears with reversed node
order in one of them, and rotation alone cannot collapse tuples of three or
more nodes onto their reversal. The smaller of the two rotation-canonical
keys is the identity used for dedup and multiplicity counting.
*/
func sharedKey(cell []int) string {
	fwd := canonicalKey(cell)
	rev := make([]int, len(cell))
	for i, node := range cell {
		rev[len(cell)-1-i] = node
	}
	if bwd := canonicalKey(rev); bwd < fwd {
		return bwd
	}
	return fwd
}
