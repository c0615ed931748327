package assembly

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

/*
SparseSystemVector folds a sequence of ElementVectors into one global sparse
vector of a fixed dimension. The fold is a commutative scatter-add: every
local entry with a non-zero equation number accumulates into global position
eqnum-1, so the result is independent of traversal order. The first call to
Assemble drains the source and caches the result; the cache is never
invalidated.
*/
type SparseSystemVector struct {
	dim    int
	source Source
	vec    *sparse.DOK // assembled result, nil until the fold has run
}

func NewSparseSystemVector(dim int, source Source) *SparseSystemVector {
	if dim < 1 {
		panic(fmt.Errorf("system vector dimension must be positive, have %d", dim))
	}
	return &SparseSystemVector{dim: dim, source: source}
}

// FromElementVectors wraps a materialized slice of contributions
func FromElementVectors(dim int, evs ...ElementVector) *SparseSystemVector {
	return NewSparseSystemVector(dim, NewSliceSource(evs...))
}

func (ssv *SparseSystemVector) Dim() int { return ssv.dim }

// Assemble runs the fold once and memoizes; subsequent calls return the
// cached vector without pulling the source again
func (ssv *SparseSystemVector) Assemble() *sparse.DOK {
	if ssv.vec != nil {
		return ssv.vec
	}
	vec := sparse.NewDOK(ssv.dim, 1)
	for ev, ok := ssv.source.Next(); ok; ev, ok = ssv.source.Next() {
		if len(ev.Vec) != len(ev.EqNums) {
			err := fmt.Errorf("element vector and equation numbers must have equal length: %d vs %d",
				len(ev.Vec), len(ev.EqNums))
			panic(err)
		}
		for i, eq := range ev.EqNums {
			if eq == 0 {
				continue // no destination
			}
			if eq < 0 || eq > ssv.dim {
				err := fmt.Errorf("equation number %d out of range for dimension %d", eq, ssv.dim)
				panic(err)
			}
			vec.Set(eq-1, 0, vec.At(eq-1, 0)+ev.Vec[i])
		}
	}
	ssv.vec = vec
	return ssv.vec
}

// SparseVector is a synonym for the memoized Assemble
func (ssv *SparseSystemVector) SparseVector() *sparse.DOK {
	return ssv.Assemble()
}

// ToFull densifies the assembled result, zeros at unreferenced positions
func (ssv *SparseSystemVector) ToFull() (full []float64) {
	vec := ssv.Assemble()
	full = make([]float64, ssv.dim)
	vec.DoNonZero(func(i, j int, v float64) {
		full[i] = v
	})
	return
}
