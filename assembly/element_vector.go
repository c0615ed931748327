package assembly

import "fmt"

/*
ElementVector is one element's local contribution: a numeric vector with one
entry per element degree of freedom and a parallel equation-number array.
Equation numbers are 1-indexed destinations into the global vector; 0 is the
sentinel for "no destination", and entries carrying it are dropped.
*/
type ElementVector struct {
	Vec    []float64
	EqNums []int
}

func NewElementVector(vec []float64, eqnums []int) ElementVector {
	if len(vec) != len(eqnums) {
		err := fmt.Errorf("element vector and equation numbers must have equal length: %d vs %d",
			len(vec), len(eqnums))
		panic(err)
	}
	return ElementVector{Vec: vec, EqNums: eqnums}
}

/*
Source is a pull producer of ElementVectors: finite, single pass, consumed
at most once by assembly. Implementations need not be restartable.
*/
type Source interface {
	Next() (ElementVector, bool)
}

// SliceSource adapts a materialized slice to the pull protocol
type SliceSource struct {
	evs []ElementVector
	at  int
}

func NewSliceSource(evs ...ElementVector) *SliceSource {
	return &SliceSource{evs: evs}
}

func (s *SliceSource) Next() (ev ElementVector, ok bool) {
	if s.at > len(s.evs)-1 {
		return
	}
	ev, ok = s.evs[s.at], true
	s.at++
	return
}
