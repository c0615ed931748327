package topology

import "fmt"

// CellType enumerates the reference cell shapes with linear geometry support
type CellType uint8

const (
	Point CellType = iota
	Line2
	Tri3
	Quad4
	Tet4
	Hex8
)

func (ct CellType) String() string {
	return [...]string{"Point", "Line2", "Tri3", "Quad4", "Tet4", "Hex8"}[ct]
}

// Size returns the node arity of the cell type
func (ct CellType) Size() int {
	return [...]int{1, 2, 3, 4, 4, 8}[ct]
}

// Dim returns the manifold dimension of the cell type
func (ct CellType) Dim() int {
	return [...]int{0, 1, 2, 2, 3, 3}[ct]
}

/*
Family names an ordered chain of cell types, each the boundary shape of the
next and the extrusion target of the previous
*/
type Family uint8

const (
	HypercubeFamily Family = iota
	SimplexFamily
)

func (f Family) String() string {
	return [...]string{"Hypercube", "Simplex"}[f]
}

func (f Family) Chain() []CellType {
	switch f {
	case HypercubeFamily:
		return []CellType{Point, Line2, Quad4, Hex8}
	case SimplexFamily:
		return []CellType{Point, Line2, Tri3, Tet4}
	}
	panic(fmt.Errorf("unknown cell family: %d", f))
}

// TypeAt resolves the chain member at manifold dimension dim
func (f Family) TypeAt(dim int) CellType {
	chain := f.Chain()
	if dim < 0 || dim > len(chain)-1 {
		err := fmt.Errorf("no cell type at dimension %d in %v family, valid range [0,%d]",
			dim, f, len(chain)-1)
		panic(err)
	}
	return chain[dim]
}

// Next resolves the extrusion target of ct, one step up the chain
func (f Family) Next(ct CellType) CellType {
	chain := f.Chain()
	for i, c := range chain {
		if c == ct {
			if i == len(chain)-1 {
				err := fmt.Errorf("%v is the last member of the %v family, no extrusion target", ct, f)
				panic(err)
			}
			return chain[i+1]
		}
	}
	panic(fmt.Errorf("cell type %v is not a member of the %v family", ct, f))
}

// Prev resolves the boundary shape of ct, one step down the chain
func (f Family) Prev(ct CellType) CellType {
	chain := f.Chain()
	for i, c := range chain {
		if c == ct {
			if i == 0 {
				err := fmt.Errorf("%v is the first member of the %v family, no boundary shape", ct, f)
				panic(err)
			}
			return chain[i-1]
		}
	}
	panic(fmt.Errorf("cell type %v is not a member of the %v family", ct, f))
}

// typeForSize infers the chain member with the given node arity
func (f Family) typeForSize(size int) CellType {
	for _, c := range f.Chain() {
		if c.Size() == size {
			return c
		}
	}
	err := fmt.Errorf("no cell type of size %d in the %v family", size, f)
	panic(err)
}
