package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) MulVec(v Vector) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Col(j int) (V Vector) {
	var (
		nr, _ = m.Dims()
		data  = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		data[i] = m.M.At(i, j)
	}
	V = NewVector(nr, data)
	return
}

func (m Matrix) Row(i int) (V Vector) {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	for j := 0; j < nc; j++ {
		data[j] = m.M.At(i, j)
	}
	V = NewVector(nc, data)
	return
}

func (m Matrix) SliceRows(I Index) (R Matrix) { // Does not change receiver
	// I should contain a list of row indices into M
	var (
		nr, nc = m.Dims()
		nI     = len(I)
	)
	R = NewMatrix(nI, nc)
	for i, ind := range I {
		if ind < 0 || ind > nr-1 {
			err := fmt.Errorf("row index out of bounds: index = %d, max_bounds = %d", ind, nr-1)
			panic(err)
		}
		R.M.SetRow(i, m.M.RawRowView(ind))
	}
	return
}

// Det supports the square sizes that arise as element Jacobians.
func (m Matrix) Det() (det float64) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err := fmt.Errorf("unable to take determinant of non-square matrix, dims = [%v,%v]", nr, nc)
		panic(err)
	}
	switch nr {
	case 1:
		det = m.At(0, 0)
	case 2:
		det = m.At(0, 0)*m.At(1, 1) - m.At(1, 0)*m.At(0, 1)
	case 3:
		det = m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(2, 1)*m.At(1, 2)) -
			m.At(0, 1)*(m.At(1, 0)*m.At(2, 2)-m.At(2, 0)*m.At(1, 2)) +
			m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(2, 0)*m.At(1, 1))
	default:
		det = mat.Det(m.M)
	}
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("matrix not square, dims = [%v,%v]", nr, nc)
		return
	}
	R = NewMatrix(nr, nc)
	if err = R.M.Inverse(m.M); err != nil {
		err = fmt.Errorf("unable to invert: %s", err)
		return
	}
	return
}

// SkewSym builds the skew-symmetric cross-product matrix of a 3-vector,
// so that SkewSym(a).MulVec(b) = a x b.
func SkewSym(v Vector) (R Matrix) {
	if v.Len() != 3 {
		err := fmt.Errorf("skew-symmetric matrix requires a 3-vector, len = %v", v.Len())
		panic(err)
	}
	var (
		x, y, z = v.AtVec(0), v.AtVec(1), v.AtVec(2)
	)
	R = NewMatrix(3, 3, []float64{
		0, -z, y,
		z, 0, -x,
		-y, x, 0,
	})
	return
}
