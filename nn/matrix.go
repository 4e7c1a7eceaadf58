package nn

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func dot(m, n mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	_, c := n.Dims()
	o := mat.NewDense(r, c, nil)
	o.Product(m, n)
	return o
}

func apply(fn func(i, j int, v float64) float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Apply(fn, m)
	return o
}

func scale(s float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Scale(s, m)
	return o
}

func multiply(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(m, n)
	return o
}

func subtract(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Sub(m, n)
	return o
}

// addColumn adds the column vector b to every column of m.
func addColumn(m mat.Matrix, b mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	br, bc := b.Dims()
	if br != r || bc != 1 {
		panic(mat.ErrShape)
	}
	return apply(func(i, j int, v float64) float64 {
		return v + b.At(i, 0)
	}, m)
}

// sumRows collapses m into a column vector holding the sum of each row.
func sumRows(m mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	o := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		o.Set(i, 0, floats.Sum(mat.Row(nil, i, m)))
	}
	return o
}

// oneMinus returns 1 - m element-wise.
func oneMinus(m mat.Matrix) *mat.Dense {
	return apply(func(_, _ int, v float64) float64 {
		return 1 - v
	}, m)
}
