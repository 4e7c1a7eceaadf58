package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Activator is an element-wise activation together with its derivative
// expressed in terms of the activation output.
type Activator interface {
	Activate(i, j int, sum float64) float64
	Deactivate(m mat.Matrix) mat.Matrix
	String() string
}

type Sigmoid struct{}

func (s Sigmoid) Activate(i, j int, sum float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sum))
}

// Deactivate returns a ⊙ (1 - a) for an activation matrix a.
func (s Sigmoid) Deactivate(m mat.Matrix) mat.Matrix {
	return multiply(m, oneMinus(m))
}

func (s Sigmoid) String() string {
	return "sigmoid"
}

// SoftmaxColumns normalises every column of m into a probability
// distribution. The column maximum is subtracted before exponentiation.
func SoftmaxColumns(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	column := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(column, j, m)
		o.SetCol(j, softmaxVector(column))
	}
	return o
}

func softmaxVector(logits []float64) []float64 {
	maxLogit := floats.Max(logits)
	exps := make([]float64, len(logits))
	for i, v := range logits {
		exps[i] = math.Exp(v - maxLogit)
	}
	floats.Scale(1/floats.Sum(exps), exps)
	return exps
}
