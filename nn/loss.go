package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cost is the categorical cross-entropy of predictions A against one-hot
// labels Y, both classes × samples. No smoothing is applied, so a zero
// probability in A makes the result non-finite.
func Cost(Y, A mat.Matrix) float64 {
	yr, m := Y.Dims()
	ar, ac := A.Dims()
	if yr != ar || m != ac {
		panic(mat.ErrShape)
	}
	var sum float64
	for i := 0; i < yr; i++ {
		for j := 0; j < m; j++ {
			sum += Y.At(i, j) * math.Log(A.At(i, j))
		}
	}
	return -sum / float64(m)
}

// outputError is the gradient of the cross-entropy with respect to the
// pre-softmax sums: A - Y.
func outputError(A, Y mat.Matrix) *mat.Dense {
	return subtract(A, Y)
}
