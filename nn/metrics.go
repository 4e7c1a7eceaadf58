package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Accuracy is the fraction of samples whose decision column equals the
// label column exactly. A tie marking several classes counts as a miss.
func Accuracy(decisions, Y mat.Matrix) float64 {
	r, c := Y.Dims()
	if dr, dc := decisions.Dims(); dr != r || dc != c {
		panic(mat.ErrShape)
	}
	correct := 0
	for j := 0; j < c; j++ {
		match := true
		for i := 0; i < r && match; i++ {
			match = decisions.At(i, j) == Y.At(i, j)
		}
		if match {
			correct++
		}
	}
	return float64(correct) / float64(c)
}
