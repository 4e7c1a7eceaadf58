package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Forward propagates X (features × samples) through every layer and
// returns the softmax output together with the activation cache, which
// replaces the one stored on the network.
func (net *Network) Forward(X mat.Matrix) (*mat.Dense, []*mat.Dense) {
	cache := make([]*mat.Dense, net.lastIndex()+1)
	cache[0] = mat.DenseCopyOf(X)
	for i := 1; i <= net.lastIndex(); i++ {
		layer := net.layers[i-1]
		weightedSums := addColumn(dot(layer.W, cache[i-1]), layer.B)
		if i == net.lastIndex() {
			cache[i] = SoftmaxColumns(weightedSums)
		} else {
			cache[i] = apply(net.activator.Activate, weightedSums)
		}
	}
	net.cache = cache
	return cache[net.lastIndex()], cache
}

// Cost is the categorical cross-entropy of A against Y.
func (net *Network) Cost(Y, A mat.Matrix) float64 {
	return Cost(Y, A)
}

// Evaluate runs a forward pass over X and returns the hard decisions and
// the cost against Y. Every class reaching its column's maximum
// probability is marked 1, so exact ties mark several classes.
func (net *Network) Evaluate(X, Y mat.Matrix) (*mat.Dense, float64) {
	A, _ := net.Forward(X)
	cost := Cost(Y, A)
	return decide(A), cost
}

func decide(A mat.Matrix) *mat.Dense {
	r, c := A.Dims()
	maxima := make([]float64, c)
	column := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(column, j, A)
		maxima[j] = column[0]
		for _, v := range column[1:] {
			if v > maxima[j] {
				maxima[j] = v
			}
		}
	}
	return apply(func(_, j int, v float64) float64 {
		if v == maxima[j] {
			return 1
		}
		return 0
	}, A)
}

// GradientDescent performs one full-batch backpropagation step against
// one-hot labels Y using the activations in cache, updating every layer's
// parameters in place with learning rate alpha.
func (net *Network) GradientDescent(Y mat.Matrix, cache []*mat.Dense, alpha float64) {
	_, samples := Y.Dims()
	m := float64(samples)

	dz := outputError(cache[net.lastIndex()], Y)
	for i := net.lastIndex(); i > 0; i-- {
		layer := net.layers[i-1]
		prev := cache[i-1]

		dw := scale(1/m, dot(dz, prev.T()))
		db := scale(1/m, sumRows(dz))

		// the error for layer i-1 needs W_i as it was before this step
		var dzPrev *mat.Dense
		if i > 1 {
			dzPrev = multiply(dot(layer.W.T(), dz), net.activator.Deactivate(prev))
		}

		layer.W.Sub(layer.W, scale(alpha, dw))
		layer.B.Sub(layer.B, scale(alpha, db))
		dz = dzPrev
	}
}
