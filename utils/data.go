package utils

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ClusterSpread is the standard deviation of samples around their class
// center.
const ClusterSpread = 0.5

// GenerateClusters builds a synthetic classification set with one Gaussian
// cluster per class. It returns a features × samples matrix and the
// matching classes × samples one-hot labels. The class centers are drawn
// first, so two calls with equally seeded generators share centers even
// when samples differs.
func GenerateClusters(rng *rand.Rand, features, classes, samples int) (*mat.Dense, *mat.Dense) {
	centers := mat.NewDense(classes, features, nil)
	centers.Apply(func(_, _ int, _ float64) float64 {
		return rng.NormFloat64() * 4
	}, centers)

	X := mat.NewDense(features, samples, nil)
	Y := mat.NewDense(classes, samples, nil)
	for j := 0; j < samples; j++ {
		class := rng.Intn(classes)
		for f := 0; f < features; f++ {
			X.Set(f, j, centers.At(class, f)+rng.NormFloat64()*ClusterSpread)
		}
		Y.Set(class, j, 1)
	}
	return X, Y
}
