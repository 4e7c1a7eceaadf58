// Package poisson implements the Poisson distribution.
package poisson

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrNonPositiveLambtha = errors.New("lambtha must be a positive value")
	ErrNotEnoughData      = errors.New("data must contain multiple values")
)

// Poisson is a Poisson distribution with expected number of occurrences
// Lambtha.
type Poisson struct {
	Lambtha float64
	dist    distuv.Poisson
}

// New returns the distribution with rate lambtha when data is nil, or the
// one whose rate is the mean of data otherwise.
func New(data []float64, lambtha float64) (*Poisson, error) {
	if data == nil {
		if lambtha <= 0 || math.IsNaN(lambtha) {
			return nil, errors.WithStack(ErrNonPositiveLambtha)
		}
	} else {
		if len(data) < 2 {
			return nil, errors.WithStack(ErrNotEnoughData)
		}
		lambtha = stat.Mean(data, nil)
	}
	return &Poisson{
		Lambtha: lambtha,
		dist:    distuv.Poisson{Lambda: lambtha},
	}, nil
}

// PMF is the probability of exactly k successes. k is truncated to an
// integer; negative k has probability 0.
func (p *Poisson) PMF(k float64) float64 {
	if k < 0 {
		return 0
	}
	k = math.Trunc(k)
	if p.Lambtha > 0 {
		return p.dist.Prob(k)
	}
	// distuv works in log space, which is undefined for a rate of zero or
	// a negative mean.
	return math.Pow(p.Lambtha, k) * math.Exp(-p.Lambtha) / math.Gamma(k+1)
}

// maxTerms bounds the explicit sum for non-positive rates; k! overflows
// past it and every further term is zero.
const maxTerms = 170

// CDF is the probability of at most k successes.
func (p *Poisson) CDF(k float64) float64 {
	switch {
	case math.IsNaN(k):
		return math.NaN()
	case k < 0:
		return 0
	case math.IsInf(k, 1):
		return 1
	case p.Lambtha > 0:
		return p.dist.CDF(math.Trunc(k))
	}
	n := maxTerms
	if k < maxTerms {
		n = int(k)
	}
	var cdf float64
	for x := 0; x <= n; x++ {
		cdf += p.PMF(float64(x))
	}
	return cdf
}
