package nn

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"deepnet/utils"
)

// ErrInvalidArgument is the cause of every validation failure returned by
// New and Train.
var ErrInvalidArgument = errors.New("invalid argument")

// Layer holds the parameters of one weight-bearing layer: W is
// units × inputs and B is units × 1.
type Layer struct {
	W *mat.Dense
	B *mat.Dense
}

// Units is the number of neurons in the layer.
func (l Layer) Units() int {
	r, _ := l.W.Dims()
	return r
}

// Inputs is the number of activations the layer consumes.
func (l Layer) Inputs() int {
	_, c := l.W.Dims()
	return c
}

// CostPoint is one recorded sample of the training curve.
type CostPoint struct {
	Iteration int
	Cost      float64
}

// Network is a fully-connected classifier with sigmoid hidden layers and a
// softmax output layer. A Network is not safe for concurrent use.
type Network struct {
	layers    []Layer
	cache     []*mat.Dense
	activator Activator
	history   []CostPoint
	stats     utils.TimingStats
}

// New builds a network taking nx input features. layers lists the unit
// count of every hidden layer followed by the output layer. Weights are
// drawn from a standard normal scaled by sqrt(2/fan_in); biases start at
// zero. Every size must be at least 1: gonum has no zero-length matrices,
// so an empty layer is rejected rather than accepted.
func New(nx int, layers []int) (*Network, error) {
	if nx < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "nx must be a positive integer, got %d", nx)
	}
	if len(layers) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "layers must be a non-empty list of positive integers")
	}
	for i, units := range layers {
		if units < 1 {
			return nil, errors.Wrapf(ErrInvalidArgument, "layers must be a list of positive integers, layer %d has %d units", i+1, units)
		}
	}

	net := &Network{
		layers:    make([]Layer, len(layers)),
		activator: Sigmoid{},
	}
	fanIn := nx
	for i, units := range layers {
		net.layers[i] = Layer{
			W: mat.NewDense(units, fanIn, heNormal(units*fanIn, fanIn)),
			B: mat.NewDense(units, 1, nil),
		}
		fanIn = units
	}
	return net, nil
}

func heNormal(size, fanIn int) []float64 {
	std := math.Sqrt(2 / float64(fanIn))
	data := make([]float64, size)
	for i := range data {
		data[i] = distuv.UnitNormal.Rand() * std
	}
	return data
}

// LayerCount is the number of weight-bearing layers.
func (net *Network) LayerCount() int {
	return len(net.layers)
}

// Layers returns the per-layer parameters; index 0 is the first hidden
// layer. The matrices are shared with the network.
func (net *Network) Layers() []Layer {
	return net.layers
}

// Cache returns the activations of the most recent forward pass. Index 0
// is the input, index i the output of layer i. It is empty before the
// first forward pass.
func (net *Network) Cache() []*mat.Dense {
	return net.cache
}

// InputSize is the number of features the network expects per sample.
func (net *Network) InputSize() int {
	return net.layers[0].Inputs()
}

// OutputSize is the number of classes.
func (net *Network) OutputSize() int {
	return net.layers[len(net.layers)-1].Units()
}

// History returns the cost points recorded by the latest Train call.
func (net *Network) History() []CostPoint {
	return net.history
}

// Stats returns the timings accumulated by Train.
func (net *Network) Stats() *utils.TimingStats {
	return &net.stats
}

func (net *Network) lastIndex() int {
	return len(net.layers)
}
