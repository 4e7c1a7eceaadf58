package nn

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"deepnet/utils"
)

// FileExt is appended to file names passed to Save that lack it.
const FileExt = ".json"

// Save writes the layer count, every layer's parameters and the current
// activation cache to filename and returns the path written.
func (net *Network) Save(filename string) (string, error) {
	if filepath.Ext(filename) != FileExt {
		filename += FileExt
	}

	weights := &utils.ModelWeights{
		Version:    utils.WeightsVersion,
		LayerCount: net.LayerCount(),
		Layers:     make([]utils.LayerWeight, net.LayerCount()),
	}
	for i, layer := range net.layers {
		weights.Layers[i] = utils.LayerWeight{
			Weight: utils.DenseToWeightData(fmt.Sprintf("W%d", i+1), layer.W),
			Bias:   utils.DenseToWeightData(fmt.Sprintf("b%d", i+1), layer.B),
		}
	}
	for i, a := range net.cache {
		weights.Cache = append(weights.Cache, utils.DenseToWeightData(fmt.Sprintf("A%d", i), a))
	}

	if err := utils.SaveWeights(filename, weights); err != nil {
		return "", errors.Wrapf(err, "saving network to %s", filename)
	}
	return filename, nil
}

// Load reads a network written by Save. It returns nil when filename cannot
// be read or does not hold a valid network; it never reports an error.
func Load(filename string) *Network {
	weights, err := utils.LoadWeights(filename)
	if err != nil {
		return nil
	}
	net, err := fromWeights(weights)
	if err != nil {
		return nil
	}
	return net
}

func fromWeights(weights *utils.ModelWeights) (*Network, error) {
	if weights.LayerCount < 1 || weights.LayerCount != len(weights.Layers) {
		return nil, errors.Errorf("layer count %d does not match %d stored layers",
			weights.LayerCount, len(weights.Layers))
	}

	net := &Network{
		layers:    make([]Layer, weights.LayerCount),
		activator: Sigmoid{},
	}
	for i, lw := range weights.Layers {
		w, err := utils.WeightDataToDense(lw.Weight)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d weights", i+1)
		}
		b, err := utils.WeightDataToDense(lw.Bias)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d bias", i+1)
		}
		layer := Layer{W: w, B: b}
		if br, bc := b.Dims(); br != layer.Units() || bc != 1 {
			return nil, errors.Errorf("layer %d bias is %dx%d, want %dx1", i+1, br, bc, layer.Units())
		}
		if i > 0 && layer.Inputs() != net.layers[i-1].Units() {
			return nil, errors.Errorf("layer %d takes %d inputs but layer %d has %d units",
				i+1, layer.Inputs(), i, net.layers[i-1].Units())
		}
		net.layers[i] = layer
	}

	if len(weights.Cache) > 0 {
		if len(weights.Cache) != weights.LayerCount+1 {
			return nil, errors.Errorf("cache holds %d activations, want %d",
				len(weights.Cache), weights.LayerCount+1)
		}
		net.cache = make([]*mat.Dense, len(weights.Cache))
		for i, wd := range weights.Cache {
			a, err := utils.WeightDataToDense(wd)
			if err != nil {
				return nil, errors.Wrapf(err, "activation %d", i)
			}
			rows := net.layers[0].Inputs()
			if i > 0 {
				rows = net.layers[i-1].Units()
			}
			r, c := a.Dims()
			if r != rows {
				return nil, errors.Errorf("activation %d has %d rows, want %d", i, r, rows)
			}
			if i > 0 {
				if _, c0 := net.cache[0].Dims(); c != c0 {
					return nil, errors.Errorf("activation %d has %d samples, want %d", i, c, c0)
				}
			}
			net.cache[i] = a
		}
	}
	return net, nil
}
