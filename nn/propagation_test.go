package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCost(t *testing.T) {
	Y := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 0,
		0, 1,
	})
	A := mat.NewDense(3, 2, []float64{
		0.7, 0.2,
		0.2, 0.3,
		0.1, 0.5,
	})
	want := -(math.Log(0.7) + math.Log(0.5)) / 2
	assert.InDelta(t, want, Cost(Y, A), 1e-12)

	net, err := New(2, []int{3})
	require.NoError(t, err)
	assert.Equal(t, Cost(Y, A), net.Cost(Y, A))
}

func TestCostPerfectPrediction(t *testing.T) {
	Y := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.Equal(t, 0.0, Cost(Y, Y))
}

func TestCostZeroProbabilityIsNotFinite(t *testing.T) {
	Y := mat.NewDense(2, 1, []float64{1, 0})
	A := mat.NewDense(2, 1, []float64{0, 1})
	assert.True(t, math.IsInf(Cost(Y, A), 1))
}

func TestCostNonNegative(t *testing.T) {
	X, Y := separableData(30)
	for i := 0; i < 5; i++ {
		net, err := New(2, []int{4, 3})
		require.NoError(t, err)
		A, _ := net.Forward(X)
		assert.GreaterOrEqual(t, Cost(Y, A), 0.0)
	}
}

func TestSoftmaxColumns(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 1000,
		2, 1000,
		3, 999,
	})
	s := SoftmaxColumns(m)
	assertColumnStochastic(t, s)

	e := []float64{math.Exp(1), math.Exp(2), math.Exp(3)}
	sum := e[0] + e[1] + e[2]
	for i := range e {
		assert.InDelta(t, e[i]/sum, s.At(i, 0), 1e-12)
	}
	assert.InDelta(t, s.At(0, 1), s.At(1, 1), 1e-15)
	assert.False(t, math.IsNaN(s.At(2, 1)))
}

func TestSigmoidDeactivate(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{0, 0.5, 0.9})
	d := Sigmoid{}.Deactivate(a)
	assert.InDelta(t, 0, d.At(0, 0), 1e-15)
	assert.InDelta(t, 0.25, d.At(0, 1), 1e-15)
	assert.InDelta(t, 0.09, d.At(0, 2), 1e-12)
	assert.Equal(t, "sigmoid", Sigmoid{}.String())
}

func TestDecideMarksTies(t *testing.T) {
	A := mat.NewDense(3, 3, []float64{
		0.2, 0.4, 0.5,
		0.7, 0.4, 0.3,
		0.1, 0.2, 0.2,
	})
	want := mat.NewDense(3, 3, []float64{
		0, 1, 1,
		1, 1, 0,
		0, 0, 0,
	})
	assert.True(t, mat.Equal(want, decide(A)))
}

func TestEvaluate(t *testing.T) {
	X, Y := separableData(12)
	net, err := New(2, []int{5, 3})
	require.NoError(t, err)

	decisions, cost := net.Evaluate(X, Y)
	A, _ := net.Forward(X)

	assert.InDelta(t, Cost(Y, A), cost, 1e-12)
	r, c := decisions.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 12, c)
	for j := 0; j < c; j++ {
		best := 0
		for i := 1; i < r; i++ {
			if A.At(i, j) > A.At(best, j) {
				best = i
			}
		}
		assert.Equal(t, 1.0, decisions.At(best, j))
		for i := 0; i < r; i++ {
			v := decisions.At(i, j)
			assert.True(t, v == 0 || v == 1)
		}
	}
}

// The update applied with alpha = 1 is the gradient itself, which must
// match a central finite difference of the cost.
func TestGradientDescentMatchesNumericalGradient(t *testing.T) {
	X, Y := separableData(6)
	net, err := New(2, []int{3, 4, 3})
	require.NoError(t, err)

	before := snapshot(net)
	_, cache := net.Forward(X)
	net.GradientDescent(Y, cache, 1)
	after := snapshot(net)
	restore(net, before)

	const eps = 1e-6
	numeric := func(p *mat.Dense, i, j int) float64 {
		orig := p.At(i, j)
		p.Set(i, j, orig+eps)
		A, _ := net.Forward(X)
		plus := Cost(Y, A)
		p.Set(i, j, orig-eps)
		A, _ = net.Forward(X)
		minus := Cost(Y, A)
		p.Set(i, j, orig)
		return (plus - minus) / (2 * eps)
	}

	for l, layer := range net.Layers() {
		r, c := layer.W.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				analytic := before[l].W.At(i, j) - after[l].W.At(i, j)
				assert.InDelta(t, numeric(layer.W, i, j), analytic, 1e-6, "dW%d[%d,%d]", l+1, i, j)
			}
			analytic := before[l].B.At(i, 0) - after[l].B.At(i, 0)
			assert.InDelta(t, numeric(layer.B, i, 0), analytic, 1e-6, "db%d[%d]", l+1, i)
		}
	}
}

func TestGradientDescentUsesPreUpdateWeights(t *testing.T) {
	X, Y := separableData(6)
	net, err := New(2, []int{3, 3})
	require.NoError(t, err)

	_, cache := net.Forward(X)
	w2 := mat.DenseCopyOf(net.Layers()[1].W)
	dz := outputError(cache[2], Y)
	wantDz1 := multiply(dot(w2.T(), dz), Sigmoid{}.Deactivate(cache[1]))
	wantDw1 := scale(1/6.0, dot(wantDz1, cache[0].T()))
	w1 := mat.DenseCopyOf(net.Layers()[0].W)

	const alpha = 0.5
	net.GradientDescent(Y, cache, alpha)

	want := subtract(w1, scale(alpha, wantDw1))
	assert.True(t, mat.EqualApprox(want, net.Layers()[0].W, 1e-12))
}

func TestGradientDescentDecreasesCost(t *testing.T) {
	X, Y := separableData(30)
	net, err := New(2, []int{4, 3})
	require.NoError(t, err)

	_, initial := net.Evaluate(X, Y)
	_, cache := net.Forward(X)
	for i := 0; i < 500; i++ {
		net.GradientDescent(Y, cache, 0.5)
		_, cache = net.Forward(X)
	}
	_, final := net.Evaluate(X, Y)
	assert.Less(t, final, initial)
}

func snapshot(net *Network) []Layer {
	layers := make([]Layer, net.LayerCount())
	for i, l := range net.Layers() {
		layers[i] = Layer{W: mat.DenseCopyOf(l.W), B: mat.DenseCopyOf(l.B)}
	}
	return layers
}

func restore(net *Network, layers []Layer) {
	for i, l := range net.Layers() {
		l.W.Copy(layers[i].W)
		l.B.Copy(layers[i].B)
	}
}

// separableData returns n samples of three well separated 2-D clusters as
// a 2 × n feature matrix and a 3 × n one-hot label matrix.
func separableData(n int) (*mat.Dense, *mat.Dense) {
	centers := [][2]float64{{-2, -2}, {2, 2}, {2, -2}}
	X := mat.NewDense(2, n, nil)
	Y := mat.NewDense(3, n, nil)
	for j := 0; j < n; j++ {
		class := j % len(centers)
		offset := float64(j/len(centers)%5)*0.1 - 0.2
		X.Set(0, j, centers[class][0]+offset)
		X.Set(1, j, centers[class][1]-offset)
		Y.Set(class, j, 1)
	}
	return X, Y
}
