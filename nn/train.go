package nn

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"deepnet/utils"
)

const (
	DefaultIterations = 5000
	DefaultAlpha      = 0.05
	DefaultStep       = 100
	DefaultGraphPath  = "training_cost.png"
)

// TrainOptions configures Train. Step is only checked when Verbose or
// Graph is set; a Step of 0 reports just the first and last iterations.
type TrainOptions struct {
	Iterations int
	Alpha      float64
	Verbose    bool
	Graph      bool
	Step       int
	GraphPath  string
}

func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Iterations: DefaultIterations,
		Alpha:      DefaultAlpha,
		Verbose:    true,
		Graph:      true,
		Step:       DefaultStep,
		GraphPath:  DefaultGraphPath,
	}
}

func (o TrainOptions) display() bool {
	return o.Verbose || o.Graph
}

func (o TrainOptions) validate() error {
	if o.Iterations < 0 {
		return errors.Wrapf(ErrInvalidArgument, "iterations must be a positive integer, got %d", o.Iterations)
	}
	if math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0) || o.Alpha <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "alpha must be positive, got %v", o.Alpha)
	}
	if o.display() && (o.Step < 0 || o.Step > o.Iterations) {
		return errors.Wrapf(ErrInvalidArgument, "step must be positive and <= iterations, got %d", o.Step)
	}
	return nil
}

func (o TrainOptions) reports(i int) bool {
	if i == 0 || i == o.Iterations {
		return true
	}
	return o.Step > 0 && i%o.Step == 0
}

// Train runs Iterations gradient-descent steps over the full batch X, Y and
// returns the hard decisions and cost of the final evaluation. Progress
// lines go to utils.Output when Verbose is set; the recorded cost curve is
// plotted to GraphPath when Graph is set.
func (net *Network) Train(X, Y mat.Matrix, opts TrainOptions) (*mat.Dense, float64, error) {
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}

	net.stats = utils.TimingStats{}
	net.history = nil
	totalStart := time.Now()

	start := time.Now()
	_, cache := net.Forward(X)
	net.stats.ForwardPassTime += time.Since(start)

	var (
		decisions *mat.Dense
		cost      float64
	)
	for i := 0; i <= opts.Iterations; i++ {
		start = time.Now()
		decisions, cost = net.Evaluate(X, Y)
		net.stats.EvaluationTime += time.Since(start)

		if opts.display() && opts.reports(i) {
			net.history = append(net.history, CostPoint{Iteration: i, Cost: cost})
			if opts.Verbose {
				fmt.Fprintf(utils.Output, "Cost after %d iterations: %v\n", i, cost)
			}
		}

		if i == opts.Iterations {
			break
		}
		start = time.Now()
		net.GradientDescent(Y, cache, opts.Alpha)
		net.stats.BackwardPassTime += time.Since(start)

		start = time.Now()
		_, cache = net.Forward(X)
		net.stats.ForwardPassTime += time.Since(start)
		net.stats.Steps++
	}
	net.stats.TotalTime = time.Since(totalStart)

	if opts.Graph {
		iterations := make([]int, len(net.history))
		costs := make([]float64, len(net.history))
		for i, p := range net.history {
			iterations[i] = p.Iteration
			costs[i] = p.Cost
		}
		graphPath := opts.GraphPath
		if graphPath == "" {
			graphPath = DefaultGraphPath
		}
		if err := utils.PlotCost(graphPath, iterations, costs); err != nil {
			return decisions, cost, errors.Wrap(err, "plotting training cost")
		}
	}
	return decisions, cost, nil
}
