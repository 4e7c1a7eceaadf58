// deepnet-infer: evaluates a saved network on synthetic clusters
//
// Usage:
//
//	deepnet-infer --model=model.json --samples=100 --seed=42
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/gonum/mat"

	"deepnet/nn"
	"deepnet/utils"
)

var (
	modelFile = flag.String("model", "", "Network file written by deepnet-train")
	seed      = flag.Int64("seed", 42, "Random seed; reuse the training seed to draw from the same clusters")
	samples   = flag.Int("samples", 100, "Number of synthetic samples")
	show      = flag.Int("show", 5, "Number of per-sample predictions to print")
)

func main() {
	flag.Parse()

	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                    deepnet Inference                         ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")

	if *modelFile == "" {
		fmt.Fprintln(os.Stderr, "No network file given, use --model")
		os.Exit(1)
	}
	if *samples <= 0 {
		fmt.Fprintln(os.Stderr, "samples must be positive")
		os.Exit(1)
	}

	net := nn.Load(*modelFile)
	if net == nil {
		fmt.Fprintf(os.Stderr, "Could not load a network from %s\n", *modelFile)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d layers (%d inputs, %d classes)\n", net.LayerCount(), net.InputSize(), net.OutputSize())

	rng := rand.New(rand.NewSource(*seed))
	X, Y := utils.GenerateClusters(rng, net.InputSize(), net.OutputSize(), *samples)

	fmt.Println("\nRunning inference...")
	start := time.Now()
	decisions, cost := net.Evaluate(X, Y)
	fmt.Printf("Inference time: %v\n", time.Since(start))
	fmt.Printf("Cost: %.6f | Accuracy: %.2f%%\n", cost, 100*nn.Accuracy(decisions, Y))

	probabilities := net.Cache()[net.LayerCount()]
	for j := 0; j < *show && j < *samples; j++ {
		fmt.Printf("  sample %d: label %d, predicted %v, probabilities %.3f\n",
			j, argmax(mat.Col(nil, j, Y)), classes(mat.Col(nil, j, decisions)), mat.Col(nil, j, probabilities))
	}
}

func argmax(v []float64) int {
	best := 0
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func classes(v []float64) []int {
	var out []int
	for i, x := range v {
		if x == 1 {
			out = append(out, i)
		}
	}
	return out
}
