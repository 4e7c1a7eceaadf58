// deepnet-train: trains a feed-forward classifier on synthetic clusters
//
// Usage:
//
//	deepnet-train --arch="2 8 3" --iterations=5000 --alpha=0.05 --output=model
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"deepnet/nn"
	"deepnet/utils"
)

var (
	arch       = flag.String("arch", "2 8 3", "Input size followed by every layer size (last is the class count)")
	iterations = flag.Int("iterations", nn.DefaultIterations, "Number of gradient descent iterations")
	alpha      = flag.Float64("alpha", nn.DefaultAlpha, "Learning rate")
	step       = flag.Int("step", nn.DefaultStep, "Report the cost every step iterations")
	verbose    = flag.Bool("verbose", true, "Verbose output")
	graph      = flag.Bool("graph", false, "Plot the training cost")
	graphPath  = flag.String("graph-path", nn.DefaultGraphPath, "Cost plot file (png, svg or pdf)")
	seed       = flag.Int64("seed", 42, "Random seed for the synthetic data")
	samples    = flag.Int("samples", 300, "Number of synthetic samples")
	outputFile = flag.String("output", "", "Output network file")
)

func main() {
	flag.Parse()

	architecture, err := utils.ParseArchitecture(*arch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid architecture: %v\n", err)
		os.Exit(1)
	}
	config := &utils.Config{
		Architecture: architecture,
		Iterations:   *iterations,
		Alpha:        *alpha,
		Step:         *step,
		Verbose:      *verbose,
		Graph:        *graph,
		GraphPath:    *graphPath,
		Samples:      *samples,
		Seed:         *seed,
		OutputFile:   *outputFile,
	}
	if err := utils.ValidateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	utils.Verbose = config.Verbose

	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                    deepnet Trainer                           ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Printf("\nConfiguration:\n")
	fmt.Printf("  Architecture:  %v\n", config.Architecture)
	fmt.Printf("  Iterations:    %d\n", config.Iterations)
	fmt.Printf("  Learning Rate: %.4f\n", config.Alpha)
	fmt.Printf("  Step:          %d\n", config.Step)
	fmt.Printf("  Samples:       %d\n", config.Samples)
	fmt.Printf("  Seed:          %d\n", config.Seed)
	fmt.Println()

	inputDim := config.Architecture[0]
	layerSizes := config.Architecture[1:]
	net, err := nn.New(inputDim, layerSizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building network: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Network: %d inputs, %d layers, %d classes\n", inputDim, net.LayerCount(), net.OutputSize())

	fmt.Printf("Generating %d synthetic samples...\n", config.Samples)
	rng := rand.New(rand.NewSource(config.Seed))
	X, Y := utils.GenerateClusters(rng, inputDim, net.OutputSize(), config.Samples)

	fmt.Println("\nStarting training...")
	start := time.Now()
	decisions, cost, err := net.Train(X, Y, nn.TrainOptions{
		Iterations: config.Iterations,
		Alpha:      config.Alpha,
		Verbose:    config.Verbose,
		Graph:      config.Graph,
		Step:       config.Step,
		GraphPath:  config.GraphPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error training: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nTraining complete! Total time: %.2fs\n", time.Since(start).Seconds())
	fmt.Printf("Final cost: %.6f | Accuracy: %.2f%%\n", cost, 100*nn.Accuracy(decisions, Y))
	if config.Graph {
		fmt.Printf("Cost plot written to %s\n", config.GraphPath)
	}

	utils.PrintTimingStats(net.Stats())

	if config.OutputFile != "" {
		fmt.Printf("\nSaving network to %s...\n", config.OutputFile)
		path, err := net.Save(config.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s\n", path)
	}
}
