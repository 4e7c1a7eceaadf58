package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where training progress and timing statistics are
// printed. Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// TimingStats holds timing information for one training run
type TimingStats struct {
	TotalTime        time.Duration
	ForwardPassTime  time.Duration
	EvaluationTime   time.Duration
	BackwardPassTime time.Duration
	Steps            int
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total training time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Gradient steps completed: %d\n", stats.Steps)
	fmt.Fprintln(Output, "\nBreakdown by operation:")
	fmt.Fprintf(Output, "  Forward pass: %v (%.1f%%)\n", stats.ForwardPassTime, percentOf(stats.ForwardPassTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Evaluation: %v (%.1f%%)\n", stats.EvaluationTime, percentOf(stats.EvaluationTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Backward pass: %v (%.1f%%)\n", stats.BackwardPassTime, percentOf(stats.BackwardPassTime, stats.TotalTime))
	if stats.Steps == 0 {
		return
	}
	steps := time.Duration(stats.Steps)
	fmt.Fprintln(Output, "\nPerformance metrics:")
	fmt.Fprintf(Output, "  Average time per step: %v\n", stats.TotalTime/steps)
	fmt.Fprintf(Output, "  Average backward pass time: %v (%.1fµs)\n", stats.BackwardPassTime/steps, DurationUS(stats.BackwardPassTime/steps))
}

func percentOf(part, total time.Duration) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
