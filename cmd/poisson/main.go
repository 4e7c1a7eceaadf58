// deepnet-poisson: prints Poisson probabilities
//
// Usage:
//
//	deepnet-poisson --lambtha=3.5 --k=4
//	deepnet-poisson --data="1 4 2 5 3" --k=2
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"deepnet/poisson"
)

var (
	lambtha = flag.Float64("lambtha", 1, "Expected number of occurrences")
	data    = flag.String("data", "", "Observations to estimate lambtha from (overrides --lambtha)")
	k       = flag.Float64("k", 0, "Number of successes")
)

func main() {
	flag.Parse()

	var observations []float64
	if *data != "" {
		for _, s := range strings.Fields(strings.ReplaceAll(*data, ",", " ")) {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "parsing data: %v\n", err)
				os.Exit(1)
			}
			observations = append(observations, x)
		}
		if observations == nil {
			observations = []float64{}
		}
	}

	p, err := poisson.New(observations, *lambtha)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("lambtha: %v\n", p.Lambtha)
	fmt.Printf("P(X = %v):  %.10f\n", *k, p.PMF(*k))
	fmt.Printf("P(X <= %v): %.10f\n", *k, p.CDF(*k))
}
