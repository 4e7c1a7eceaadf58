package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds training configuration
type Config struct {
	Architecture []int // input size followed by every layer size
	Iterations   int
	Alpha        float64
	Step         int
	Verbose      bool
	Graph        bool
	GraphPath    string
	Samples      int
	Seed         int64
	OutputFile   string
}

// ParseArchitecture parses architecture string into slice of integers
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.Fields(strings.ReplaceAll(archStr, ",", " "))
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("architecture entry %d: %w", i, err)
		}
		arch[i] = n
	}
	return arch, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if len(config.Architecture) < 2 {
		return fmt.Errorf("architecture must have at least 2 layers (input and output)")
	}

	for i, n := range config.Architecture {
		if n < 1 {
			return fmt.Errorf("architecture entry %d must be positive, got %d", i, n)
		}
	}

	if config.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative")
	}

	if config.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive")
	}

	if config.Samples <= 0 {
		return fmt.Errorf("samples must be positive")
	}

	return nil
}
