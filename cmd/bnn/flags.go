package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// sizeList is a comma-separated list of layer sizes, e.g. "4,5".
type sizeList []int

var _ flag.Value = (*sizeList)(nil)

func (s *sizeList) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (s *sizeList) Set(value string) error {
	sizes := []int{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("while parsing layer size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	*s = sizes
	return nil
}

// topologyFlags are the flags shared by every command that builds a network
// of caller-chosen shape.
type topologyFlags struct {
	inputs       int
	outputs      int
	hidden       sizeList
	learningRate float64
}

func (t *topologyFlags) SetFlags(f *flag.FlagSet) {
	t.hidden = sizeList{2}
	f.IntVar(&t.inputs, "inputs", 2, "Number of input features")
	f.IntVar(&t.outputs, "outputs", 2, "Number of output nodes")
	f.Var(&t.hidden, "hidden", "Comma-separated hidden layer sizes")
	f.Float64Var(&t.learningRate, "learning-rate", 0.01, "Learning rate (validated, unused by inference)")
}

// inputFlags select the input vector, either inline or from a NumPy file.
type inputFlags struct {
	input     string
	inputFile string
	inputKey  string
}

func (in *inputFlags) SetFlags(f *flag.FlagSet, defaultInput string) {
	f.StringVar(&in.input, "input", defaultInput, "Comma-separated input vector")
	f.StringVar(&in.inputFile, "input-file", "", "Path to a .npy or .npz file holding the input vector (overrides --input)")
	f.StringVar(&in.inputKey, "input-key", "x", "Array name to read when --input-file is a .npz archive")
}

func (in *inputFlags) load() ([]float32, error) {
	if in.inputFile != "" {
		x, err := loadInputFile(in.inputFile, in.inputKey)
		if err != nil {
			return nil, fmt.Errorf("while loading input file: %w", err)
		}
		return x, nil
	}

	x, err := parseFloatList(in.input)
	if err != nil {
		return nil, fmt.Errorf("while parsing --input: %w", err)
	}
	return x, nil
}

func parseFloatList(value string) ([]float32, error) {
	out := []float32{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("while parsing %q: %w", part, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}
