package toolbox

import (
	"fmt"
	"slices"
)

type Network struct {
	InputSize   int
	OutputSize  int
	HiddenSizes []int

	// LearningRate is validated at construction but unused by the forward
	// pass.
	LearningRate float32

	// Layers[0:len(HiddenSizes)] are the hidden layers, the final entry is
	// the output layer.
	Layers []*Layer
}

// MakeNetwork builds a zero-initialized network.  Checks run in this order,
// and the first failure is returned:
//
//   - inputSize must be positive (IllegalInputSize)
//   - outputSize must be positive (IllegalOutputSize)
//   - hiddenSizes must be non-empty (IllegalHiddenLayer)
//   - learningRate must be strictly positive (IllegalLearningRate)
//   - every hidden size must be positive (IllegalHiddenLayer, wrapped with
//     the index of the first bad entry)
func MakeNetwork(inputSize, outputSize int, hiddenSizes []int, learningRate float32) (*Network, error) {
	if inputSize <= 0 {
		return nil, IllegalInputSize
	}
	if outputSize <= 0 {
		return nil, IllegalOutputSize
	}
	if len(hiddenSizes) == 0 {
		return nil, IllegalHiddenLayer
	}
	// Written this way so that NaN is rejected too.
	if !(learningRate > 0) {
		return nil, IllegalLearningRate
	}

	layers := make([]*Layer, 0, len(hiddenSizes)+1)
	lastSize := inputSize
	for l, size := range hiddenSizes {
		if size <= 0 {
			return nil, fmt.Errorf("hidden layer %d has size %d: %w", l, size, IllegalHiddenLayer)
		}
		layers = append(layers, MakeLayer(lastSize, size))
		lastSize = size
	}
	layers = append(layers, MakeLayer(lastSize, outputSize))

	return &Network{
		InputSize:    inputSize,
		OutputSize:   outputSize,
		HiddenSizes:  slices.Clone(hiddenSizes),
		LearningRate: learningRate,
		Layers:       layers,
	}, nil
}

// Forward runs x through every layer in order.
//
// x (input) is the network input.  Shape (net.InputSize)
//
// The returned slice is the output layer's Output buffer, not a copy; the
// next call to Forward overwrites it.  Panics if len(x) != net.InputSize.
func (net *Network) Forward(x []float32) []float32 {
	if len(x) != net.InputSize {
		panic(fmt.Sprintf("dimension mismatch: len(x) = %d, want %d", len(x), net.InputSize))
	}

	a := x
	for l := 0; l < len(net.Layers); l++ {
		net.Layers[l].Forward(a)

		// This layer's output becomes the input for the next layer.
		a = net.Layers[l].Output
	}

	return a
}

// Apply is Forward, but returns a copy that later calls will not overwrite.
func (net *Network) Apply(x []float32) []float32 {
	return slices.Clone(net.Forward(x))
}

// Shapes returns the weight shape {OutputSize, InputSize} of every layer.
func (net *Network) Shapes() [][]int {
	shapes := make([][]int, len(net.Layers))
	for l := 0; l < len(net.Layers); l++ {
		shapes[l] = []int{net.Layers[l].OutputSize, net.Layers[l].InputSize}
	}
	return shapes
}
