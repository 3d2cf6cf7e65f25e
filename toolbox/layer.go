package toolbox

import (
	"fmt"
	"slices"
)

// Layer is one dense, sigmoid-activated stage of a Network.
type Layer struct {
	W    *AF32 // Shape (OutputSize, InputSize)
	Bias float32

	// Output holds the activations from the most recent call to Forward.
	Output []float32

	// Delta is reserved for backpropagation.  Nothing reads or writes it.
	Delta []float32

	InputSize  int
	OutputSize int
}

// MakeLayer returns a zero-initialized layer with outputSize nodes, each
// taking inputSize inputs.
func MakeLayer(inputSize, outputSize int) *Layer {
	return &Layer{
		W:          MakeAF32(outputSize, inputSize),
		Output:     make([]float32, outputSize),
		Delta:      make([]float32, outputSize),
		InputSize:  inputSize,
		OutputSize: outputSize,
	}
}

// Forward applies the layer to x, overwriting lay.Output.
//
// x (input) is the previous layer's output.  Shape (lay.InputSize)
//
// Panics if x or the layer's weights do not match the declared sizes.
func (lay *Layer) Forward(x []float32) {
	inputSize := lay.InputSize
	outputSize := lay.OutputSize

	if len(x) != inputSize {
		panic(fmt.Sprintf("dimension mismatch: len(x) = %d, want %d", len(x), inputSize))
	}
	if len(lay.Output) != outputSize {
		panic(fmt.Sprintf("dimension mismatch: len(lay.Output) = %d, want %d", len(lay.Output), outputSize))
	}
	if lay.W == nil || !slices.Equal(lay.W.Shape, []int{outputSize, inputSize}) || len(lay.W.V) != outputSize*inputSize {
		panic(fmt.Sprintf("dimension mismatch: lay.W must have shape {%d, %d}", outputSize, inputSize))
	}

	// Write the net input of each node into Output, then activate in place.
	for i := 0; i < outputSize; i++ {
		lay.Output[i] = denseDot(lay.W.Row(i), x) + lay.Bias
	}
	sigmoidActivation(lay.Output)
}
