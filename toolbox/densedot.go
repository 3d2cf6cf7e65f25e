package toolbox

import "gonum.org/v1/gonum/blas/blas32"

func denseDotNaive(x []float32, y []float32) float32 {
	if len(x) != len(y) {
		panic("mismatched length")
	}
	var sum float32
	for i := 0; i < len(x); i++ {
		sum += x[i] * y[i]
	}
	return sum
}

// denseDot computes the dot product of two equal-length contiguous vectors.
func denseDot(x []float32, y []float32) float32 {
	return blas32.Dot(
		blas32.Vector{N: len(x), Inc: 1, Data: x},
		blas32.Vector{N: len(y), Inc: 1, Data: y},
	)
}
