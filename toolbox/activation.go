package toolbox

import "github.com/chewxy/math32"

// Sigmoid is the logistic function 1/(1+e^-z).
//
// In float32 the result saturates to exactly 1 for z above ~16.6 and to
// exactly 0 for z below ~-88.7.
func Sigmoid(z float32) float32 {
	return 1 / (1 + math32.Exp(-z))
}

// z (input/output)
func sigmoidActivation(z []float32) {
	for i := 0; i < len(z); i++ {
		z[i] = Sigmoid(z[i])
	}
}
