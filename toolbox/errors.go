package toolbox

// CreationError is the kind of failure reported by MakeNetwork.
type CreationError int

const (
	IllegalInputSize CreationError = iota + 1
	IllegalOutputSize
	IllegalHiddenLayer
	IllegalLearningRate
)

var _ error = IllegalInputSize

func (e CreationError) Error() string {
	switch e {
	case IllegalInputSize:
		return "illegal input size"
	case IllegalOutputSize:
		return "illegal output size"
	case IllegalHiddenLayer:
		return "illegal hidden layer"
	case IllegalLearningRate:
		return "illegal learning rate"
	default:
		return "unknown creation error"
	}
}
