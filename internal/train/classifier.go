package train

import "github.com/born-ml/nnets/internal/nn"

// DefaultHidden is the hidden-layer topology used by NewClassifier when no
// sizes are given.
var DefaultHidden = []int{300, 200, 100}

// NewClassifier builds a ReLU multilayer perceptron:
//
//	inputSize → hidden[0] → ... → hidden[n-1] → numCategories
//
// Weights start at zero; call InitWeights before training.
func NewClassifier(inputSize, numCategories int, hidden ...int) *nn.Sequence {
	if len(hidden) == 0 {
		hidden = DefaultHidden
	}

	layers := make([]nn.Module, 0, len(hidden)+1)
	in := inputSize
	for _, size := range hidden {
		layers = append(layers, nn.NewFullyConnected(in, size, nn.ReLU{}))
		in = size
	}
	layers = append(layers, nn.NewFullyConnected(in, numCategories, nn.ReLU{}))

	return nn.NewSequence(layers...)
}
