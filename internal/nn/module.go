// Package nn implements neural network modules for the nnets toolkit.
//
// This package provides building blocks for constructing feed-forward networks:
//   - Module interface: forward/backward pass and parameter updates
//   - FullyConnected: dense layer parameterized by its Activation
//   - Sequence: container chaining modules
//   - Activations: Identity, ReLU, UnitStep, LogisticSigmoid, Tanh
//   - Loss helpers: HalfSquaredError, OneHot, ArgMax
//
// Every module owns its numeric buffers. They are allocated once at
// construction and reused on every call, so modules are not safe for
// concurrent use.
package nn

// Module is the base interface for all neural network components.
//
// Calls on a single Module must be strictly sequential. A Backward call uses
// state cached by the preceding Forward call; calling them out of order
// yields stale results rather than an error.
//
// Modules can be composed to build networks:
//
//	net := nn.NewSequence(
//	    nn.NewFullyConnected(784, 300, nn.ReLU{}),
//	    nn.NewFullyConnected(300, 10, nn.ReLU{}),
//	)
//	net.InitWeights(random.New(seed))
type Module interface {
	// Forward computes and caches the module output for input.
	//
	// The module may keep a reference to input until the matching Backward
	// call, so the caller must not modify it in between.
	Forward(input []float64)

	// Backward takes the loss gradient with respect to Output() and computes
	// InputGrad(). Parameter gradients are added to the accumulators, never
	// overwritten, so several Forward/Backward pairs sum into one step.
	Backward(outputGrad []float64)

	// ZeroGrad resets accumulated parameter gradients.
	// Optimizer history is left untouched.
	ZeroGrad()

	// StepGrad applies gradient descent: p -= learningRate * grad.
	// It does not reset gradients.
	StepGrad(learningRate float64)

	// StepGradRMSProp applies the RMSProp rule to every parameter:
	//
	//	h = historyInfluence*h + (1-historyInfluence)*grad²
	//	p -= learningRate / sqrt(h + smoothingTerm) * grad
	//
	// smoothingTerm must be strictly positive.
	StepGradRMSProp(learningRate, historyInfluence, smoothingTerm float64)

	// InitWeights draws parameters from r.
	InitWeights(r RandomSource)

	// Output returns the result of the last Forward call.
	// The slice aliases an internal buffer and is overwritten by the next Forward.
	Output() []float64

	// InputGrad returns the input gradient computed by the last Backward call.
	// The slice aliases an internal buffer and is overwritten by the next Backward.
	InputGrad() []float64
}

// RandomSource supplies the random draws used by InitWeights.
//
// *random.Random satisfies this interface.
type RandomSource interface {
	GenerateUniform(dst []float64, minVal, maxVal float64)
	GenerateNormal(dst []float64, mean, stdev float64)
}
