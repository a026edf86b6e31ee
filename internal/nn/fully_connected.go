package nn

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// FullyConnected implements a dense layer followed by an activation.
//
// Performs the transformation: y = f(W·x + b)
// where:
//   - x is the input vector with length inputSize
//   - W is the weight matrix with shape [outputSize, inputSize], stored row-major
//   - b is the bias vector with length outputSize
//   - f is the activation A applied element-wise
//
// All buffers are allocated by NewFullyConnected; Forward and Backward do not
// allocate.
//
// Example:
//
//	layer := nn.NewFullyConnected(784, 300, nn.ReLU{})
//	layer.InitWeights(rng)
//	layer.Forward(x)
//	y := layer.Output()
type FullyConnected[A Activation] struct {
	inputSize  int
	outputSize int
	activation A

	weights []float64 // [outputSize, inputSize]
	bias    []float64 // [outputSize]

	input      []float64 // last Forward input, not owned
	potential  []float64
	output     []float64
	derivative []float64 // f'(potential), set by Backward
	delta      []float64
	inputGrad  []float64

	weightGrad    []float64
	biasGrad      []float64
	weightHistory []float64 // RMSProp second moment
	biasHistory   []float64
}

// NewFullyConnected creates a layer mapping inputSize values to outputSize values.
//
// Weights and bias start at zero; call InitWeights or set them through
// Weights and Bias.
func NewFullyConnected[A Activation](inputSize, outputSize int, activation A) *FullyConnected[A] {
	if inputSize <= 0 || outputSize <= 0 {
		panic(fmt.Sprintf("FullyConnected: sizes must be positive, got %dx%d", inputSize, outputSize))
	}

	n := inputSize * outputSize
	return &FullyConnected[A]{
		inputSize:     inputSize,
		outputSize:    outputSize,
		activation:    activation,
		weights:       make([]float64, n),
		bias:          make([]float64, outputSize),
		potential:     make([]float64, outputSize),
		output:        make([]float64, outputSize),
		derivative:    make([]float64, outputSize),
		delta:         make([]float64, outputSize),
		inputGrad:     make([]float64, inputSize),
		weightGrad:    make([]float64, n),
		biasGrad:      make([]float64, outputSize),
		weightHistory: make([]float64, n),
		biasHistory:   make([]float64, outputSize),
	}
}

func (l *FullyConnected[A]) matrix(data []float64) blas64.General {
	return blas64.General{
		Rows:   l.outputSize,
		Cols:   l.inputSize,
		Data:   data,
		Stride: l.inputSize,
	}
}

func vector(data []float64) blas64.Vector {
	return blas64.Vector{N: len(data), Data: data, Inc: 1}
}

// Forward computes potential = W·input + b and output = f(potential).
func (l *FullyConnected[A]) Forward(input []float64) {
	l.input = input

	copy(l.potential, l.bias)
	blas64.Gemv(blas.NoTrans, 1, l.matrix(l.weights), vector(input), 1, vector(l.potential))

	for j, p := range l.potential {
		l.output[j] = l.activation.Apply(p)
	}
}

// Backward accumulates parameter gradients and computes the input gradient.
//
// With delta = outputGrad ⊙ f'(potential):
//
//	biasGrad   += delta
//	weightGrad += delta ⊗ input
//	inputGrad   = Wᵀ·delta
func (l *FullyConnected[A]) Backward(outputGrad []float64) {
	for j, p := range l.potential {
		l.derivative[j] = l.activation.Derivative(p)
	}
	floats.MulTo(l.delta, outputGrad, l.derivative)

	floats.Add(l.biasGrad, l.delta)
	blas64.Ger(1, vector(l.delta), vector(l.input), l.matrix(l.weightGrad))

	blas64.Gemv(blas.Trans, 1, l.matrix(l.weights), vector(l.delta), 0, vector(l.inputGrad))
}

// ZeroGrad resets the weight and bias gradients.
func (l *FullyConnected[A]) ZeroGrad() {
	clear(l.weightGrad)
	clear(l.biasGrad)
}

// StepGrad applies p -= learningRate * grad to weights and bias.
func (l *FullyConnected[A]) StepGrad(learningRate float64) {
	floats.AddScaled(l.weights, -learningRate, l.weightGrad)
	floats.AddScaled(l.bias, -learningRate, l.biasGrad)
}

// StepGradRMSProp applies the RMSProp update to weights and bias.
func (l *FullyConnected[A]) StepGradRMSProp(learningRate, historyInfluence, smoothingTerm float64) {
	rmsPropUpdate(l.weights, l.weightGrad, l.weightHistory, learningRate, historyInfluence, smoothingTerm)
	rmsPropUpdate(l.bias, l.biasGrad, l.biasHistory, learningRate, historyInfluence, smoothingTerm)
}

// InitWeights draws weights from N(0, 2/(inputSize*outputSize)).
// The bias is left as is.
func (l *FullyConnected[A]) InitWeights(r RandomSource) {
	r.GenerateNormal(l.weights, 0, VarianceScalingStdev(l.inputSize, l.outputSize))
}

// Output returns the activations from the last Forward call.
func (l *FullyConnected[A]) Output() []float64 {
	return l.output
}

// InputGrad returns the input gradient from the last Backward call.
func (l *FullyConnected[A]) InputGrad() []float64 {
	return l.inputGrad
}

// Weights returns the weight matrix in row-major [outputSize, inputSize] order.
// The slice is the layer's storage; writes change the layer.
func (l *FullyConnected[A]) Weights() []float64 {
	return l.weights
}

// Bias returns the bias vector. Writes change the layer.
func (l *FullyConnected[A]) Bias() []float64 {
	return l.bias
}

// WeightGrad returns the accumulated weight gradient.
func (l *FullyConnected[A]) WeightGrad() []float64 {
	return l.weightGrad
}

// BiasGrad returns the accumulated bias gradient.
func (l *FullyConnected[A]) BiasGrad() []float64 {
	return l.biasGrad
}

// InputSize returns the number of inputs.
func (l *FullyConnected[A]) InputSize() int {
	return l.inputSize
}

// OutputSize returns the number of outputs.
func (l *FullyConnected[A]) OutputSize() int {
	return l.outputSize
}

// Activation returns the layer's activation function.
func (l *FullyConnected[A]) Activation() A {
	return l.activation
}
