// Package models contains small ready-made networks.
package models

import "github.com/born-ml/nnets/internal/nn"

// XorNet is a 2→2→1 network for the XOR function.
//
// NewXorNet builds a trainable version with sigmoid units. SetCorrectWeights
// replaces it with unit-step layers whose hand-set weights compute XOR
// exactly:
//
//	hidden: h0 = step(2a + 2b - 1)   (OR)
//	        h1 = step(-2a - 2b + 3)  (NAND)
//	output: y  = step(h0 + h1 - 2)   (AND)
type XorNet struct {
	seq *nn.Sequence
}

// NewXorNet creates an XOR network with zero sigmoid weights.
// Call InitWeights before training it.
func NewXorNet() *XorNet {
	return &XorNet{
		seq: nn.NewSequence(
			nn.NewFullyConnected(2, 2, nn.LogisticSigmoid{}),
			nn.NewFullyConnected(2, 1, nn.LogisticSigmoid{}),
		),
	}
}

// SetCorrectWeights swaps the layers for unit-step layers with known weights.
// The result cannot be trained further since UnitStep carries no gradient.
func (x *XorNet) SetCorrectWeights() {
	hidden := nn.NewFullyConnected(2, 2, nn.UnitStep{})
	copy(hidden.Weights(), []float64{2, 2, -2, -2})
	copy(hidden.Bias(), []float64{-1, 3})

	output := nn.NewFullyConnected(2, 1, nn.UnitStep{})
	copy(output.Weights(), []float64{1, 1})
	copy(output.Bias(), []float64{-2})

	x.seq = nn.NewSequence(hidden, output)
}

// Forward runs the network on a two-element input.
func (x *XorNet) Forward(input []float64) {
	x.seq.Forward(input)
}

// Backward propagates a one-element output gradient.
func (x *XorNet) Backward(outputGrad []float64) {
	x.seq.Backward(outputGrad)
}

// ZeroGrad resets accumulated gradients.
func (x *XorNet) ZeroGrad() {
	x.seq.ZeroGrad()
}

// StepGrad applies gradient descent.
func (x *XorNet) StepGrad(learningRate float64) {
	x.seq.StepGrad(learningRate)
}

// StepGradRMSProp applies an RMSProp update.
func (x *XorNet) StepGradRMSProp(learningRate, historyInfluence, smoothingTerm float64) {
	x.seq.StepGradRMSProp(learningRate, historyInfluence, smoothingTerm)
}

// InitWeights draws random weights for both layers.
func (x *XorNet) InitWeights(r nn.RandomSource) {
	x.seq.InitWeights(r)
}

// Output returns the single network output.
func (x *XorNet) Output() []float64 {
	return x.seq.Output()
}

// InputGrad returns the gradient with respect to the two inputs.
func (x *XorNet) InputGrad() []float64 {
	return x.seq.InputGrad()
}
