// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/nnets/internal/nn"
	"github.com/born-ml/nnets/internal/random"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// RandomSource supplies random draws to InitWeights.
type RandomSource = nn.RandomSource

// Random is a seeded random source.
type Random = random.Random

// NewRandom creates a Random seeded with seed.
func NewRandom(seed uint64) *Random {
	return random.New(seed)
}

// Layers

// FullyConnected represents a dense layer followed by an activation.
type FullyConnected[A Activation] = nn.FullyConnected[A]

// NewFullyConnected creates a dense layer.
//
// Example:
//
//	layer := nn.NewFullyConnected(784, 300, nn.ReLU{})
func NewFullyConnected[A Activation](inputSize, outputSize int, activation A) *FullyConnected[A] {
	return nn.NewFullyConnected(inputSize, outputSize, activation)
}

// Activations

// Activation is an element-wise nonlinearity with its derivative.
type Activation = nn.Activation

// Identity is the linear activation f(x) = x.
type Identity = nn.Identity

// ReLU is the rectified linear activation f(x) = max(0, x).
type ReLU = nn.ReLU

// UnitStep is the Heaviside step activation.
type UnitStep = nn.UnitStep

// LogisticSigmoid is the sigmoid 1 / (1 + exp(-λx)).
type LogisticSigmoid = nn.LogisticSigmoid

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// Sequence

// Sequence represents a sequential container of modules.
type Sequence = nn.Sequence

// NewSequence creates a new Sequence. At least one module is required.
//
// Example:
//
//	net := nn.NewSequence(
//	    nn.NewFullyConnected(2, 2, nn.LogisticSigmoid{}),
//	    nn.NewFullyConnected(2, 1, nn.LogisticSigmoid{}),
//	)
func NewSequence(modules ...Module) *Sequence {
	return nn.NewSequence(modules...)
}

// Loss Helpers

// HalfSquaredError returns Σ ½(output - target)² and writes output - target into grad.
func HalfSquaredError(output, target, grad []float64) float64 {
	return nn.HalfSquaredError(output, target, grad)
}

// OneHot writes the one-hot encoding of label into dst.
func OneHot(dst []float64, label int) {
	nn.OneHot(dst, label)
}

// ArgMax returns the index of the largest value in v.
func ArgMax(v []float64) int {
	return nn.ArgMax(v)
}
