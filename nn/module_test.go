// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/nnets/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	tests := []struct {
		name   string
		module nn.Module
	}{
		{
			name:   "FullyConnected",
			module: nn.NewFullyConnected(3, 2, nn.ReLU{}),
		},
		{
			name: "Sequence",
			module: nn.NewSequence(
				nn.NewFullyConnected(3, 4, nn.Tanh{}),
				nn.NewFullyConnected(4, 2, nn.Identity{}),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.module.InitWeights(nn.NewRandom(1))
			tt.module.Forward([]float64{1, 2, 3})
			require.Len(t, tt.module.Output(), 2)

			tt.module.Backward([]float64{1, 1})
			assert.Len(t, tt.module.InputGrad(), 3)
		})
	}
}

// TestTrainingStep runs one mini-batch through the public API.
func TestTrainingStep(t *testing.T) {
	layer := nn.NewFullyConnected(2, 2, nn.LogisticSigmoid{})
	net := nn.NewSequence(layer)
	net.InitWeights(nn.NewRandom(8))

	input := []float64{0.5, -0.5}
	target := make([]float64, 2)
	grad := make([]float64, 2)
	nn.OneHot(target, 1)

	net.Forward(input)
	before := nn.HalfSquaredError(net.Output(), target, grad)

	for i := 0; i < 20; i++ {
		net.ZeroGrad()
		net.Forward(input)
		nn.HalfSquaredError(net.Output(), target, grad)
		net.Backward(grad)
		net.StepGradRMSProp(0.05, 0.9, 1e-8)
	}

	net.Forward(input)
	after := nn.HalfSquaredError(net.Output(), target, grad)
	assert.Less(t, after, before)
	assert.Equal(t, 1, nn.ArgMax(net.Output()))
}
