// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Module interface: Forward, Backward, ZeroGrad, StepGrad, StepGradRMSProp, InitWeights
//   - Layers: FullyConnected (dense layer with a built-in activation)
//   - Containers: Sequence
//   - Activations: Identity, ReLU, UnitStep, LogisticSigmoid, Tanh
//   - Loss helpers: HalfSquaredError, OneHot, ArgMax
//   - Random: seeded source for weight initialization
//
// # Basic Usage
//
//	import "github.com/born-ml/nnets/nn"
//
//	func main() {
//	    net := nn.NewSequence(
//	        nn.NewFullyConnected(784, 300, nn.ReLU{}),
//	        nn.NewFullyConnected(300, 10, nn.ReLU{}),
//	    )
//	    net.InitWeights(nn.NewRandom(42))
//
//	    target := make([]float64, 10)
//	    grad := make([]float64, 10)
//
//	    net.ZeroGrad()
//	    for _, s := range batch {
//	        net.Forward(s.Input)
//	        nn.OneHot(target, s.Label)
//	        nn.HalfSquaredError(net.Output(), target, grad)
//	        net.Backward(grad)
//	    }
//	    net.StepGradRMSProp(1e-4, 0.9, 1e-8)
//	}
//
// # Gradient Accumulation
//
// Backward adds into the parameter gradients. Several Forward/Backward pairs
// therefore sum into a single mini-batch gradient, and ZeroGrad must be called
// before the next batch.
//
// # Buffers
//
// Output and InputGrad return slices that alias module-owned buffers. They are
// overwritten by the next Forward or Backward call; copy them to keep them.
// Forward keeps a reference to its input until the matching Backward.
//
// Modules are not safe for concurrent use.
package nn
