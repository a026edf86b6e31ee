// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent
//   - RMSProp: adaptive per-parameter learning rate
//   - ExponentialDecay: learning-rate schedule
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/nnets/nn"
//	    "github.com/born-ml/nnets/optim"
//	)
//
//	func main() {
//	    net := nn.NewSequence(nn.NewFullyConnected(784, 10, nn.ReLU{}))
//	    net.InitWeights(nn.NewRandom(1))
//
//	    optimizer := optim.NewRMSProp(optim.RMSPropConfig{LR: 1e-4})
//	    schedule := optim.ExponentialDecay{Gamma: 0.95}
//
//	    for range numEpochs {
//	        for _, batch := range batches {
//	            // 1. Zero gradients
//	            optimizer.ZeroGrad(net)
//
//	            // 2. Forward and backward pass per sample
//	            for _, s := range batch {
//	                net.Forward(s.Input)
//	                nn.OneHot(target, s.Label)
//	                nn.HalfSquaredError(net.Output(), target, grad)
//	                net.Backward(grad)
//	            }
//
//	            // 3. Update parameters
//	            optimizer.Step(net)
//	        }
//	        schedule.Apply(optimizer)
//	    }
//	}
package optim
