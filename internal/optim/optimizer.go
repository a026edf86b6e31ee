// Package optim implements the parameter-update rules used to train
// nn.Module networks.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: plain gradient descent
//   - RMSProp: per-parameter adaptive learning rate
//   - ExponentialDecay: learning-rate schedule applied between epochs
//
// Gradients live inside the modules, so an optimizer only carries
// hyperparameters. RMSProp history is also stored in the modules.
//
// Example usage:
//
//	optimizer := optim.NewRMSProp(optim.RMSPropConfig{LR: 1e-4})
//
//	for range epochs {
//	    for _, batch := range batches {
//	        optimizer.ZeroGrad(net)
//	        for _, s := range batch {
//	            net.Forward(s.Input)
//	            nn.HalfSquaredError(net.Output(), target, grad)
//	            net.Backward(grad)
//	        }
//	        optimizer.Step(net)
//	    }
//	    schedule.Apply(optimizer)
//	}
package optim

import (
	"github.com/born-ml/nnets/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: apply the accumulated gradients of a module
//   - ZeroGrad: clear the module's accumulated gradients
//   - GetLR/SetLR: read and change the learning rate (for scheduling)
type Optimizer interface {
	// Step applies the gradients accumulated in m since its last ZeroGrad.
	// It does not clear them.
	Step(m nn.Module)

	// ZeroGrad clears the accumulated gradients of m.
	//
	// This should be called before each mini-batch so gradients from
	// previous batches are not applied twice.
	ZeroGrad(m nn.Module)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// Validate reports whether the learning rate is usable.
func (c Config) Validate() error {
	if !(c.LR > 0) {
		return ErrInvalidLearningRate
	}
	return nil
}
