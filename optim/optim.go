// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/nnets/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD represents plain gradient descent.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//	optimizer.Step(net)
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// RMSProp

// RMSProp represents the RMSProp optimizer.
type RMSProp = optim.RMSProp

// RMSPropConfig contains configuration for RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp optimizer.
//
// Example:
//
//	optimizer := optim.NewRMSProp(optim.RMSPropConfig{
//	    LR:               1e-4,
//	    HistoryInfluence: 0.9,
//	    SmoothingTerm:    1e-8,
//	})
func NewRMSProp(config RMSPropConfig) *RMSProp {
	return optim.NewRMSProp(config)
}

// NewRMSPropExact creates an RMSProp optimizer without applying defaults.
// A zero HistoryInfluence is kept; a zero SmoothingTerm or LR is an error.
func NewRMSPropExact(config RMSPropConfig) (*RMSProp, error) {
	return optim.NewRMSPropExact(config)
}

// Scheduling

// ExponentialDecay multiplies the learning rate by Gamma on each Apply.
type ExponentialDecay = optim.ExponentialDecay

// Errors

// Configuration errors returned by Validate.
var (
	ErrInvalidLearningRate     = optim.ErrInvalidLearningRate
	ErrInvalidHistoryInfluence = optim.ErrInvalidHistoryInfluence
	ErrInvalidSmoothingTerm    = optim.ErrInvalidSmoothingTerm
	ErrInvalidDecay            = optim.ErrInvalidDecay
)
