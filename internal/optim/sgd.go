package optim

import (
	"github.com/born-ml/nnets/internal/nn"
)

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// where gradient is the sum accumulated by Backward since the last ZeroGrad.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//
//	sgd.ZeroGrad(net)
//	for _, s := range batch {
//	    net.Forward(s.Input)
//	    net.Backward(grad(s))
//	}
//	sgd.Step(net)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// Validate checks the configuration after defaults are applied.
func (c SGDConfig) Validate() error {
	return Config{LR: c.withDefaults().LR}.Validate()
}

func (c SGDConfig) withDefaults() SGDConfig {
	if c.LR == 0 {
		c.LR = 0.01
	}
	return c
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	config = config.withDefaults()
	return &SGD{lr: config.LR}
}

// Step applies m.StepGrad with the current learning rate.
func (s *SGD) Step(m nn.Module) {
	m.StepGrad(s.lr)
}

// ZeroGrad clears the gradients of m.
func (s *SGD) ZeroGrad(m nn.Module) {
	m.ZeroGrad()
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
