package optim

import (
	"github.com/born-ml/nnets/internal/nn"
)

// RMSProp implements the RMSProp optimizer.
//
// Every parameter keeps a decayed running average of its squared gradient:
//
//	history = rho * history + (1 - rho) * gradient²
//	param   = param - lr / sqrt(history + eps) * gradient
//
// where rho is HistoryInfluence and eps is SmoothingTerm. The history is stored
// in the modules and survives ZeroGrad.
//
// Example:
//
//	optimizer := optim.NewRMSProp(optim.RMSPropConfig{
//	    LR:               1e-4,
//	    HistoryInfluence: 0.9,
//	    SmoothingTerm:    1e-8,
//	})
type RMSProp struct {
	lr  float64
	rho float64
	eps float64
}

// RMSPropConfig holds configuration for RMSProp optimizer.
type RMSPropConfig struct {
	LR               float64 // Learning rate (default: 0.001)
	HistoryInfluence float64 // Decay of the squared-gradient history (default: 0.9, range: [0, 1))
	SmoothingTerm    float64 // Added under the square root (default: 1e-8, must be > 0)
}

func (c RMSPropConfig) withDefaults() RMSPropConfig {
	if c.LR == 0 {
		c.LR = 0.001
	}
	if c.HistoryInfluence == 0 {
		c.HistoryInfluence = 0.9
	}
	if c.SmoothingTerm == 0 {
		c.SmoothingTerm = 1e-8
	}
	return c
}

// Validate checks the configuration after defaults are applied.
func (c RMSPropConfig) Validate() error {
	return c.withDefaults().validate()
}

func (c RMSPropConfig) validate() error {
	if err := (Config{LR: c.LR}).Validate(); err != nil {
		return err
	}
	if c.HistoryInfluence < 0 || c.HistoryInfluence >= 1 {
		return ErrInvalidHistoryInfluence
	}
	if !(c.SmoothingTerm > 0) {
		return ErrInvalidSmoothingTerm
	}
	return nil
}

// NewRMSProp creates a new RMSProp optimizer.
//
// Zero fields take their defaults:
//   - LR: 0.001
//   - HistoryInfluence: 0.9
//   - SmoothingTerm: 1e-8
func NewRMSProp(config RMSPropConfig) *RMSProp {
	config = config.withDefaults()
	return &RMSProp{
		lr:  config.LR,
		rho: config.HistoryInfluence,
		eps: config.SmoothingTerm,
	}
}

// NewRMSPropExact creates an RMSProp optimizer from config without applying
// defaults, so a zero HistoryInfluence is kept as given.
//
// It returns an error if any field is out of range, including a zero
// SmoothingTerm or LR.
func NewRMSPropExact(config RMSPropConfig) (*RMSProp, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &RMSProp{
		lr:  config.LR,
		rho: config.HistoryInfluence,
		eps: config.SmoothingTerm,
	}, nil
}

// Step applies m.StepGradRMSProp with the current hyperparameters.
func (r *RMSProp) Step(m nn.Module) {
	m.StepGradRMSProp(r.lr, r.rho, r.eps)
}

// ZeroGrad clears the gradients of m.
func (r *RMSProp) ZeroGrad(m nn.Module) {
	m.ZeroGrad()
}

// GetLR returns the current learning rate.
func (r *RMSProp) GetLR() float64 {
	return r.lr
}

// SetLR updates the learning rate.
func (r *RMSProp) SetLR(lr float64) {
	r.lr = lr
}
