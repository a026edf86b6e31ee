package train

import (
	"fmt"

	"github.com/born-ml/nnets/internal/optim"
)

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerSGD     = "sgd"
	OptimizerRMSProp = "rmsprop"
)

// Config holds the hyperparameters of a training run.
type Config struct {
	Epochs             int     // Passes over the training split.
	BatchSize          int     // Samples per optimizer step.
	LearningRate       float64 // Initial learning rate.
	LRDecay            float64 // Learning rate multiplier applied after each epoch.
	Optimizer          string  // OptimizerSGD or OptimizerRMSProp.
	HistoryInfluence   float64 // RMSProp decay of the squared-gradient history, in [0, 1). Zero is kept.
	SmoothingTerm      float64 // RMSProp term under the square root, must be > 0.
	ValidationFraction float64 // Share of the data held out for validation, in [0, 1).
	Seed               uint64  // Seed for weight initialization and shuffling.
}

// DefaultConfig returns the settings used for Fashion-MNIST sized problems.
func DefaultConfig() Config {
	return Config{
		Epochs:             20,
		BatchSize:          200,
		LearningRate:       1e-4,
		LRDecay:            0.95,
		Optimizer:          OptimizerRMSProp,
		HistoryInfluence:   0.9,
		SmoothingTerm:      1e-8,
		ValidationFraction: 0.1,
		Seed:               1231331231231231,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.ValidationFraction < 0 || c.ValidationFraction >= 1 {
		return fmt.Errorf("validation fraction must be in [0, 1), got %g", c.ValidationFraction)
	}
	if err := (optim.ExponentialDecay{Gamma: c.LRDecay}).Validate(); err != nil {
		return fmt.Errorf("lr decay %g: %w", c.LRDecay, err)
	}
	if _, err := c.NewOptimizer(); err != nil {
		return err
	}
	return nil
}

// NewOptimizer builds the optimizer named by c.Optimizer.
func (c Config) NewOptimizer() (optim.Optimizer, error) {
	switch c.Optimizer {
	case OptimizerSGD:
		sgd := optim.SGDConfig{LR: c.LearningRate}
		if err := (optim.Config{LR: c.LearningRate}).Validate(); err != nil {
			return nil, fmt.Errorf("sgd: %w", err)
		}
		return optim.NewSGD(sgd), nil
	case OptimizerRMSProp:
		rms, err := optim.NewRMSPropExact(optim.RMSPropConfig{
			LR:               c.LearningRate,
			HistoryInfluence: c.HistoryInfluence,
			SmoothingTerm:    c.SmoothingTerm,
		})
		if err != nil {
			return nil, fmt.Errorf("rmsprop: %w", err)
		}
		return rms, nil
	default:
		return nil, fmt.Errorf("%w: %q", optim.ErrUnknownOptimizer, c.Optimizer)
	}
}
