package optim

import "errors"

// Configuration errors.
var (
	ErrInvalidLearningRate     = errors.New("learning rate must be positive")
	ErrInvalidHistoryInfluence = errors.New("history influence must be in [0, 1)")
	ErrInvalidSmoothingTerm    = errors.New("smoothing term must be positive")
	ErrInvalidDecay            = errors.New("decay factor must be in (0, 1]")
	ErrUnknownOptimizer        = errors.New("unknown optimizer")
)
