package nn

import "math"

// Activation is an element-wise nonlinearity applied to a layer's potentials.
//
// Apply computes f(x). Derivative computes f'(x) at the same pre-activation x
// (not at f(x)). Implementations must be stateless apart from fixed
// parameters set at construction, so a value can be shared freely between layers.
//
// FullyConnected is generic over Activation, so concrete value types below are
// dispatched statically when a layer is instantiated with them.
type Activation interface {
	Apply(x float64) float64
	Derivative(x float64) float64
}

// Identity is the linear activation: f(x) = x.
type Identity struct{}

// Apply returns x unchanged.
func (Identity) Apply(x float64) float64 { return x }

// Derivative returns 1.
func (Identity) Derivative(float64) float64 { return 1 }

// ReLU is a Rectified Linear Unit activation.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// The subgradient at x = 0 is taken to be 1.
type ReLU struct{}

// Apply returns max(0, x).
func (ReLU) Apply(x float64) float64 {
	return math.Max(0, x)
}

// Derivative returns 1 for x >= 0, otherwise 0.
func (ReLU) Derivative(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}

// UnitStep is the Heaviside step: f(x) = 1 for x >= 0, otherwise 0.
//
// Its derivative is identically zero, so a layer using UnitStep passes no
// gradient. It is only useful with hand-set weights (see models.XorNet).
type UnitStep struct{}

// Apply returns 1 for x >= 0, otherwise 0.
func (UnitStep) Apply(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}

// Derivative returns 0.
func (UnitStep) Derivative(float64) float64 { return 0 }

// LogisticSigmoid is a steepness-scaled sigmoid activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-λx))
//
// A zero Lambda is treated as 1, so LogisticSigmoid{} is the standard sigmoid.
//
// Example:
//
//	steep := nn.LogisticSigmoid{Lambda: 4}
//	layer := nn.NewFullyConnected(8, 4, steep)
type LogisticSigmoid struct {
	Lambda float64
}

func (s LogisticSigmoid) lambda() float64 {
	if s.Lambda == 0 {
		return 1
	}
	return s.Lambda
}

// Apply returns 1 / (1 + exp(-λx)).
func (s LogisticSigmoid) Apply(x float64) float64 {
	return 1 / (1 + math.Exp(-s.lambda()*x))
}

// Derivative returns λ·σ(x)·(1 - σ(x)).
func (s LogisticSigmoid) Derivative(x float64) float64 {
	v := s.Apply(x)
	return s.lambda() * v * (1 - v)
}

// Tanh is a hyperbolic tangent activation.
//
// Applies the element-wise function: tanh(x), with range (-1, 1).
type Tanh struct{}

// Apply returns tanh(x).
func (Tanh) Apply(x float64) float64 {
	return math.Tanh(x)
}

// Derivative returns 1 - tanh²(x).
func (Tanh) Derivative(x float64) float64 {
	v := math.Tanh(x)
	return 1 - v*v
}
