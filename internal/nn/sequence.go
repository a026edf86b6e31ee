package nn

import (
	"fmt"
	"slices"
)

// Sequence is a container module that chains multiple modules together.
//
// Forward feeds each module's Output into the next module. Backward runs in
// reverse, feeding each module's InputGrad into the preceding one. The other
// operations fan out to every member in order.
//
// Members are held by reference. The same module may belong to several
// sequences, as long as those sequences are not driven concurrently.
//
// Example:
//
//	net := nn.NewSequence(
//	    nn.NewFullyConnected(2, 2, nn.LogisticSigmoid{}),
//	    nn.NewFullyConnected(2, 1, nn.LogisticSigmoid{}),
//	)
//
//	net.Forward(x)
//	net.Backward(grad)
//
// This is equivalent to:
//
//	l1.Forward(x)
//	l2.Forward(l1.Output())
//	l2.Backward(grad)
//	l1.Backward(l2.InputGrad())
type Sequence struct {
	modules []Module
}

// NewSequence creates a new Sequence. It panics if no modules are given.
func NewSequence(modules ...Module) *Sequence {
	if len(modules) == 0 {
		panic("Sequence: at least one module is required")
	}
	return &Sequence{
		modules: slices.Clone(modules),
	}
}

// Forward applies all modules in order.
func (s *Sequence) Forward(input []float64) {
	for _, m := range s.modules {
		m.Forward(input)
		input = m.Output()
	}
}

// Backward propagates outputGrad through all modules in reverse order.
func (s *Sequence) Backward(outputGrad []float64) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		m.Backward(outputGrad)
		outputGrad = m.InputGrad()
	}
}

// ZeroGrad resets the gradients of every member.
func (s *Sequence) ZeroGrad() {
	for _, m := range s.modules {
		m.ZeroGrad()
	}
}

// StepGrad applies gradient descent to every member.
func (s *Sequence) StepGrad(learningRate float64) {
	for _, m := range s.modules {
		m.StepGrad(learningRate)
	}
}

// StepGradRMSProp applies the RMSProp update to every member.
func (s *Sequence) StepGradRMSProp(learningRate, historyInfluence, smoothingTerm float64) {
	for _, m := range s.modules {
		m.StepGradRMSProp(learningRate, historyInfluence, smoothingTerm)
	}
}

// InitWeights initializes every member from r, in order.
func (s *Sequence) InitWeights(r RandomSource) {
	for _, m := range s.modules {
		m.InitWeights(r)
	}
}

// Output returns the last member's output.
func (s *Sequence) Output() []float64 {
	return s.modules[len(s.modules)-1].Output()
}

// InputGrad returns the first member's input gradient.
func (s *Sequence) InputGrad() []float64 {
	return s.modules[0].InputGrad()
}

// Add appends a module to the sequence.
func (s *Sequence) Add(m Module) {
	s.modules = append(s.modules, m)
}

// Len returns the number of modules in the sequence.
func (s *Sequence) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequence) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic(fmt.Sprintf("Sequence.Module: index %d out of bounds [0, %d)", index, len(s.modules)))
	}
	return s.modules[index]
}
