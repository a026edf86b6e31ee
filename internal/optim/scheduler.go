package optim

// ExponentialDecay multiplies the learning rate by Gamma each time it is applied.
//
// The training driver applies it once per epoch:
//
//	lr_epoch = lr_0 * gamma^epoch
type ExponentialDecay struct {
	Gamma float64
}

// Validate reports whether Gamma is in (0, 1].
func (d ExponentialDecay) Validate() error {
	if !(d.Gamma > 0 && d.Gamma <= 1) {
		return ErrInvalidDecay
	}
	return nil
}

// Apply scales the optimizer's learning rate by Gamma.
func (d ExponentialDecay) Apply(o Optimizer) {
	o.SetLR(o.GetLR() * d.Gamma)
}
