package nn

import "math"

// rmsPropUpdate applies one RMSProp step element-wise over params.
//
//	history = rho*history + (1-rho)*grad²
//	param  -= lr / sqrt(history + eps) * grad
func rmsPropUpdate(params, grads, history []float64, lr, rho, eps float64) {
	for i, g := range grads {
		h := rho*history[i] + (1-rho)*g*g
		history[i] = h
		params[i] -= lr / math.Sqrt(h+eps) * g
	}
}
