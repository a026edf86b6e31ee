package nn

import "gonum.org/v1/gonum/floats"

// HalfSquaredError computes the loss Σ ½(output - target)² and writes its
// gradient (output - target) into grad.
//
// All three slices must have the same length. grad may alias neither output
// nor target.
func HalfSquaredError(output, target, grad []float64) float64 {
	var loss float64
	for k, o := range output {
		d := o - target[k]
		grad[k] = d
		loss += 0.5 * d * d
	}
	return loss
}

// OneHot writes the one-hot encoding of label into dst.
func OneHot(dst []float64, label int) {
	clear(dst)
	dst[label] = 1
}

// ArgMax returns the index of the largest value in v.
// Ties resolve to the lowest index. Returns -1 for an empty slice.
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(v)
}
