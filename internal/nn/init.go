package nn

import "math"

// VarianceScalingStdev returns the standard deviation used by
// FullyConnected.InitWeights:
//
//	stdev = sqrt(2 / (fanIn * fanOut))
//
// Scaling by both fan-in and fan-out keeps the initial potentials of wide
// layers close to zero.
func VarianceScalingStdev(fanIn, fanOut int) float64 {
	return math.Sqrt(2.0 / float64(fanIn*fanOut))
}
