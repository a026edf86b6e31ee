package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfSquaredError(t *testing.T) {
	output := []float64{0.5, 1, -1}
	target := []float64{0, 1, 1}
	grad := make([]float64, 3)

	loss := HalfSquaredError(output, target, grad)

	assert.InDelta(t, 0.125+0+2, loss, 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0, -2}, grad, 1e-12)
}

func TestOneHot(t *testing.T) {
	dst := []float64{9, 9, 9, 9}
	OneHot(dst, 2)
	assert.Equal(t, []float64{0, 0, 1, 0}, dst)
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want int
	}{
		{"empty", nil, -1},
		{"single", []float64{3}, 0},
		{"last", []float64{0.1, 0.2, 0.9}, 2},
		{"tie", []float64{1, 5, 5, 2}, 1},
		{"negative", []float64{-3, -1, -2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArgMax(tt.v))
		})
	}
}
