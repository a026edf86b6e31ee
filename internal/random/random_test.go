package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniform_Range(t *testing.T) {
	r := New(7)

	buf := make([]float64, 1000)
	r.GenerateUniform(buf, -0.5, 2.0)

	for i, v := range buf {
		assert.GreaterOrEqual(t, v, -0.5, "value %d below range", i)
		assert.Less(t, v, 2.0, "value %d above range", i)
	}
}

func TestGenerateNormal_Moments(t *testing.T) {
	r := New(42)

	buf := make([]float64, 20000)
	r.GenerateNormal(buf, 3.0, 0.5)

	var sum, sumSq float64
	for _, v := range buf {
		sum += v
		sumSq += v * v
	}
	n := float64(len(buf))
	mean := sum / n
	stdev := math.Sqrt(sumSq/n - mean*mean)

	assert.InDelta(t, 3.0, mean, 0.02)
	assert.InDelta(t, 0.5, stdev, 0.02)
}

func TestSeed_Deterministic(t *testing.T) {
	a := New(1231331231231231)
	b := New(99)
	b.Seed(1231331231231231)

	bufA := make([]float64, 16)
	bufB := make([]float64, 16)
	a.GenerateNormal(bufA, 0, 1)
	b.GenerateNormal(bufB, 0, 1)
	require.Equal(t, bufA, bufB)

	a.GenerateUniform(bufA, 0, 1)
	b.GenerateUniform(bufB, 0, 1)
	require.Equal(t, bufA, bufB)
}

func TestShuffle_Permutation(t *testing.T) {
	r := New(3)

	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
}
