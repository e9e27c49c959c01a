package helpers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumAndMean(t *testing.T) {
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdDev(t *testing.T) {
	numbers := []float64{1, 2, 3}
	mean := Mean(numbers)

	assert.InDelta(t, 1.0, StdDev(numbers, mean), 1e-12)
	assert.InDelta(t, math.Sqrt(2.0/3.0), PopulationStdDev(numbers, mean), 1e-12)
}

func TestMeanAbsoluteDeviation(t *testing.T) {
	assert.InDelta(t, 2.0/3.0, MeanAbsoluteDeviation([]float64{1, 2, 3}, 2), 1e-12)
	assert.Equal(t, 0.0, MeanAbsoluteDeviation([]float64{5, 5, 5}, 5))
}

func TestHighestAndLowestValue(t *testing.T) {
	numbers := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	assert.Equal(t, 9.0, HighestValue(numbers))
	assert.Equal(t, 1.0, LowestValue(numbers))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 50.0, Clamp(50, 0, 100))
	assert.Equal(t, 100.0, Clamp(110, 0, 100))
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
}
