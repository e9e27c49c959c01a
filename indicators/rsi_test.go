package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSIStaysWithinBounds(t *testing.T) {
	prices := []float64{44, 47, 45, 50, 48, 52, 49, 53, 51, 55, 50, 54, 52, 56, 53, 57, 54, 58, 55, 59}

	values := RSI(prices, 14)
	assert.Len(t, values, len(prices)-14)
	for _, value := range values {
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 100.0)
	}
}

// A monotonically increasing series has no losses, so the avgLoss==0 edge
// case must saturate at 100 instead of dividing by zero.
func TestRSIMonotonicallyIncreasingSeries(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = float64(i + 1)
	}

	for _, value := range RSI(prices, 14) {
		assert.Equal(t, 100.0, value)
	}
}

func TestRSIMonotonicallyDecreasingSeries(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = float64(100 - i)
	}

	for _, value := range RSI(prices, 14) {
		assert.Equal(t, 0.0, value)
	}
}

func TestRSIWilderSmoothing(t *testing.T) {
	// period 3 over +1,+1,-1,+1: seed avgGain 2/3, avgLoss 1/3,
	// then avgGain (2/3*2+1)/3 = 7/9, avgLoss (1/3*2+0)/3 = 2/9
	values := RSI([]float64{1, 2, 3, 2, 3}, 3)

	assert.Len(t, values, 2)
	assert.InDelta(t, 66.6667, values[0], 0.0001)
	assert.InDelta(t, 77.7778, values[1], 0.0001)
}

func TestRSIShortInput(t *testing.T) {
	assert.Nil(t, RSI([]float64{1, 2, 3}, 3))
}
