package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWilliamsR(t *testing.T) {
	highs := []float64{10, 11, 12, 13, 14}
	lows := []float64{8, 9, 10, 11, 12}
	closes := []float64{9, 10, 11, 12, 13}

	assert.Equal(t, []float64{-25, -25, -25}, WilliamsR(highs, lows, closes, 3))
}

func TestWilliamsRStaysWithinRange(t *testing.T) {
	highs := []float64{12, 15, 13, 16, 14, 17, 15, 18, 16, 19}
	lows := []float64{10, 11, 10, 12, 11, 13, 12, 14, 13, 15}
	closes := []float64{11, 14, 12, 15, 13, 16, 14, 17, 15, 18}

	for _, value := range WilliamsR(highs, lows, closes, 5) {
		assert.GreaterOrEqual(t, value, -100.0)
		assert.LessOrEqual(t, value, 0.0)
	}
}

func TestWilliamsRShortInput(t *testing.T) {
	assert.Nil(t, WilliamsR([]float64{1}, []float64{1}, []float64{1}, 3))
}
