package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA(t *testing.T) {
	assert.Equal(t, []float64{2, 3, 4}, SMA([]float64{1, 2, 3, 4, 5}, 3))
}

func TestSMAOutputLength(t *testing.T) {
	prices := []float64{4, 8, 2, 6, 9, 1, 3, 7, 5, 2}

	for period := 1; period <= len(prices); period++ {
		assert.Len(t, SMA(prices, period), len(prices)-period+1)
	}
}

func TestSMAShortInput(t *testing.T) {
	assert.Nil(t, SMA([]float64{1, 2}, 3))
	assert.Nil(t, SMA(nil, 3))
	assert.Nil(t, SMA([]float64{1, 2, 3}, 0))
}
