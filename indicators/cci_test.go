package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCCI(t *testing.T) {
	// typical price equals the series itself when H=L=C; a steady +1
	// drift pins the CCI at (1)/(0.015 * 2/3) = 100
	series := []float64{1, 2, 3, 4, 5}

	values := CCI(series, series, series, 3)
	assert.Len(t, values, 3)
	for _, value := range values {
		assert.InDelta(t, 100.0, value, 1e-9)
	}
}

func TestCCISignAgainstDrift(t *testing.T) {
	rising := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	falling := []float64{8, 7, 6, 5, 4, 3, 2, 1}

	for _, value := range CCI(rising, rising, rising, 5) {
		assert.Greater(t, value, 0.0)
	}
	for _, value := range CCI(falling, falling, falling, 5) {
		assert.Less(t, value, 0.0)
	}
}

func TestCCIShortInput(t *testing.T) {
	series := []float64{1, 2, 3}
	assert.Nil(t, CCI(series, series, series, 20))
}
