package indicators

import "gitlab.com/aoterocom/quantengine/helpers"

// CCI is the commodity channel index over the typical price (H+L+C)/3.
// Unlike the oscillators it is unbounded. A flat window has zero mean
// deviation and propagates Inf/NaN per the engine-wide convention.
func CCI(highs []float64, lows []float64, closes []float64, period int) []float64 {
	n := len(closes)
	if period <= 0 || len(highs) != n || len(lows) != n || n < period {
		return nil
	}

	typicalPrices := make([]float64, n)
	for i := range typicalPrices {
		typicalPrices[i] = (highs[i] + lows[i] + closes[i]) / 3
	}

	middle := SMA(typicalPrices, period)
	result := make([]float64, len(middle))
	for i := range middle {
		window := typicalPrices[i : i+period]
		meanDeviation := helpers.MeanAbsoluteDeviation(window, middle[i])
		result[i] = (typicalPrices[i+period-1] - middle[i]) / (0.015 * meanDeviation)
	}
	return result
}
