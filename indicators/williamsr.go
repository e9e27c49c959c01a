package indicators

import "gitlab.com/aoterocom/quantengine/helpers"

// WilliamsR is the Williams %R oscillator, ranging from 0 down to -100.
func WilliamsR(highs []float64, lows []float64, closes []float64, period int) []float64 {
	n := len(closes)
	if period <= 0 || n < period || len(highs) != n || len(lows) != n {
		return nil
	}

	result := make([]float64, 0, n-period+1)
	for i := period - 1; i < n; i++ {
		highestHigh := helpers.HighestValue(highs[i-period+1 : i+1])
		lowestLow := helpers.LowestValue(lows[i-period+1 : i+1])
		result = append(result, (highestHigh-closes[i])/(highestHigh-lowestLow)*-100)
	}
	return result
}
