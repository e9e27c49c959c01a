package indicators

import "gitlab.com/aoterocom/quantengine/helpers"

// SMA is the sliding-window arithmetic mean. The result has
// len(prices)-period+1 values; shorter input yields an empty result.
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	result := make([]float64, 0, len(prices)-period+1)
	windowSum := helpers.Sum(prices[:period])
	result = append(result, windowSum/float64(period))
	for i := period; i < len(prices); i++ {
		windowSum += prices[i] - prices[i-period]
		result = append(result, windowSum/float64(period))
	}
	return result
}
