package indicators

// EMA is an exponential moving average with smoothing k=2/(period+1).
// The recurrence is seeded with the raw first price instead of an SMA of
// the first window. That seed is a known approximation kept on purpose:
// downstream consumers were built against these exact values.
// Values are emitted from index period-1 on, so the result has
// len(prices)-period+1 entries, same as SMA.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	k := 2.0 / float64(period+1)
	result := make([]float64, 0, len(prices)-period+1)
	ema := prices[0]
	for i, price := range prices {
		if i > 0 {
			ema = price*k + ema*(1-k)
		}
		if i >= period-1 {
			result = append(result, ema)
		}
	}
	return result
}
