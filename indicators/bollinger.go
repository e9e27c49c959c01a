package indicators

import "gitlab.com/aoterocom/quantengine/helpers"

type BollingerSeries struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands puts the middle band on the SMA and the outer bands at
// stdDevMultiplier population standard deviations around it.
func BollingerBands(prices []float64, period int, stdDevMultiplier float64) BollingerSeries {
	middle := SMA(prices, period)
	if middle == nil {
		return BollingerSeries{}
	}

	upper := make([]float64, len(middle))
	lower := make([]float64, len(middle))
	for i := range middle {
		window := prices[i : i+period]
		deviation := stdDevMultiplier * helpers.PopulationStdDev(window, middle[i])
		upper[i] = middle[i] + deviation
		lower[i] = middle[i] - deviation
	}

	return BollingerSeries{
		Upper:  upper,
		Middle: middle,
		Lower:  lower,
	}
}
