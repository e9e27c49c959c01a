package indicators

import "gitlab.com/aoterocom/quantengine/helpers"

type StochasticSeries struct {
	K []float64
	D []float64
}

// Stochastic computes the raw %K oscillator and its %D smoothing. A window
// where highest high equals lowest low divides by zero and propagates
// NaN/Inf; callers are expected to guard that, matching the engine-wide
// convention for numeric degeneracies.
func Stochastic(highs []float64, lows []float64, closes []float64, kPeriod int, dPeriod int) StochasticSeries {
	n := len(closes)
	if kPeriod <= 0 || n < kPeriod || len(highs) != n || len(lows) != n {
		return StochasticSeries{}
	}

	k := make([]float64, 0, n-kPeriod+1)
	for i := kPeriod - 1; i < n; i++ {
		highestHigh := helpers.HighestValue(highs[i-kPeriod+1 : i+1])
		lowestLow := helpers.LowestValue(lows[i-kPeriod+1 : i+1])
		k = append(k, (closes[i]-lowestLow)/(highestHigh-lowestLow)*100)
	}

	return StochasticSeries{
		K: k,
		D: SMA(k, dPeriod),
	}
}
