package indicators

import "math"

// ADX implements Wilder's average directional index. True range and the
// directional movements are smoothed with EMA(period), the DI lines are
// taken relative to the smoothed true range, and the resulting DX series
// is smoothed once more into the ADX. Needs at least 2*period candles.
func ADX(highs []float64, lows []float64, closes []float64, period int) []float64 {
	n := len(closes)
	if period <= 0 || len(highs) != n || len(lows) != n || n < 2*period {
		return nil
	}

	trueRange := make([]float64, n-1)
	plusDM := make([]float64, n-1)
	minusDM := make([]float64, n-1)
	for i := 1; i < n; i++ {
		highLow := highs[i] - lows[i]
		highClose := math.Abs(highs[i] - closes[i-1])
		lowClose := math.Abs(lows[i] - closes[i-1])
		trueRange[i-1] = math.Max(highLow, math.Max(highClose, lowClose))

		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDM[i-1] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i-1] = downMove
		}
	}

	smoothedTR := EMA(trueRange, period)
	smoothedPlusDM := EMA(plusDM, period)
	smoothedMinusDM := EMA(minusDM, period)

	dx := make([]float64, len(smoothedTR))
	for i := range smoothedTR {
		if smoothedTR[i] == 0 {
			continue
		}
		plusDI := smoothedPlusDM[i] / smoothedTR[i] * 100
		minusDI := smoothedMinusDM[i] / smoothedTR[i] * 100
		if plusDI+minusDI == 0 {
			continue
		}
		dx[i] = math.Abs(plusDI-minusDI) / (plusDI + minusDI) * 100
	}

	return EMA(dx, period)
}
