package indicators

// MACDSeries carries the three MACD lines. Histogram is aligned to
// SignalLine; Line is aligned to the slow EMA.
type MACDSeries struct {
	Line       []float64
	SignalLine []float64
	Histogram  []float64
}

// MACD subtracts the slow EMA from the fast EMA, aligned on the shorter
// tail, then smooths the line into the signal line and derives the
// histogram as their difference.
func MACD(prices []float64, fastPeriod int, slowPeriod int, signalPeriod int) MACDSeries {
	fast := EMA(prices, fastPeriod)
	slow := EMA(prices, slowPeriod)
	if len(slow) == 0 || len(fast) < len(slow) {
		return MACDSeries{}
	}

	offset := len(fast) - len(slow)
	line := make([]float64, len(slow))
	for i := range slow {
		line[i] = fast[i+offset] - slow[i]
	}

	signalLine := EMA(line, signalPeriod)
	histogram := make([]float64, len(signalLine))
	histogramOffset := len(line) - len(signalLine)
	for i := range signalLine {
		histogram[i] = line[i+histogramOffset] - signalLine[i]
	}

	return MACDSeries{
		Line:       line,
		SignalLine: signalLine,
		Histogram:  histogram,
	}
}
