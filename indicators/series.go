package indicators

import "github.com/sdcoffey/techan"

// SeriesFromTimeSeries flattens a candle series into the parallel
// high/low/close slices the indicator functions operate on.
func SeriesFromTimeSeries(timeSeries *techan.TimeSeries) (highs []float64, lows []float64, closes []float64) {
	if timeSeries == nil {
		return nil, nil, nil
	}

	highs = make([]float64, 0, len(timeSeries.Candles))
	lows = make([]float64, 0, len(timeSeries.Candles))
	closes = make([]float64, 0, len(timeSeries.Candles))
	for _, candle := range timeSeries.Candles {
		highs = append(highs, candle.MaxPrice.Float())
		lows = append(lows, candle.MinPrice.Float())
		closes = append(closes, candle.ClosePrice.Float())
	}
	return highs, lows, closes
}
