package indicators

import (
	"fmt"
	"time"

	"gitlab.com/aoterocom/quantengine/models"
)

const (
	rsiPeriod        = 14
	rsiOversold      = 30
	rsiOverbought    = 70
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
	bollingerPeriod  = 20
	bollingerStdDev  = 2.0
)

// GenerateSignals is the engine boundary: it validates the input series
// and classifies the latest RSI, MACD and Bollinger readings into
// BUY/SELL/HOLD. It is a plain rule table; MACD deliberately has no HOLD
// state and no result carries a confidence weight.
func GenerateSignals(prices []float64, highs []float64, lows []float64, closes []float64) ([]models.IndicatorResult, error) {
	n := len(prices)
	required := macdSlowPeriod + macdSignalPeriod - 1
	if n < required {
		return nil, fmt.Errorf("error: need at least %d prices to generate signals, got %d", required, n)
	}
	if len(highs) != n || len(lows) != n || len(closes) != n {
		return nil, fmt.Errorf("error: highs/lows/closes must match prices length %d", n)
	}

	now := time.Now()
	results := make([]models.IndicatorResult, 0, 3)

	rsi := RSI(prices, rsiPeriod)
	lastRSI := rsi[len(rsi)-1]
	rsiSignal := models.SignalHold
	if lastRSI < rsiOversold {
		rsiSignal = models.SignalBuy
	} else if lastRSI > rsiOverbought {
		rsiSignal = models.SignalSell
	}
	results = append(results, models.IndicatorResult{
		Name:      "RSI",
		Value:     lastRSI,
		Signal:    rsiSignal,
		Timestamp: now,
	})

	macd := MACD(prices, macdFastPeriod, macdSlowPeriod, macdSignalPeriod)
	lastLine := macd.Line[len(macd.Line)-1]
	lastSignalLine := macd.SignalLine[len(macd.SignalLine)-1]
	lastHistogram := macd.Histogram[len(macd.Histogram)-1]
	macdSignal := models.SignalSell
	if lastLine > lastSignalLine {
		macdSignal = models.SignalBuy
	}
	results = append(results, models.IndicatorResult{
		Name:      "MACD",
		Value:     lastLine,
		Values:    []float64{lastLine, lastSignalLine, lastHistogram},
		Signal:    macdSignal,
		Timestamp: now,
	})

	bands := BollingerBands(prices, bollingerPeriod, bollingerStdDev)
	lastUpper := bands.Upper[len(bands.Upper)-1]
	lastMiddle := bands.Middle[len(bands.Middle)-1]
	lastLower := bands.Lower[len(bands.Lower)-1]
	lastClose := closes[n-1]
	bollingerSignal := models.SignalHold
	if lastClose <= lastLower {
		bollingerSignal = models.SignalBuy
	} else if lastClose >= lastUpper {
		bollingerSignal = models.SignalSell
	}
	results = append(results, models.IndicatorResult{
		Name:      "Bollinger",
		Value:     lastMiddle,
		Values:    []float64{lastUpper, lastMiddle, lastLower},
		Signal:    bollingerSignal,
		Timestamp: now,
	})

	return results, nil
}
