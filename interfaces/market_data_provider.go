package interfaces

// MarketDataProvider supplies the per-asset market statistics the risk
// engine needs. Implementations must fall back to documented defaults for
// unknown assets instead of failing: a single missing lookup must not
// abort a portfolio-wide report.
type MarketDataProvider interface {
	// VolatilityOf returns the annualized volatility in percent points
	VolatilityOf(coinID string) float64
	// BetaOf returns the sensitivity versus the market benchmark
	BetaOf(coinID string) float64
	// CorrelationBetween returns the return correlation in [-1, 1]
	CorrelationBetween(coinA string, coinB string) float64
	// LiquidityOf returns the daily traded volume in quote currency
	LiquidityOf(coinID string) float64
}
