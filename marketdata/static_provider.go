package marketdata

// StaticProvider serves the hardcoded per-asset statistics used until a
// real market-data feed is wired in. The tables are mock stand-ins, not
// computed facts; unknown assets get the documented defaults.
type StaticProvider struct{}

const (
	DefaultVolatility  = 60
	DefaultBeta        = 1.0
	DefaultCorrelation = 0.5
	DefaultLiquidity   = 500000
)

var volatilityTable = map[string]float64{
	"BTC":   45,
	"ETH":   55,
	"BNB":   50,
	"XRP":   62,
	"ADA":   65,
	"SOL":   75,
	"DOT":   70,
	"MATIC": 72,
}

var betaTable = map[string]float64{
	"BTC":   1.0,
	"ETH":   1.2,
	"BNB":   1.1,
	"XRP":   1.15,
	"ADA":   1.3,
	"SOL":   1.6,
	"DOT":   1.4,
	"MATIC": 1.5,
}

// daily quote volume in USD
var liquidityTable = map[string]float64{
	"BTC":   25000000000,
	"ETH":   12000000000,
	"BNB":   1800000000,
	"XRP":   2400000000,
	"ADA":   900000000,
	"SOL":   2100000000,
	"DOT":   450000000,
	"MATIC": 600000000,
}

var correlationTable = map[string]map[string]float64{
	"BTC":   {"ETH": 0.85, "BNB": 0.78, "XRP": 0.7, "ADA": 0.72, "SOL": 0.75, "DOT": 0.74, "MATIC": 0.71},
	"ETH":   {"BNB": 0.8, "XRP": 0.68, "ADA": 0.76, "SOL": 0.82, "DOT": 0.79, "MATIC": 0.81},
	"BNB":   {"XRP": 0.65, "ADA": 0.69, "SOL": 0.71, "DOT": 0.7, "MATIC": 0.68},
	"XRP":   {"ADA": 0.66, "SOL": 0.63, "DOT": 0.64, "MATIC": 0.62},
	"ADA":   {"SOL": 0.73, "DOT": 0.75, "MATIC": 0.7},
	"SOL":   {"DOT": 0.72, "MATIC": 0.74},
	"DOT":   {"MATIC": 0.69},
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (sp *StaticProvider) VolatilityOf(coinID string) float64 {
	if volatility, ok := volatilityTable[coinID]; ok {
		return volatility
	}
	return DefaultVolatility
}

func (sp *StaticProvider) BetaOf(coinID string) float64 {
	if beta, ok := betaTable[coinID]; ok {
		return beta
	}
	return DefaultBeta
}

func (sp *StaticProvider) CorrelationBetween(coinA string, coinB string) float64 {
	if coinA == coinB {
		return 1
	}
	if row, ok := correlationTable[coinA]; ok {
		if correlation, ok := row[coinB]; ok {
			return correlation
		}
	}
	if row, ok := correlationTable[coinB]; ok {
		if correlation, ok := row[coinA]; ok {
			return correlation
		}
	}
	return DefaultCorrelation
}

func (sp *StaticProvider) LiquidityOf(coinID string) float64 {
	if liquidity, ok := liquidityTable[coinID]; ok {
		return liquidity
	}
	return DefaultLiquidity
}
