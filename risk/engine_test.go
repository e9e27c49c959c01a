package risk

import (
	"time"

	"gitlab.com/aoterocom/quantengine/models"
)

// stubProvider returns fixed lookups so the engine tests stay
// deterministic. Missing entries fall back like a real provider would.
type stubProvider struct {
	volatility   map[string]float64
	beta         map[string]float64
	correlation  map[string]float64
	liquidity    map[string]float64
	defaultVol   float64
	defaultBeta  float64
	defaultCorr  float64
	defaultLiqui float64
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		volatility:   map[string]float64{},
		beta:         map[string]float64{},
		correlation:  map[string]float64{},
		liquidity:    map[string]float64{},
		defaultVol:   30,
		defaultBeta:  1.0,
		defaultCorr:  0.4,
		defaultLiqui: 50000000,
	}
}

func (sp *stubProvider) VolatilityOf(coinID string) float64 {
	if volatility, ok := sp.volatility[coinID]; ok {
		return volatility
	}
	return sp.defaultVol
}

func (sp *stubProvider) BetaOf(coinID string) float64 {
	if beta, ok := sp.beta[coinID]; ok {
		return beta
	}
	return sp.defaultBeta
}

func (sp *stubProvider) CorrelationBetween(coinA string, coinB string) float64 {
	if correlation, ok := sp.correlation[coinA+"/"+coinB]; ok {
		return correlation
	}
	if correlation, ok := sp.correlation[coinB+"/"+coinA]; ok {
		return correlation
	}
	return sp.defaultCorr
}

func (sp *stubProvider) LiquidityOf(coinID string) float64 {
	if liquidity, ok := sp.liquidity[coinID]; ok {
		return liquidity
	}
	return sp.defaultLiqui
}

func newTestEngine() (*Engine, *stubProvider) {
	provider := newStubProvider()
	return NewEngine(NewParameterStore(), provider), provider
}

func accountWithAssets(balance float64, assets ...models.PortfolioAsset) *models.TradingAccount {
	return &models.TradingAccount{
		ID:      "acc-1",
		Balance: balance,
		Assets:  assets,
	}
}

func asset(coinID string, value float64) models.PortfolioAsset {
	return models.PortfolioAsset{
		CoinID: coinID,
		Amount: value / 100,
		Price:  100,
		Value:  value,
	}
}

func tradeAt(side models.TradeSide, totalValue float64, timestamp time.Time) models.Trade {
	return models.Trade{
		CoinID:     "BTC",
		Side:       side,
		Amount:     totalValue / 100,
		Price:      100,
		TotalValue: totalValue,
		Timestamp:  timestamp,
	}
}
