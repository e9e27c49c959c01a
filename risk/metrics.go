package risk

import (
	"fmt"
	"math"
	"sort"

	"gitlab.com/aoterocom/quantengine/helpers"
	"gitlab.com/aoterocom/quantengine/models"
)

const (
	// 95% one-tailed Gaussian z-score, 1-day horizon
	varConfidenceZScore = 1.65
	annualRiskFreeRate  = 0.05

	// placeholderMaxDrawdownFloor stands in for a tracked peak-to-trough
	// history, which a snapshot cannot provide. It must go once realized
	// equity history becomes an input.
	placeholderMaxDrawdownFloor = 15
)

// CalculateRiskMetrics recomputes the portfolio risk metrics from scratch
// on every call; nothing is persisted.
func (e *Engine) CalculateRiskMetrics(account *models.TradingAccount) (models.RiskMetrics, error) {
	if account == nil {
		return models.RiskMetrics{}, fmt.Errorf("error: nil account")
	}
	portfolioValue := account.PortfolioValue()
	if portfolioValue <= 0 {
		return models.RiskMetrics{}, fmt.Errorf("error: account %s has no portfolio value", account.ID)
	}

	metrics := models.RiskMetrics{}

	// Diagonal VaR: cross-asset correlation is deliberately ignored, so
	// this overstates the benefit of holding many volatile assets at
	// once. Provider volatilities are percent points, hence the /100.
	portfolioVariance := 0.0
	beta := 0.0
	for _, asset := range account.Assets {
		weight := asset.Value / portfolioValue
		volatility := e.marketData.VolatilityOf(asset.CoinID) / 100
		portfolioVariance += weight * weight * volatility * volatility
		beta += weight * e.marketData.BetaOf(asset.CoinID)
	}
	portfolioVolatility := math.Sqrt(portfolioVariance)
	metrics.PortfolioVaR = portfolioValue * portfolioVolatility * varConfidenceZScore
	metrics.Beta = beta

	metrics.SharpeRatio = sharpeRatio(account)

	initialBalance := account.InitialBalance
	if initialBalance <= 0 {
		initialBalance = portfolioValue
	}
	metrics.CurrentDrawdown = math.Max(0, (1-portfolioValue/initialBalance)*100)
	metrics.MaxDrawdown = math.Max(metrics.CurrentDrawdown, placeholderMaxDrawdownFloor)

	metrics.DiversificationRatio = diversificationRatio(account.Assets)

	score := 50.0
	if metrics.MaxDrawdown > 20 {
		score += 20
	}
	if metrics.SharpeRatio < 0.5 {
		score += 15
	}
	if metrics.DiversificationRatio < 0.3 {
		score += 15
	}
	if metrics.Beta > 1.5 {
		score += 10
	}
	metrics.RiskScore = helpers.Clamp(score, 0, 100)

	return metrics, nil
}

// sharpeRatio derives daily returns from the realized P&L of the trade
// history, the only return series an account snapshot carries. Fewer than
// two trading days or zero volatility read as 0.
func sharpeRatio(account *models.TradingAccount) float64 {
	initialBalance := account.InitialBalance
	if initialBalance <= 0 {
		initialBalance = account.PortfolioValue()
	}
	if initialBalance <= 0 {
		return 0
	}

	pnlByDay := make(map[string]float64)
	for _, trade := range account.Trades {
		day := trade.Timestamp.Format("2006-01-02")
		if trade.Side == models.SELL {
			pnlByDay[day] += trade.TotalValue
		} else {
			pnlByDay[day] -= trade.TotalValue
		}
	}
	if len(pnlByDay) < 2 {
		return 0
	}

	days := make([]string, 0, len(pnlByDay))
	for day := range pnlByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	returns := make([]float64, 0, len(days))
	for _, day := range days {
		returns = append(returns, pnlByDay[day]/initialBalance)
	}

	mean := helpers.Mean(returns)
	stdDev := helpers.StdDev(returns, mean)
	if stdDev == 0 {
		return 0
	}
	dailyRiskFreeRate := annualRiskFreeRate / 365
	return (mean - dailyRiskFreeRate) / stdDev
}

// diversificationRatio is one minus the Herfindahl concentration of the
// asset weights (cash excluded). A single holding reads as 0.
func diversificationRatio(assets []models.PortfolioAsset) float64 {
	if len(assets) <= 1 {
		return 0
	}
	totalValue := 0.0
	for _, asset := range assets {
		totalValue += asset.Value
	}
	if totalValue <= 0 {
		return 0
	}
	concentration := 0.0
	for _, asset := range assets {
		weight := asset.Value / totalValue
		concentration += weight * weight
	}
	return 1 - concentration
}
