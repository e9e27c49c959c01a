package risk

import (
	"fmt"

	"gitlab.com/aoterocom/quantengine/helpers"
	"gitlab.com/aoterocom/quantengine/models"
)

// liquiditySaturationVolume is the daily quote volume that maps to a full
// liquidity score of 100.
const liquiditySaturationVolume = 10000000

// AnalyzePositionRisks classifies every holding of the account. Unknown
// assets get the provider's documented default lookups, so one missing
// symbol never aborts the report.
func (e *Engine) AnalyzePositionRisks(account *models.TradingAccount) ([]models.PositionRisk, error) {
	if account == nil {
		return nil, fmt.Errorf("error: nil account")
	}
	portfolioValue := account.PortfolioValue()
	if portfolioValue <= 0 {
		return nil, fmt.Errorf("error: account %s has no portfolio value", account.ID)
	}

	positions := make([]models.PositionRisk, 0, len(account.Assets))
	for _, asset := range account.Assets {
		position := models.PositionRisk{
			AssetID:             asset.CoinID,
			CurrentValue:        asset.Value,
			PortfolioPercentage: asset.Value / portfolioValue * 100,
			Volatility:          e.marketData.VolatilityOf(asset.CoinID),
			LiquidityScore:      liquidityScore(e.marketData.LiquidityOf(asset.CoinID)),
			CorrelationRisk:     e.maxCorrelationAgainst(asset.CoinID, account.Assets),
		}
		position.RiskRating = classifyPositionRisk(position.PortfolioPercentage, position.Volatility, position.CorrelationRisk)
		positions = append(positions, position)
	}
	return positions, nil
}

// classifyPositionRisk walks the tiers from extreme down; the first
// matching tier wins.
func classifyPositionRisk(portfolioPercentage float64, volatility float64, correlationRisk float64) models.RiskRating {
	switch {
	case portfolioPercentage > 40 || volatility > 80 || correlationRisk > 0.9:
		return models.RiskExtreme
	case portfolioPercentage > 25 || volatility > 60 || correlationRisk > 0.8:
		return models.RiskHigh
	case portfolioPercentage > 15 || volatility > 40 || correlationRisk > 0.6:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// maxCorrelationAgainst returns the highest correlation of the asset
// versus every other held asset, 0 for a lone holding.
func (e *Engine) maxCorrelationAgainst(coinID string, assets []models.PortfolioAsset) float64 {
	highest := 0.0
	for _, other := range assets {
		if other.CoinID == coinID {
			continue
		}
		if correlation := e.marketData.CorrelationBetween(coinID, other.CoinID); correlation > highest {
			highest = correlation
		}
	}
	return highest
}

func liquidityScore(dailyVolume float64) float64 {
	return helpers.Clamp(dailyVolume/liquiditySaturationVolume*100, 0, 100)
}
