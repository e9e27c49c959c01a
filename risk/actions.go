package risk

import (
	"fmt"
	"math"

	"gitlab.com/aoterocom/quantengine/helpers"
	"gitlab.com/aoterocom/quantengine/models"
)

// reducePositionTargetPct caps how large a position may stay after an
// automated reduction, even when the account allows bigger positions.
const reducePositionTargetPct = 15

// ExecuteAutomatedRiskManagement proposes mitigation actions: position
// reductions for extreme or oversized holdings and stop-losses for assets
// in free fall while the portfolio is in drawdown. It only proposes;
// execution stays with the caller.
func (e *Engine) ExecuteAutomatedRiskManagement(account *models.TradingAccount) ([]models.RiskAction, error) {
	metrics, err := e.CalculateRiskMetrics(account)
	if err != nil {
		return nil, err
	}
	positions, err := e.AnalyzePositionRisks(account)
	if err != nil {
		return nil, err
	}

	parameters := e.parameters.Get(account.ID)
	portfolioValue := account.PortfolioValue()
	actions := []models.RiskAction{}

	for _, position := range positions {
		oversized := position.PortfolioPercentage > 1.5*parameters.MaxPositionSize
		if position.RiskRating != models.RiskExtreme && !oversized {
			continue
		}

		targetPct := math.Min(parameters.MaxPositionSize, reducePositionTargetPct)
		targetValue := portfolioValue * targetPct / 100
		if position.CurrentValue <= targetValue {
			continue
		}

		reduceValue := position.CurrentValue - targetValue
		asset := account.Asset(position.AssetID)
		amount := 0.0
		if asset != nil && asset.Price > 0 {
			amount = reduceValue / asset.Price
		}
		actions = append(actions, models.RiskAction{
			Type:   models.ActionReducePosition,
			CoinID: position.AssetID,
			Amount: amount,
			Value:  reduceValue,
			Reason: fmt.Sprintf("position at %.2f%% of portfolio, reducing to %.0f%%", position.PortfolioPercentage, targetPct),
		})
		helpers.Logger.Debugln(fmt.Sprintf("→ proposing reduce_position for %s: shed %.2f", position.AssetID, reduceValue))
	}

	if metrics.CurrentDrawdown > 15 {
		for _, asset := range account.Assets {
			if asset.Change24h >= -parameters.StopLossPercentage {
				continue
			}
			stopValue := asset.Value * 0.5
			amount := 0.0
			if asset.Price > 0 {
				amount = stopValue / asset.Price
			}
			actions = append(actions, models.RiskAction{
				Type:   models.ActionStopLoss,
				CoinID: asset.CoinID,
				Amount: amount,
				Value:  stopValue,
				Reason: fmt.Sprintf("24h change %.2f%% beyond stop loss %.2f%% during %.2f%% drawdown", asset.Change24h, parameters.StopLossPercentage, metrics.CurrentDrawdown),
			})
			helpers.Logger.Debugln(fmt.Sprintf("→ proposing stop_loss for %s: shed %.2f", asset.CoinID, stopValue))
		}
	}

	return actions, nil
}
