package risk

import (
	"fmt"

	"gitlab.com/aoterocom/quantengine/models"
)

// GenerateRiskAlerts turns the metric and position outputs into
// human-readable alerts using fixed thresholds.
func (e *Engine) GenerateRiskAlerts(account *models.TradingAccount) ([]models.RiskAlert, error) {
	metrics, err := e.CalculateRiskMetrics(account)
	if err != nil {
		return nil, err
	}
	positions, err := e.AnalyzePositionRisks(account)
	if err != nil {
		return nil, err
	}

	parameters := e.parameters.Get(account.ID)
	alerts := []models.RiskAlert{}

	if metrics.CurrentDrawdown > 20 {
		alerts = append(alerts, models.RiskAlert{
			Type:    models.AlertCritical,
			Message: fmt.Sprintf("portfolio drawdown at %.2f%%", metrics.CurrentDrawdown),
			Action:  "Reduce exposure and review open positions",
		})
	}

	if metrics.RiskScore > 80 {
		alerts = append(alerts, models.RiskAlert{
			Type:    models.AlertCritical,
			Message: fmt.Sprintf("composite risk score at %.0f/100", metrics.RiskScore),
			Action:  "Pause new entries until the score recovers",
		})
	}

	if metrics.DiversificationRatio < 0.3 {
		alerts = append(alerts, models.RiskAlert{
			Type:    models.AlertWarning,
			Message: fmt.Sprintf("portfolio concentration high, diversification ratio %.2f", metrics.DiversificationRatio),
			Action:  "Spread holdings across more assets",
		})
	}

	for _, position := range positions {
		if position.RiskRating == models.RiskExtreme {
			alerts = append(alerts, models.RiskAlert{
				Type:    models.AlertCritical,
				Message: fmt.Sprintf("%s position rated extreme risk", position.AssetID),
				Action:  fmt.Sprintf("Reduce %s exposure immediately", position.AssetID),
			})
		}
		if position.PortfolioPercentage > parameters.MaxPositionSize {
			alerts = append(alerts, models.RiskAlert{
				Type:    models.AlertWarning,
				Message: fmt.Sprintf("%s position at %.2f%% of portfolio, limit is %.2f%%", position.AssetID, position.PortfolioPercentage, parameters.MaxPositionSize),
				Action:  fmt.Sprintf("Trim %s back under the position limit", position.AssetID),
			})
		}
	}

	return alerts, nil
}
