package risk

import (
	"gitlab.com/aoterocom/quantengine/interfaces"
	"gitlab.com/aoterocom/quantengine/models"
)

// Engine derives decision-support data from account snapshots: trade
// validation verdicts, portfolio risk metrics, per-position ratings,
// alerts and proposed mitigation actions. It performs no I/O and mutates
// nothing but its parameter store.
type Engine struct {
	parameters *ParameterStore
	marketData interfaces.MarketDataProvider
}

func NewEngine(parameters *ParameterStore, marketData interfaces.MarketDataProvider) *Engine {
	return &Engine{
		parameters: parameters,
		marketData: marketData,
	}
}

func (e *Engine) SetRiskParameters(accountID string, update models.RiskParametersUpdate) models.RiskParameters {
	return e.parameters.Set(accountID, update)
}

func (e *Engine) GetRiskParameters(accountID string) models.RiskParameters {
	return e.parameters.Get(accountID)
}
