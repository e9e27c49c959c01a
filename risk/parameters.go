package risk

import (
	"sync"

	"gitlab.com/aoterocom/quantengine/models"
)

// DefaultRiskParameters returns the engine defaults applied to any account
// without configured limits.
func DefaultRiskParameters() models.RiskParameters {
	return models.RiskParameters{
		MaxPositionSize:      20,
		MaxDailyLoss:         1000,
		StopLossPercentage:   10,
		TakeProfitPercentage: 25,
		MaxCorrelation:       0.8,
		VolatilityThreshold:  50,
		LiquidityThreshold:   1000000,
	}
}

// ParameterStore holds the per-account risk parameters, the only mutable
// state in the engine. Reads always see a whole consistent parameter set.
type ParameterStore struct {
	parameters map[string]models.RiskParameters
	mu         sync.RWMutex
}

func NewParameterStore() *ParameterStore {
	return &ParameterStore{
		parameters: make(map[string]models.RiskParameters),
	}
}

// Get returns the stored parameters for the account, or the defaults if
// none were ever set.
func (ps *ParameterStore) Get(accountID string) models.RiskParameters {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	if parameters, ok := ps.parameters[accountID]; ok {
		return parameters
	}
	return DefaultRiskParameters()
}

// Set merges the non-nil fields of the update into the account's current
// parameters (defaults on first call) and returns the merged set. Entries
// are never auto-deleted.
func (ps *ParameterStore) Set(accountID string, update models.RiskParametersUpdate) models.RiskParameters {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	parameters, ok := ps.parameters[accountID]
	if !ok {
		parameters = DefaultRiskParameters()
	}

	if update.MaxPositionSize != nil {
		parameters.MaxPositionSize = *update.MaxPositionSize
	}
	if update.MaxDailyLoss != nil {
		parameters.MaxDailyLoss = *update.MaxDailyLoss
	}
	if update.StopLossPercentage != nil {
		parameters.StopLossPercentage = *update.StopLossPercentage
	}
	if update.TakeProfitPercentage != nil {
		parameters.TakeProfitPercentage = *update.TakeProfitPercentage
	}
	if update.MaxCorrelation != nil {
		parameters.MaxCorrelation = *update.MaxCorrelation
	}
	if update.VolatilityThreshold != nil {
		parameters.VolatilityThreshold = *update.VolatilityThreshold
	}
	if update.LiquidityThreshold != nil {
		parameters.LiquidityThreshold = *update.LiquidityThreshold
	}

	ps.parameters[accountID] = parameters
	return parameters
}
