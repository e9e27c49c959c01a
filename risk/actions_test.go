package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/quantengine/models"
)

func TestAutomatedRiskManagementReducesExtremePosition(t *testing.T) {
	engine, provider := newTestEngine()
	provider.volatility["SOL"] = 30

	// 45% of a 10000 portfolio: extreme by percentage
	account := accountWithAssets(5500, asset("SOL", 4500))

	actions, err := engine.ExecuteAutomatedRiskManagement(account)
	assert.Nil(t, err)
	assert.Len(t, actions, 1)

	action := actions[0]
	assert.Equal(t, models.ActionReducePosition, action.Type)
	assert.Equal(t, "SOL", action.CoinID)
	// target is min(maxPositionSize, 15)% → 1500, so shed 3000
	assert.InDelta(t, 3000.0, action.Value, 1e-9)
	assert.InDelta(t, 30.0, action.Amount, 1e-9)
}

func TestAutomatedRiskManagementReducesOversizedPosition(t *testing.T) {
	engine, _ := newTestEngine()

	maxPositionSize := 20.0
	engine.SetRiskParameters("acc-1", models.RiskParametersUpdate{MaxPositionSize: &maxPositionSize})

	// 35% is not extreme (≤40) but exceeds 1.5×20% = 30%
	account := accountWithAssets(6500, asset("BTC", 3500))

	actions, err := engine.ExecuteAutomatedRiskManagement(account)
	assert.Nil(t, err)
	assert.Len(t, actions, 1)
	assert.Equal(t, models.ActionReducePosition, actions[0].Type)
	// reduce from 3500 down to 15% of 10000
	assert.InDelta(t, 2000.0, actions[0].Value, 1e-9)
}

func TestAutomatedRiskManagementStopLossInDrawdown(t *testing.T) {
	engine, _ := newTestEngine()

	falling := asset("ETH", 1000)
	falling.Change24h = -12
	steady := asset("BTC", 1000)
	steady.Change24h = -3

	account := accountWithAssets(8000, falling, steady)
	account.InitialBalance = 20000 // 50% drawdown

	actions, err := engine.ExecuteAutomatedRiskManagement(account)
	assert.Nil(t, err)
	assert.Len(t, actions, 1)

	action := actions[0]
	assert.Equal(t, models.ActionStopLoss, action.Type)
	assert.Equal(t, "ETH", action.CoinID)
	assert.InDelta(t, 500.0, action.Value, 1e-9)
}

func TestAutomatedRiskManagementNoDrawdownNoStopLoss(t *testing.T) {
	engine, _ := newTestEngine()

	falling := asset("ETH", 1000)
	falling.Change24h = -12

	account := accountWithAssets(9000, falling)

	actions, err := engine.ExecuteAutomatedRiskManagement(account)
	assert.Nil(t, err)
	assert.Empty(t, actions)
}

func TestAutomatedRiskManagementProposesOnly(t *testing.T) {
	engine, _ := newTestEngine()

	account := accountWithAssets(5500, asset("SOL", 4500))
	before := *account

	_, err := engine.ExecuteAutomatedRiskManagement(account)
	assert.Nil(t, err)
	assert.Equal(t, before.Balance, account.Balance)
	assert.Equal(t, before.Assets, account.Assets)
}
