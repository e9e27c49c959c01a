package risk

import (
	"fmt"
	"time"

	"gitlab.com/aoterocom/quantengine/models"
)

// ValidateTrade checks a proposed trade against the account's configured
// limits. Rules 1-3 (position size, daily loss, combined post-trade
// position) are hard: any failure blocks the trade. The liquidity check is
// advisory only and never blocks. All violated rules contribute reasons.
func (e *Engine) ValidateTrade(accountID string, trade models.Trade, account *models.TradingAccount, currentPrice float64) (models.TradeValidation, error) {
	if account == nil {
		return models.TradeValidation{}, fmt.Errorf("error: nil account")
	}
	if trade.Amount <= 0 {
		return models.TradeValidation{}, fmt.Errorf("error: trade amount must be positive, got %f", trade.Amount)
	}
	if currentPrice <= 0 {
		return models.TradeValidation{}, fmt.Errorf("error: current price must be positive, got %f", currentPrice)
	}
	portfolioValue := account.PortfolioValue()
	if portfolioValue <= 0 {
		return models.TradeValidation{}, fmt.Errorf("error: account %s has no portfolio value", account.ID)
	}

	parameters := e.parameters.Get(accountID)
	validation := models.TradeValidation{Allowed: true, Reasons: []string{}}

	tradeValue := trade.Amount * currentPrice
	positionPct := tradeValue / portfolioValue * 100
	if positionPct > parameters.MaxPositionSize {
		validation.Allowed = false
		validation.AdjustedAmount = portfolioValue * parameters.MaxPositionSize / 100 / currentPrice
		validation.Reasons = append(validation.Reasons,
			fmt.Sprintf("position size %.2f%% exceeds maximum %.2f%%", positionPct, parameters.MaxPositionSize))
	}

	dailyPnL := realizedPnLForDay(account.Trades, time.Now())
	if dailyPnL < -parameters.MaxDailyLoss {
		validation.Allowed = false
		validation.Reasons = append(validation.Reasons,
			fmt.Sprintf("daily loss %.2f exceeds maximum %.2f", -dailyPnL, parameters.MaxDailyLoss))
	}

	if trade.Side == models.BUY {
		if asset := account.Asset(trade.CoinID); asset != nil {
			combinedPct := (asset.Value + tradeValue) / portfolioValue * 100
			if combinedPct > parameters.MaxPositionSize {
				validation.Allowed = false
				validation.Reasons = append(validation.Reasons,
					fmt.Sprintf("combined %s position %.2f%% would exceed maximum %.2f%%",
						trade.CoinID, combinedPct, parameters.MaxPositionSize))
			}
		}
	}

	if liquidity := e.marketData.LiquidityOf(trade.CoinID); liquidity < parameters.LiquidityThreshold {
		validation.Reasons = append(validation.Reasons,
			fmt.Sprintf("warning: %s daily volume %.0f below liquidity threshold %.0f",
				trade.CoinID, liquidity, parameters.LiquidityThreshold))
	}

	return validation, nil
}

// realizedPnLForDay sums the trades stamped on the given calendar day:
// sells add their total value, buys subtract it.
func realizedPnLForDay(trades []models.Trade, day time.Time) float64 {
	year, month, date := day.Date()
	pnl := 0.0
	for _, trade := range trades {
		tradeYear, tradeMonth, tradeDate := trade.Timestamp.Date()
		if tradeYear != year || tradeMonth != month || tradeDate != date {
			continue
		}
		if trade.Side == models.SELL {
			pnl += trade.TotalValue
		} else {
			pnl -= trade.TotalValue
		}
	}
	return pnl
}
