package models

import "time"

type TradeSide string

const (
	BUY  TradeSide = "buy"
	SELL TradeSide = "sell"
)

type Trade struct {
	ID         string    `json:"id"`
	CoinID     string    `json:"coinId"`
	Side       TradeSide `json:"side"`
	Amount     float64   `json:"amount"`
	Price      float64   `json:"price"`
	TotalValue float64   `json:"totalValue"`
	Timestamp  time.Time `json:"timestamp"`
}

// PortfolioAsset is a single holding as supplied by the caller. The engine
// treats it as read-only; Value is expected to be Amount*Price.
type PortfolioAsset struct {
	CoinID     string  `json:"coinId"`
	Amount     float64 `json:"amount"`
	Price      float64 `json:"price"`
	Value      float64 `json:"value"`
	Allocation float64 `json:"allocation"`
	Change24h  float64 `json:"change24h"`
}

type TradingAccount struct {
	ID             string           `json:"id"`
	Balance        float64          `json:"balance"`
	InitialBalance float64          `json:"initialBalance"`
	Assets         []PortfolioAsset `json:"assets"`
	Trades         []Trade          `json:"trades"`
}

// PortfolioValue returns the cash balance plus the value of every holding
func (account *TradingAccount) PortfolioValue() float64 {
	total := account.Balance
	for _, asset := range account.Assets {
		total += asset.Value
	}
	return total
}

// Asset returns the held asset for the given coin, or nil if not held
func (account *TradingAccount) Asset(coinID string) *PortfolioAsset {
	for i := range account.Assets {
		if account.Assets[i].CoinID == coinID {
			return &account.Assets[i]
		}
	}
	return nil
}
