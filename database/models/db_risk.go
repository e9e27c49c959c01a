package database

import "gorm.io/gorm"

// RiskParameters is the persisted copy of an account's configured limits
type RiskParameters struct {
	gorm.Model
	AccountID            string `gorm:"uniqueIndex"`
	MaxPositionSize      float64
	MaxDailyLoss         float64
	StopLossPercentage   float64
	TakeProfitPercentage float64
	MaxCorrelation       float64
	VolatilityThreshold  float64
	LiquidityThreshold   float64
}

// RiskAlert is one emitted alert, kept as an audit trail
type RiskAlert struct {
	gorm.Model
	AccountID string `gorm:"index"`
	Type      string
	Message   string
	Action    string
}

// RiskAction is one proposed mitigation action, kept as an audit trail
type RiskAction struct {
	gorm.Model
	AccountID string `gorm:"index"`
	Type      string
	CoinID    string
	Amount    float64
	Value     float64
	Reason    string
}
