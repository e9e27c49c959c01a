package models

// RiskParameters are the per-account trading limits. Percentages are
// expressed in percent points (20 means 20%), currency values in the
// account's quote currency.
type RiskParameters struct {
	MaxPositionSize      float64 `json:"maxPositionSize"`
	MaxDailyLoss         float64 `json:"maxDailyLoss"`
	StopLossPercentage   float64 `json:"stopLossPercentage"`
	TakeProfitPercentage float64 `json:"takeProfitPercentage"`
	MaxCorrelation       float64 `json:"maxCorrelation"`
	VolatilityThreshold  float64 `json:"volatilityThreshold"`
	LiquidityThreshold   float64 `json:"liquidityThreshold"`
}

// RiskParametersUpdate is a partial update: nil fields keep their current
// value on merge.
type RiskParametersUpdate struct {
	MaxPositionSize      *float64 `json:"maxPositionSize,omitempty"`
	MaxDailyLoss         *float64 `json:"maxDailyLoss,omitempty"`
	StopLossPercentage   *float64 `json:"stopLossPercentage,omitempty"`
	TakeProfitPercentage *float64 `json:"takeProfitPercentage,omitempty"`
	MaxCorrelation       *float64 `json:"maxCorrelation,omitempty"`
	VolatilityThreshold  *float64 `json:"volatilityThreshold,omitempty"`
	LiquidityThreshold   *float64 `json:"liquidityThreshold,omitempty"`
}

type RiskMetrics struct {
	PortfolioVaR         float64 `json:"portfolioVaR"`
	SharpeRatio          float64 `json:"sharpeRatio"`
	MaxDrawdown          float64 `json:"maxDrawdown"`
	CurrentDrawdown      float64 `json:"currentDrawdown"`
	Beta                 float64 `json:"beta"`
	DiversificationRatio float64 `json:"diversificationRatio"`
	RiskScore            float64 `json:"riskScore"`
}

type RiskRating string

const (
	RiskLow     RiskRating = "low"
	RiskMedium  RiskRating = "medium"
	RiskHigh    RiskRating = "high"
	RiskExtreme RiskRating = "extreme"
)

type PositionRisk struct {
	AssetID             string     `json:"assetId"`
	CurrentValue        float64    `json:"currentValue"`
	PortfolioPercentage float64    `json:"portfolioPercentage"`
	Volatility          float64    `json:"volatility"`
	LiquidityScore      float64    `json:"liquidityScore"`
	CorrelationRisk     float64    `json:"correlationRisk"`
	RiskRating          RiskRating `json:"riskRating"`
}

type AlertType string

const (
	AlertWarning  AlertType = "warning"
	AlertCritical AlertType = "critical"
)

type RiskAlert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
	Action  string    `json:"action"`
}

type ActionType string

const (
	ActionReducePosition ActionType = "reduce_position"
	ActionStopLoss       ActionType = "stop_loss"
)

// RiskAction is a proposed mitigation. The engine never executes it:
// Amount is the asset quantity to sell, Value the currency to shed.
type RiskAction struct {
	Type   ActionType `json:"type"`
	CoinID string     `json:"coinId"`
	Amount float64    `json:"amount"`
	Value  float64    `json:"value"`
	Reason string     `json:"reason"`
}

type TradeValidation struct {
	Allowed        bool     `json:"allowed"`
	Reasons        []string `json:"reasons"`
	AdjustedAmount float64  `json:"adjustedAmount,omitempty"`
}
