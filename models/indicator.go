package models

import "time"

type SignalType string

const (
	SignalBuy  SignalType = "BUY"
	SignalSell SignalType = "SELL"
	SignalHold SignalType = "HOLD"
)

// IndicatorResult is the latest reading of one indicator plus its derived
// signal. Value carries the primary line; Values carries the full tuple for
// multi-line indicators (MACD line/signal/histogram, Bollinger bands).
type IndicatorResult struct {
	Name      string     `json:"name"`
	Value     float64    `json:"value"`
	Values    []float64  `json:"values,omitempty"`
	Signal    SignalType `json:"signal"`
	Timestamp time.Time  `json:"timestamp"`
}
