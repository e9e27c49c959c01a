package marketdata

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/joho/godotenv"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// BinanceProvider replaces the static volatility and liquidity lookups
// with live 24h ticker data. Beta and cross-asset correlation cannot be
// derived from a single ticker, so those delegate to the static tables.
type BinanceProvider struct {
	binanceClient *binance.Client
	static        *StaticProvider
	quoteAsset    string
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

func NewBinanceProvider() *BinanceProvider {
	apiKey := os.Getenv("binanceAPIKey")
	apiSecret := os.Getenv("binanceAPISecret")
	quoteAsset := os.Getenv("quoteAsset")
	if quoteAsset == "" {
		quoteAsset = "USDT"
	}
	return &BinanceProvider{
		binanceClient: binance.NewClient(apiKey, apiSecret),
		static:        NewStaticProvider(),
		quoteAsset:    quoteAsset,
	}
}

// VolatilityOf annualizes the absolute 24h move. Crude, but it is live
// data in the same percent-point scale as the static table.
func (bp *BinanceProvider) VolatilityOf(coinID string) float64 {
	stats, err := bp.priceChangeStats(coinID)
	if err != nil {
		return bp.static.VolatilityOf(coinID)
	}
	changePct, err := strconv.ParseFloat(stats.PriceChangePercent, 64)
	if err != nil {
		return bp.static.VolatilityOf(coinID)
	}
	return math.Abs(changePct) * math.Sqrt(365)
}

func (bp *BinanceProvider) BetaOf(coinID string) float64 {
	return bp.static.BetaOf(coinID)
}

func (bp *BinanceProvider) CorrelationBetween(coinA string, coinB string) float64 {
	return bp.static.CorrelationBetween(coinA, coinB)
}

func (bp *BinanceProvider) LiquidityOf(coinID string) float64 {
	stats, err := bp.priceChangeStats(coinID)
	if err != nil {
		return bp.static.LiquidityOf(coinID)
	}
	quoteVolume, err := strconv.ParseFloat(stats.QuoteVolume, 64)
	if err != nil {
		return bp.static.LiquidityOf(coinID)
	}
	return quoteVolume
}

func (bp *BinanceProvider) priceChangeStats(coinID string) (*binance.PriceChangeStats, error) {
	pair := strings.ToUpper(coinID) + bp.quoteAsset
	statsList, err := bp.binanceClient.NewListPriceChangeStatsService().Symbol(pair).Do(context.Background())
	if err != nil {
		return nil, err
	}
	if len(statsList) == 0 {
		return nil, fmt.Errorf("error: no 24h stats for pair %s", pair)
	}
	return statsList[0], nil
}

// GetSeries fetches up to limit klines for the pair and interval and packs
// them into a techan series for the indicator layer.
func (bp *BinanceProvider) GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error) {
	timeSeries := techan.TimeSeries{}

	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	candleDuration, err := str2duration.ParseDuration(interval)
	if err != nil {
		return timeSeries, fmt.Errorf("error: invalid interval %s: %w", interval, err)
	}

	klines, err := bp.binanceClient.NewKlinesService().Symbol(pair).
		Interval(interval).Limit(limit).Do(context.Background())
	if err != nil {
		return timeSeries, err
	}

	for _, k := range klines {
		period := techan.NewTimePeriod(time.Unix(k.OpenTime/1000, 0), candleDuration)
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewFromString(k.Open)
		candle.ClosePrice = big.NewFromString(k.Close)
		candle.MaxPrice = big.NewFromString(k.High)
		candle.MinPrice = big.NewFromString(k.Low)
		candle.TradeCount = uint(k.TradeNum)
		candle.Volume = big.NewFromString(k.Volume)
		timeSeries.AddCandle(candle)
	}

	return timeSeries, nil
}
