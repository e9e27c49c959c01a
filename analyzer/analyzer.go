package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/quantengine/database"
	"gitlab.com/aoterocom/quantengine/helpers"
	"gitlab.com/aoterocom/quantengine/indicators"
	"gitlab.com/aoterocom/quantengine/interfaces"
	"gitlab.com/aoterocom/quantengine/marketdata"
	"gitlab.com/aoterocom/quantengine/models"
	"gitlab.com/aoterocom/quantengine/risk"
)

type Analyzer struct {
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

// RunAnalyze fetches a candle series and logs the indicator signal table
func (a *Analyzer) RunAnalyze(c *cli.Context) error {
	pair := c.String("pair")
	if pair == "" {
		pair = os.Getenv("pair")
	}
	if pair == "" {
		return fmt.Errorf("error: no pair set")
	}
	interval := c.String("interval")
	if interval == "" {
		interval = os.Getenv("interval")
	}
	if interval == "" {
		interval = "1h"
	}

	limit := 500
	if lookback := c.String("lookback"); lookback != "" {
		lookbackDuration, err := str2duration.ParseDuration(lookback)
		if err != nil {
			return fmt.Errorf("error: invalid lookback %s: %w", lookback, err)
		}
		candleDuration, err := str2duration.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("error: invalid interval %s: %w", interval, err)
		}
		limit = int(lookbackDuration / candleDuration)
	}

	helpers.Logger.Infoln(fmt.Sprintf("🔍 Analyzing %s on %s candles, lookback %d", pair, interval, limit))

	provider := marketdata.NewBinanceProvider()
	timeSeries, err := provider.GetSeries(pair, interval, limit)
	if err != nil {
		return err
	}

	highs, lows, closes := indicators.SeriesFromTimeSeries(&timeSeries)
	results, err := indicators.GenerateSignals(closes, highs, lows, closes)
	if err != nil {
		return err
	}

	for _, result := range results {
		helpers.Logger.Infoln(fmt.Sprintf("%s: %.4f → %s", result.Name, result.Value, result.Signal))
	}
	return nil
}

// RunRisk loads an account snapshot from JSON and logs the full risk
// report, persisting it when database recording is enabled
func (a *Analyzer) RunRisk(c *cli.Context) error {
	accountPath := c.String("account")
	if accountPath == "" {
		return fmt.Errorf("error: no account snapshot file set")
	}
	raw, err := os.ReadFile(accountPath)
	if err != nil {
		return err
	}
	var account models.TradingAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		return fmt.Errorf("error: invalid account snapshot: %w", err)
	}

	var databaseService *database.DBService
	databaseIsEnabled, _ := strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	if databaseIsEnabled {
		databaseService, err = database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"), os.Getenv("databaseName"),
			os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			return err
		}
	}

	var provider interfaces.MarketDataProvider
	if liveData, _ := strconv.ParseBool(os.Getenv("liveMarketData")); liveData {
		provider = marketdata.NewBinanceProvider()
	} else {
		provider = marketdata.NewStaticProvider()
	}

	parameterStore := risk.NewParameterStore()
	if databaseService != nil {
		stored, err := databaseService.LoadRiskParameters(account.ID)
		if err != nil {
			return err
		}
		if stored != nil {
			parameterStore.Set(account.ID, parametersAsUpdate(*stored))
		}
	}

	engine := risk.NewEngine(parameterStore, provider)

	metrics, err := engine.CalculateRiskMetrics(&account)
	if err != nil {
		return err
	}
	helpers.Logger.Infoln(fmt.Sprintf("📊 Account %s: VaR %.2f, Sharpe %.2f, drawdown %.2f%%, beta %.2f, diversification %.2f, score %.0f",
		account.ID, metrics.PortfolioVaR, metrics.SharpeRatio, metrics.CurrentDrawdown, metrics.Beta,
		metrics.DiversificationRatio, metrics.RiskScore))

	positions, err := engine.AnalyzePositionRisks(&account)
	if err != nil {
		return err
	}
	for _, position := range positions {
		helpers.Logger.Infoln(fmt.Sprintf("%s: %.2f%% of portfolio, volatility %.0f, rating %s",
			position.AssetID, position.PortfolioPercentage, position.Volatility, position.RiskRating))
	}

	alerts, err := engine.GenerateRiskAlerts(&account)
	if err != nil {
		return err
	}
	for _, alert := range alerts {
		helpers.Logger.Warnln(fmt.Sprintf("⚠️ [%s] %s — %s", alert.Type, alert.Message, alert.Action))
		if databaseService != nil {
			if err := databaseService.RecordAlert(account.ID, alert); err != nil {
				helpers.Logger.Errorln(err)
			}
		}
	}

	actions, err := engine.ExecuteAutomatedRiskManagement(&account)
	if err != nil {
		return err
	}
	for _, action := range actions {
		helpers.Logger.Infoln(fmt.Sprintf("🤖 proposed %s on %s: %.6f units (%.2f)", action.Type, action.CoinID, action.Amount, action.Value))
		if databaseService != nil {
			if err := databaseService.RecordAction(account.ID, action); err != nil {
				helpers.Logger.Errorln(err)
			}
		}
	}

	return nil
}

func parametersAsUpdate(parameters models.RiskParameters) models.RiskParametersUpdate {
	return models.RiskParametersUpdate{
		MaxPositionSize:      &parameters.MaxPositionSize,
		MaxDailyLoss:         &parameters.MaxDailyLoss,
		StopLossPercentage:   &parameters.StopLossPercentage,
		TakeProfitPercentage: &parameters.TakeProfitPercentage,
		MaxCorrelation:       &parameters.MaxCorrelation,
		VolatilityThreshold:  &parameters.VolatilityThreshold,
		LiquidityThreshold:   &parameters.LiquidityThreshold,
	}
}
