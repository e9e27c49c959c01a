package database

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	database "gitlab.com/aoterocom/quantengine/database/models"
	"gitlab.com/aoterocom/quantengine/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBService persists the risk-engine outputs: per-account parameters plus
// an audit trail of every emitted alert and proposed action. The engines
// themselves never touch it.
type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.RiskParameters{}, &database.RiskAlert{}, &database.RiskAction{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

// SaveRiskParameters upserts the account's limits keyed by account id
func (dbs *DBService) SaveRiskParameters(accountID string, parameters models.RiskParameters) error {
	row := database.RiskParameters{
		AccountID:            accountID,
		MaxPositionSize:      parameters.MaxPositionSize,
		MaxDailyLoss:         parameters.MaxDailyLoss,
		StopLossPercentage:   parameters.StopLossPercentage,
		TakeProfitPercentage: parameters.TakeProfitPercentage,
		MaxCorrelation:       parameters.MaxCorrelation,
		VolatilityThreshold:  parameters.VolatilityThreshold,
		LiquidityThreshold:   parameters.LiquidityThreshold,
	}
	return dbs.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		UpdateAll: true,
	}).Create(&row).Error
}

// LoadRiskParameters returns the persisted limits, or nil when the account
// has none stored
func (dbs *DBService) LoadRiskParameters(accountID string) (*models.RiskParameters, error) {
	var row database.RiskParameters
	result := dbs.DB.Where("account_id = ?", accountID).First(&row)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &models.RiskParameters{
		MaxPositionSize:      row.MaxPositionSize,
		MaxDailyLoss:         row.MaxDailyLoss,
		StopLossPercentage:   row.StopLossPercentage,
		TakeProfitPercentage: row.TakeProfitPercentage,
		MaxCorrelation:       row.MaxCorrelation,
		VolatilityThreshold:  row.VolatilityThreshold,
		LiquidityThreshold:   row.LiquidityThreshold,
	}, nil
}

func (dbs *DBService) RecordAlert(accountID string, alert models.RiskAlert) error {
	row := database.RiskAlert{
		AccountID: accountID,
		Type:      string(alert.Type),
		Message:   alert.Message,
		Action:    alert.Action,
	}
	return dbs.DB.Create(&row).Error
}

func (dbs *DBService) RecordAction(accountID string, action models.RiskAction) error {
	row := database.RiskAction{
		AccountID: accountID,
		Type:      string(action.Type),
		CoinID:    action.CoinID,
		Amount:    action.Amount,
		Value:     action.Value,
		Reason:    action.Reason,
	}
	return dbs.DB.Create(&row).Error
}

// GetAlerts returns the recorded alerts for an account, newest first
func (dbs *DBService) GetAlerts(accountID string) ([]database.RiskAlert, error) {
	var rows []database.RiskAlert
	result := dbs.DB.Where("account_id = ?", accountID).Order("created_at desc").Find(&rows)
	return rows, result.Error
}
