package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticProviderKnownAssets(t *testing.T) {
	provider := NewStaticProvider()

	assert.Equal(t, 45.0, provider.VolatilityOf("BTC"))
	assert.Equal(t, 1.2, provider.BetaOf("ETH"))
	assert.Equal(t, 0.85, provider.CorrelationBetween("BTC", "ETH"))
	assert.Equal(t, 2100000000.0, provider.LiquidityOf("SOL"))
}

func TestStaticProviderUnknownAssetDefaults(t *testing.T) {
	provider := NewStaticProvider()

	assert.Equal(t, float64(DefaultVolatility), provider.VolatilityOf("OBSCURE"))
	assert.Equal(t, DefaultBeta, provider.BetaOf("OBSCURE"))
	assert.Equal(t, DefaultCorrelation, provider.CorrelationBetween("OBSCURE", "ALSOOBSCURE"))
	assert.Equal(t, float64(DefaultLiquidity), provider.LiquidityOf("OBSCURE"))
}

func TestStaticProviderCorrelationIsSymmetric(t *testing.T) {
	provider := NewStaticProvider()

	coins := []string{"BTC", "ETH", "BNB", "XRP", "ADA", "SOL", "DOT", "MATIC"}
	for _, a := range coins {
		for _, b := range coins {
			assert.Equal(t, provider.CorrelationBetween(a, b), provider.CorrelationBetween(b, a))
		}
	}
}

func TestStaticProviderSelfCorrelationIsOne(t *testing.T) {
	provider := NewStaticProvider()

	assert.Equal(t, 1.0, provider.CorrelationBetween("BTC", "BTC"))
	assert.Equal(t, 1.0, provider.CorrelationBetween("OBSCURE", "OBSCURE"))
}
