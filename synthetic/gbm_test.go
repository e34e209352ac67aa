package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGBMDeterministicSeed(t *testing.T) {
	cfg := GBMConfig{N: 100, S0: 100, Mu: 0.01, Sigma: 0.1, DeltaT: 1.0 / 100, Seed: 42}

	a := GBM(cfg)
	b := GBM(cfg)

	require.Equal(t, 100, a.Len())
	assert.Equal(t, a.Values, b.Values)

	cfg.Seed = 43
	c := GBM(cfg)
	assert.NotEqual(t, a.Values, c.Values)
}

func TestGBMPricesStayPositive(t *testing.T) {
	prices := GBM(GBMConfig{N: 500, S0: 50, Mu: -0.05, Sigma: 0.3, DeltaT: 1.0 / 252, Seed: 1})

	require.Equal(t, 500, prices.Len())
	for i, p := range prices.Values {
		assert.Greaterf(t, p, 0.0, "price at step %d", i)
	}
}

func TestGBMZeroVolatility(t *testing.T) {
	// With sigma 0 the path is a deterministic exponential drift.
	prices := GBM(GBMConfig{N: 10, S0: 100, Mu: 0.5, Sigma: 0, DeltaT: 0.1, Seed: 5})

	for i := 1; i < prices.Len(); i++ {
		assert.Greater(t, prices.Values[i], prices.Values[i-1])
	}
}

func TestGBMTimeSeed(t *testing.T) {
	prices := GBM(GBMConfig{N: 20, S0: 100, Mu: 0.01, Sigma: 0.1, DeltaT: 0.01, Seed: 0})
	assert.Equal(t, 20, prices.Len())
}
