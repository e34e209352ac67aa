// Package synthetic generates synthetic price series for model evaluation.
package synthetic

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goar/timeseries"
)

// GBMConfig holds the parameters of a geometric Brownian motion path.
type GBMConfig struct {
	N      int     // number of time points
	S0     float64 // initial price
	Mu     float64 // drift
	Sigma  float64 // volatility
	DeltaT float64 // time increment, e.g. 1/252 for daily
	Seed   uint64  // 0 draws a time-based seed; anything else reproduces the path
}

// GBM generates a synthetic price series via geometric Brownian motion:
//
//	S[t+1] = S[t] * exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*Z)
//
// with Z drawn from the standard normal distribution.
func GBM(cfg GBMConfig) *timeseries.Series {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewSource(seed),
	}

	drift := (cfg.Mu - 0.5*cfg.Sigma*cfg.Sigma) * cfg.DeltaT
	diffusion := cfg.Sigma * math.Sqrt(cfg.DeltaT)

	prices := make([]float64, 0, cfg.N)
	current := cfg.S0
	for i := 0; i < cfg.N; i++ {
		current *= math.Exp(drift + diffusion*normal.Rand())
		prices = append(prices, current)
	}

	return timeseries.NewNamed("gbm", prices)
}
