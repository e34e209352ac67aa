// Package autoar implements automatic AR order selection.
package autoar

import (
	"errors"
	"math"

	"github.com/sartorproj/goar/ar"
	"github.com/sartorproj/goar/stats"
	"github.com/sartorproj/goar/timeseries"
)

// ErrInvalidRange reports an order range that cannot be swept.
var ErrInvalidRange = errors.New("order range must satisfy 1 <= MinOrder <= MaxOrder")

// Config holds the candidate order range for the selection sweep. The range
// is inclusive on both ends.
type Config struct {
	MinOrder int
	MaxOrder int
}

// DefaultConfig returns the default order-selection configuration.
func DefaultConfig() *Config {
	return &Config{
		MinOrder: 1,
		MaxOrder: 10,
	}
}

// Result represents the outcome of an order-selection sweep.
type Result struct {
	// BestOrder is the candidate with the strictly lowest validation MSE.
	// When no candidate fits successfully it stays at MinOrder with
	// BestMSE = +Inf and a nil BestForecast.
	BestOrder int
	BestMSE   float64
	// BestForecast is the level-space forecast produced by the best order,
	// same length as the validation series.
	BestForecast []float64

	// Orders and Metrics record every candidate in sweep order. A candidate
	// whose fit failed carries +Inf for all three metrics.
	Orders  []int
	Metrics []stats.ErrorMetrics

	// ModelsEvaluated counts the candidates that fitted successfully.
	ModelsEvaluated int
}

// Select sweeps AR orders over the configured range, scoring each candidate
// against a held-out validation window, and returns the best-scoring order.
//
// For every order the candidate model is fitted on the stationary training
// series, forecast len(validation) steps ahead, integrated against lastLevel
// back into level space, and scored with stats.ComputeErrors against the
// validation levels. A fit failure never aborts the sweep; the order is
// recorded as unusable and the scan continues.
//
// Selection is a single ascending pass keeping the strictly lowest MSE, so
// ties resolve to the first-seen (lowest) order.
func Select(train *timeseries.Series, validation []float64, lastLevel float64, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MinOrder < 1 || cfg.MaxOrder < cfg.MinOrder {
		return nil, ErrInvalidRange
	}

	result := &Result{
		BestOrder: cfg.MinOrder,
		BestMSE:   math.Inf(1),
	}

	for order := cfg.MinOrder; order <= cfg.MaxOrder; order++ {
		result.Orders = append(result.Orders, order)

		model := ar.New(order)
		if err := model.Fit(train); err != nil {
			inf := math.Inf(1)
			result.Metrics = append(result.Metrics, stats.ErrorMetrics{MSE: inf, RMSE: inf, MAPE: inf})
			continue
		}
		result.ModelsEvaluated++

		forecastDiffs := model.PredictSteps(len(validation))
		forecastLevels := timeseries.Integrate(lastLevel, forecastDiffs)

		em := stats.ComputeErrors(forecastLevels, validation)
		result.Metrics = append(result.Metrics, em)

		if em.MSE < result.BestMSE {
			result.BestMSE = em.MSE
			result.BestOrder = order
			result.BestForecast = forecastLevels
		}
	}

	return result, nil
}
