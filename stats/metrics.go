package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrorMetrics holds forecast accuracy metrics for one forecast-vs-actual
// comparison. MAPE is percentage-scaled.
type ErrorMetrics struct {
	MSE  float64
	RMSE float64
	MAPE float64
}

// ComputeErrors calculates MSE, RMSE, and MAPE between a forecast and the
// actual values. Requires equal non-zero lengths; returns all-zero metrics
// otherwise. Callers depending on a guaranteed comparison must check lengths
// themselves beforehand.
//
// Indices where the actual value is exactly zero contribute nothing to the
// MAPE sum, but the sum is still divided by the full count n. This matches
// the accumulation the metric has always used; excluding those indices from
// the denominator would change its meaning for existing consumers.
func ComputeErrors(forecast, actual []float64) ErrorMetrics {
	var em ErrorMetrics
	if len(forecast) != len(actual) || len(forecast) == 0 {
		return em
	}

	n := len(forecast)
	diff := make([]float64, n)
	floats.SubTo(diff, forecast, actual)

	em.MSE = floats.Dot(diff, diff) / float64(n)
	em.RMSE = math.Sqrt(em.MSE)

	sumAbsPct := 0.0
	for i, d := range diff {
		if actual[i] != 0 {
			sumAbsPct += math.Abs(d/actual[i]) * 100
		}
	}
	em.MAPE = sumAbsPct / float64(n)

	return em
}
