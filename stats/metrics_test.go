package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeErrors(t *testing.T) {
	forecast := []float64{2, 4}
	actual := []float64{1, 2}

	em := ComputeErrors(forecast, actual)

	// Diffs are 1 and 2: MSE = (1+4)/2, MAPE = (100% + 100%)/2.
	assert.InDelta(t, 2.5, em.MSE, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), em.RMSE, 1e-12)
	assert.InDelta(t, 100.0, em.MAPE, 1e-12)
}

func TestComputeErrorsPerfectForecast(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}

	em := ComputeErrors(values, values)

	assert.Zero(t, em.MSE)
	assert.Zero(t, em.RMSE)
	assert.Zero(t, em.MAPE)
}

func TestComputeErrorsDefensiveDefaults(t *testing.T) {
	tests := []struct {
		name     string
		forecast []float64
		actual   []float64
	}{
		{"mismatched lengths", []float64{1, 2}, []float64{1}},
		{"both empty", []float64{}, []float64{}},
		{"forecast nil", nil, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ComputeErrors(tt.forecast, tt.actual)
			assert.Equal(t, ErrorMetrics{}, em)
		})
	}
}

func TestComputeErrorsMAPEZeroActuals(t *testing.T) {
	// A zero actual contributes nothing to the MAPE sum but still counts in
	// the denominator, under-weighting that index rather than excluding it.
	em := ComputeErrors([]float64{1, 1}, []float64{0, 2})
	assert.InDelta(t, 25.0, em.MAPE, 1e-12)

	// All-zero actuals: sum stays 0, so MAPE is 0, not NaN or Inf.
	em = ComputeErrors([]float64{1, 2, 3}, []float64{0, 0, 0})
	assert.Zero(t, em.MAPE)
	assert.False(t, math.IsNaN(em.MAPE))
	assert.False(t, math.IsInf(em.MAPE, 0))
	assert.GreaterOrEqual(t, em.MAPE, 0.0)
}
