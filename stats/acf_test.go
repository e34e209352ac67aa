package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goar/timeseries"
)

func TestAutocorrelation(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3})

	r := Autocorrelation(series, 2)
	require.Len(t, r, 3)

	// r[lag] = sum(x[i]*x[i-lag]) / n, no mean-centering.
	assert.InDelta(t, (1.0+4.0+9.0)/3.0, r[0], 1e-12)
	assert.InDelta(t, (2.0+6.0)/3.0, r[1], 1e-12)
	assert.InDelta(t, 3.0/3.0, r[2], 1e-12)
}

func TestAutocorrelationAlternating(t *testing.T) {
	series := timeseries.New([]float64{1, -1, 1, -1, 1, -1, 1, -1})

	r := Autocorrelation(series, 1)
	require.Len(t, r, 2)

	// Lag 0 is the mean power; lag 1 carries the bias factor (n-1)/n.
	assert.InDelta(t, 1.0, r[0], 1e-12)
	assert.InDelta(t, -0.875, r[1], 1e-12)
}

func TestAutocorrelationZeroSeries(t *testing.T) {
	series := timeseries.New([]float64{0, 0, 0, 0})

	r := Autocorrelation(series, 2)
	require.Len(t, r, 3)
	for lag, v := range r {
		assert.Zerof(t, v, "lag %d", lag)
	}
}

func TestAutocorrelationLagBeyondLength(t *testing.T) {
	series := timeseries.New([]float64{1, 2})

	// Lags with no overlapping samples stay zero.
	r := Autocorrelation(series, 4)
	require.Len(t, r, 5)
	assert.NotZero(t, r[0])
	assert.NotZero(t, r[1])
	assert.Zero(t, r[2])
	assert.Zero(t, r[3])
	assert.Zero(t, r[4])
}

func TestAutocorrelationNegativeLag(t *testing.T) {
	assert.Nil(t, Autocorrelation(timeseries.New([]float64{1, 2, 3}), -1))
}
