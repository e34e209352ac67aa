// Package stats provides autocorrelation and forecast error metrics.
package stats

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goar/timeseries"
)

// Autocorrelation calculates the biased sample autocorrelation of the series
// for lags 0 to maxLag: r[lag] = sum(x[i]*x[i-lag]) / n, over the full series
// length with no mean-centering. This is the raw second moment the
// Levinson-Durbin recursion consumes; a stationary zero-mean series is
// assumed. Returns nil when maxLag is negative.
func Autocorrelation(series *timeseries.Series, maxLag int) []float64 {
	if maxLag < 0 {
		return nil
	}

	x := series.Values
	n := series.Len()

	r := make([]float64, maxLag+1)
	for lag := 0; lag <= maxLag; lag++ {
		if lag >= n {
			break // no overlapping samples remain, r stays 0
		}
		r[lag] = floats.Dot(x[lag:], x[:n-lag]) / float64(n)
	}

	return r
}
