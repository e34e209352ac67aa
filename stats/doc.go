// Package stats provides autocorrelation and forecast error metrics.
//
// # Autocorrelation
//
// Compute the biased sample autocorrelation of a stationary series:
//
//	r := stats.Autocorrelation(series, order)
//	// r[lag] = sum(x[i]*x[i-lag]) / n, for lags 0..order
//
// The raw (non-centered, non-normalized) form is used because it is exactly
// what the Yule-Walker equations and the Levinson-Durbin recursion in the ar
// package consume. r[0] is the mean power of the series; a constant-zero
// series has r[0] = 0 and no AR model can be fitted to it.
//
// # Forecast Error Metrics
//
// Score a forecast against held-out actuals:
//
//	em := stats.ComputeErrors(forecast, actual)
//	fmt.Printf("MSE=%.4f RMSE=%.4f MAPE=%.2f%%\n", em.MSE, em.RMSE, em.MAPE)
//
// ComputeErrors is defensive: mismatched or empty inputs yield a zero-valued
// record rather than an error.
package stats
