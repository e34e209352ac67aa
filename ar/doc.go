// Package ar implements autoregressive AR(p) models for stationary series.
//
// An AR(p) model expresses the next value of a series as a weighted sum of
// the previous p values. Coefficients are estimated from the biased sample
// autocorrelation via the Levinson-Durbin recursion, an O(p^2) solution of
// the Yule-Walker equations that never forms or inverts a matrix and so
// cannot hit a singular system for valid autocorrelation input.
//
// # Basic Usage
//
// Fit a model to a stationary (e.g. first-differenced) series and forecast:
//
//	model := ar.New(3)
//	if err := model.Fit(diffs); err != nil {
//	    log.Fatal(err)
//	}
//
//	next, _ := model.Predict()        // one step ahead
//	future := model.PredictSteps(20)  // twenty steps ahead
//
// Multi-step forecasts are recursive: each prediction is fed back into the
// forecasting window in place of a true observation, so error compounds with
// the horizon.
//
// # Error Handling
//
// A model instance is single-use. Fit reports ErrInsufficientData when the
// series is shorter than the order and ErrDegenerateSeries when the series
// has zero power (for example the difference of a constant series). Both are
// recoverable: callers sweeping candidate orders should skip the order and
// continue. See the autoar package for such a sweep.
package ar
