// Package goar provides autoregressive (AR) time series modeling and
// forecasting with automatic order selection.
//
// GoAR fits linear AR(p) models to a differenced (stationary) series using the
// Levinson-Durbin recursion, forecasts future values one step or many steps
// ahead, and selects the model order that minimizes out-of-sample error
// against a held-out validation window.
//
// # Quick Start
//
// Fit an AR model to a differenced price series and forecast:
//
//	diffs := prices.Diff()
//	model := ar.New(3)
//	if err := model.Fit(diffs); err != nil {
//	    log.Fatal(err)
//	}
//	forecastDiffs := model.PredictSteps(10)
//	forecast := timeseries.Integrate(prices.Last(), forecastDiffs)
//
// Use automatic order selection:
//
//	cfg := autoar.DefaultConfig()
//	result, _ := autoar.Select(trainDiffs, validPrices, lastTrainPrice, cfg)
//	fmt.Printf("Best order: AR(%d), MSE %.4f\n", result.BestOrder, result.BestMSE)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - ar: AR(p) model estimation and forecasting
//   - autoar: automatic order selection over a candidate range
//   - stats: autocorrelation and forecast error metrics
//   - timeseries: series data structure, differencing, integration, persistence
//   - synthetic: geometric Brownian motion price-series generation
//
// # References
//
//   - Levinson, N. (1947). The Wiener RMS error criterion in filter design and prediction
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package goar
