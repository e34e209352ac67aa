// Package timeseries provides the series data structure and utilities.
//
// This package includes the Series type for representing time-ordered samples,
// the differencing/integration transform pair, and simple file persistence.
//
// # Creating a Series
//
// Create a series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Differencing and Integration
//
// Differencing maps a level series into the stationary domain, integration
// reconstructs levels from forecasted differences:
//
//	diffs := series.Diff()
//	// ... forecast future differences ...
//	levels := timeseries.Integrate(series.Last(), forecastDiffs)
//
// Integrating the differences of a series from its first value reconstructs
// everything after that first value exactly:
//
//	timeseries.Integrate(series.Values[0], series.Diff().Values)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Persistence
//
// Series are written as plain columns (one value per line, the format
// consumed by external plotting tools) or indexed CSV:
//
//	timeseries.SaveColumn(series, "train_prices.txt")
//	timeseries.SaveCSV(series, "train_prices.csv")
//
//	series, err := timeseries.LoadColumn("prices.txt")
//	series, err := timeseries.LoadCSVColumn("prices.csv", "close")
package timeseries
