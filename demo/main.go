// Package main demonstrates AR forecasting with automatic order selection
// on a synthetic GBM price series.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/goar/ar"
	"github.com/sartorproj/goar/autoar"
	"github.com/sartorproj/goar/synthetic"
	"github.com/sartorproj/goar/timeseries"
)

// RunConfig defines one forecasting run. All fields have working defaults;
// a YAML file overrides them.
type RunConfig struct {
	TotalDays int     `yaml:"total_days"` // total data length
	TrainDays int     `yaml:"train_days"` // training window, rest is validation
	S0        float64 `yaml:"s0"`         // initial price
	Mu        float64 `yaml:"mu"`         // GBM drift
	Sigma     float64 `yaml:"sigma"`      // GBM volatility
	Seed      uint64  `yaml:"seed"`       // 0 for a non-deterministic path

	MinOrder int `yaml:"min_order"`
	MaxOrder int `yaml:"max_order"`

	// When DataFile is set the synthetic generator is skipped and prices are
	// loaded from a plain column file, or from a CSV column if DataColumn is set.
	DataFile   string `yaml:"data_file"`
	DataColumn string `yaml:"data_column"`

	OutputDir string `yaml:"output_dir"`
}

func defaultConfig() RunConfig {
	return RunConfig{
		TotalDays: 300,
		TrainDays: 240,
		S0:        100.0,
		Mu:        0.01,
		Sigma:     0.1,
		Seed:      42,
		MinOrder:  20,
		MaxOrder:  80,
		OutputDir: ".",
	}
}

func loadConfig(path string) (RunConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoAR Demonstration - AR forecasting with automatic order selection")
	fmt.Println(strings.Repeat("=", 80))

	// 1. Obtain the level series: synthetic GBM path or a real data file.
	prices, err := loadPrices(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Level series: %d observations (%.2f to %.2f)\n",
		prices.Len(), prices.Min(), prices.Max())

	if cfg.TrainDays < 2 || cfg.TrainDays >= prices.Len() {
		fmt.Fprintf(os.Stderr, "train_days must be in [2, %d)\n", prices.Len())
		os.Exit(1)
	}

	sink := columnSink{dir: cfg.OutputDir}
	sink.writeSeries("full_prices", prices.Values)

	// 2. Train/validation split and differencing of the training window.
	validDays := prices.Len() - cfg.TrainDays
	train := prices.Slice(0, cfg.TrainDays)
	valid := prices.Slice(cfg.TrainDays, prices.Len())
	lastTrainPrice := train.Last()

	trainDiffs := train.Diff()

	fmt.Printf("Train: %d, Validation: %d, last training price %.4f\n",
		cfg.TrainDays, validDays, lastTrainPrice)

	sink.writeSeries("train_prices", train.Values)
	sink.writeSeries("actual_future_prices", valid.Values)
	sink.writeSeries("train_diffs", trainDiffs.Values)

	// 3. Order-selection sweep.
	result, err := autoar.Select(trainDiffs, valid.Values, lastTrainPrice, &autoar.Config{
		MinOrder: cfg.MinOrder,
		MaxOrder: cfg.MaxOrder,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Order selection failed: %v\n", err)
		os.Exit(1)
	}

	orders := make([]float64, len(result.Orders))
	mses := make([]float64, len(result.Metrics))
	rmses := make([]float64, len(result.Metrics))
	mapes := make([]float64, len(result.Metrics))
	for i, order := range result.Orders {
		orders[i] = float64(order)
		mses[i] = result.Metrics[i].MSE
		rmses[i] = result.Metrics[i].RMSE
		mapes[i] = result.Metrics[i].MAPE
	}
	sink.writeSeries("ar_orders", orders)
	sink.writeSeries("ar_mses", mses)
	sink.writeSeries("ar_rmses", rmses)
	sink.writeSeries("ar_mapes", mapes)

	fmt.Printf("Best AR order based on MSE: %d (%d of %d candidates fitted)\n",
		result.BestOrder, result.ModelsEvaluated, len(result.Orders))
	fmt.Printf("MSE at best order: %g\n", result.BestMSE)

	// 4. Refit the best order and emit its forecasts.
	best := ar.New(result.BestOrder)
	if err := best.Fit(trainDiffs); err != nil {
		fmt.Fprintf(os.Stderr, "Error refitting best AR model: %v\n", err)
		os.Exit(1)
	}

	forecastDiffs := best.PredictSteps(validDays)
	forecastPrices := timeseries.Integrate(lastTrainPrice, forecastDiffs)
	sink.writeSeries("forecasted_diff", forecastDiffs)
	sink.writeSeries("forecasted_prices", forecastPrices)

	oneStepDiff, err := best.Predict()
	if err != nil {
		fmt.Fprintf(os.Stderr, "One-step prediction failed: %v\n", err)
		os.Exit(1)
	}
	oneStepPrice := lastTrainPrice + oneStepDiff
	sink.writeScalar("one_step_diff", oneStepDiff)
	sink.writeScalar("one_step_price", oneStepPrice)

	// 5. Time indices for plotting.
	sink.writeSeries("train_time_indices", indexRange(0, cfg.TrainDays))
	sink.writeSeries("forecast_time_indices", indexRange(cfg.TrainDays, validDays))

	// 6. Validation metrics for the best model.
	emBest := result.Metrics[result.BestOrder-cfg.MinOrder]
	sink.writeScalar("validation_mse", emBest.MSE)
	sink.writeScalar("validation_rmse", emBest.RMSE)
	sink.writeScalar("validation_mape", emBest.MAPE)

	// 7. Summary.
	fmt.Printf("\nValidation error metrics for AR(%d):\n", result.BestOrder)
	fmt.Printf("MSE:  %g\nRMSE: %g\nMAPE: %g%%\n", emBest.MSE, emBest.RMSE, emBest.MAPE)
	fmt.Printf("\nTraining ends at day %d with price %.4f\n", cfg.TrainDays-1, lastTrainPrice)
	fmt.Printf("Forecast horizon: %d days\n", validDays)
	fmt.Printf("One-step price forecast: %.4f\n", oneStepPrice)
	fmt.Printf("Multi-step forecast (AR(%d)): first %.4f ... last %.4f\n",
		result.BestOrder, forecastPrices[0], forecastPrices[len(forecastPrices)-1])
	fmt.Println("\nData saved to text files for plotting.")
	fmt.Println(strings.Repeat("=", 80))
}

// loadPrices returns the configured level series.
func loadPrices(cfg RunConfig) (*timeseries.Series, error) {
	if cfg.DataFile != "" {
		if cfg.DataColumn != "" {
			return timeseries.LoadCSVColumn(cfg.DataFile, cfg.DataColumn)
		}
		return timeseries.LoadColumn(cfg.DataFile)
	}

	return synthetic.GBM(synthetic.GBMConfig{
		N:      cfg.TotalDays,
		S0:     cfg.S0,
		Mu:     cfg.Mu,
		Sigma:  cfg.Sigma,
		DeltaT: 1.0 / float64(cfg.TotalDays),
		Seed:   cfg.Seed,
	}), nil
}

// columnSink writes named numeric sequences and scalars as plain column files.
type columnSink struct {
	dir string
}

func (s columnSink) writeSeries(name string, values []float64) {
	path := filepath.Join(s.dir, name+".txt")
	if err := timeseries.SaveColumn(timeseries.NewNamed(name, values), path); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
	}
}

func (s columnSink) writeScalar(name string, value float64) {
	path := filepath.Join(s.dir, name+".txt")
	if err := timeseries.SaveScalar(value, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
	}
}

func indexRange(start, n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = float64(start + i)
	}
	return r
}
