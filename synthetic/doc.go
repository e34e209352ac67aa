// Package synthetic generates synthetic price series for model evaluation.
//
// The generator samples a geometric Brownian motion path, the standard
// stochastic model for asset prices, and is the opaque data source the
// forecasting pipeline is exercised against when no real data file is
// supplied.
//
//	prices := synthetic.GBM(synthetic.GBMConfig{
//	    N:      300,
//	    S0:     100,
//	    Mu:     0.01,
//	    Sigma:  0.1,
//	    DeltaT: 1.0 / 300,
//	    Seed:   42,
//	})
//
// A non-zero seed makes the path fully reproducible; seed 0 draws a
// time-based seed.
package synthetic
