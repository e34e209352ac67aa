// Package ar implements autoregressive AR(p) model estimation and forecasting.
package ar

import (
	"errors"
	"math"

	"github.com/sartorproj/goar/stats"
	"github.com/sartorproj/goar/timeseries"
)

var (
	// ErrInsufficientData reports a series shorter than the requested order.
	ErrInsufficientData = errors.New("insufficient data points for the requested order")
	// ErrDegenerateSeries reports a zero lag-0 autocorrelation: the series has
	// no power (constant zero or empty) and no stable coefficients exist.
	ErrDegenerateSeries = errors.New("zero lag-0 autocorrelation, cannot compute coefficients")
	// ErrUnstableRecursion reports that the Levinson-Durbin prediction error
	// stopped decreasing, which only happens on numerically invalid
	// autocorrelation input.
	ErrUnstableRecursion = errors.New("numerical instability in Levinson-Durbin recursion")
	// ErrAlreadyFit reports a second Fit call on the same instance.
	ErrAlreadyFit = errors.New("model instance has already been fitted")
	// ErrNotFitted reports a prediction attempt against an unfitted or failed model.
	ErrNotFitted = errors.New("model must be fitted before prediction")
)

type fitState int

const (
	stateUnfitted fitState = iota
	stateFitted
	stateFailed
)

// Model represents an AR(p) model. An instance is single-use: it moves from
// unfitted to either fitted or failed, and never back.
type Model struct {
	Order    int
	Coeffs   []float64 // Coeffs[i] multiplies the value i+1 steps before the prediction point
	Autocorr []float64 // biased sample autocorrelation, lags 0..Order
	Variance float64   // final prediction-error variance e[Order]

	state fitState
	data  *timeseries.Series
}

// New creates a new AR model of the given order. The order is fixed for the
// lifetime of the instance.
func New(order int) *Model {
	return &Model{Order: order}
}

// Fit estimates the AR coefficients from a stationary series using the
// Levinson-Durbin recursion. The series must have at least Order samples.
// On failure the model is unusable for prediction; a fresh instance is
// required to retry.
func (m *Model) Fit(series *timeseries.Series) error {
	if m.state != stateUnfitted {
		return ErrAlreadyFit
	}

	if m.Order < 1 || series.Len() < m.Order {
		m.state = stateFailed
		return ErrInsufficientData
	}

	r := stats.Autocorrelation(series, m.Order)
	coeffs, predErr, err := levinsonDurbin(r)
	if err != nil {
		m.state = stateFailed
		return err
	}

	m.Coeffs = coeffs
	m.Autocorr = r
	m.Variance = predErr[len(predErr)-1]
	m.data = series
	m.state = stateFitted
	return nil
}

// Fitted reports whether the model was successfully fitted.
func (m *Model) Fitted() bool {
	return m.state == stateFitted
}

// Predict returns the one-step forecast: the dot product of the coefficients
// with the trailing Order observations, most recent first.
func (m *Model) Predict() (float64, error) {
	if m.state != stateFitted {
		return 0, ErrNotFitted
	}

	vals := m.data.Values
	n := len(vals)

	pred := 0.0
	for i := 0; i < m.Order; i++ {
		pred += m.Coeffs[i] * vals[n-1-i]
	}
	return pred, nil
}

// PredictSteps returns a k-step recursive forecast. The window starts as the
// trailing Order observations of the fitted series; each prediction is fed
// back into the window in place of true observations, so accuracy degrades
// with the horizon. Returns an empty sequence when the model is not fitted
// or k is not positive.
func (m *Model) PredictSteps(k int) []float64 {
	if m.state != stateFitted || k <= 0 {
		return nil
	}

	// Window ordered oldest to newest; Tail copies, so the fitted series is
	// never touched.
	window := m.data.Tail(m.Order)
	preds := make([]float64, 0, k)

	for step := 0; step < k; step++ {
		pred := 0.0
		for i := 0; i < m.Order; i++ {
			pred += m.Coeffs[i] * window[m.Order-1-i]
		}
		preds = append(preds, pred)

		// Slide: drop the oldest entry, append the new prediction.
		window = append(window[1:], pred)
	}
	return preds
}

// levinsonDurbin solves the Yule-Walker equations for the autocorrelation
// vector r (lags 0..p) without a matrix inversion, returning the AR
// coefficients a[1..p] and the prediction-error sequence e[0..p].
//
// The recursion builds the order-k predictor from the order-k-1 solution:
//
//	lambda = (r[k] - sum_{j=1..k-1} a[j]*r[k-j]) / e[k-1]
//	a[k]   = lambda
//	a[j]  -= lambda * a[k-j]   (simultaneous, from pre-update values)
//	e[k]   = e[k-1] * (1 - lambda^2)
//
// For valid autocorrelation input e is non-increasing; any increase, or a
// non-finite reflection coefficient, is reported as ErrUnstableRecursion
// rather than clamped.
func levinsonDurbin(r []float64) (coeffs, predErr []float64, err error) {
	order := len(r) - 1
	if order < 1 {
		return nil, nil, ErrInsufficientData
	}
	if r[0] == 0 {
		return nil, nil, ErrDegenerateSeries
	}

	a := make([]float64, order+1)
	e := make([]float64, order+1)
	a[0] = 1
	e[0] = r[0]

	prev := make([]float64, order+1)

	for k := 1; k <= order; k++ {
		lambda := 0.0
		for j := 1; j < k; j++ {
			lambda += a[j] * r[k-j]
		}
		lambda = (r[k] - lambda) / e[k-1]
		if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
			return nil, nil, ErrUnstableRecursion
		}

		a[k] = lambda
		copy(prev[:k], a[:k])
		for j := 1; j < k; j++ {
			a[j] = prev[j] - lambda*prev[k-j]
		}

		e[k] = e[k-1] * (1 - lambda*lambda)
		if e[k] > e[k-1] {
			return nil, nil, ErrUnstableRecursion
		}
	}

	// a[0] is the unit leading entry of the prediction filter; discard it.
	coeffs = make([]float64, order)
	copy(coeffs, a[1:])
	return coeffs, e, nil
}
