// Package timeseries provides the core series data structure and the
// differencing/integration transforms.
package timeseries

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents an ordered sequence of real-valued samples indexed by
// time step. Transforms return a new Series rather than mutating the input.
type Series struct {
	Values []float64
	Name   string
}

// New creates a new series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewNamed creates a new named series from values.
func NewNamed(name string, values []float64) *Series {
	return &Series{Values: values, Name: name}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Last returns the most recent value in the series.
func (s *Series) Last() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Values[len(s.Values)-1]
}

// Diff calculates the first difference of the series: a series of length n-1
// where d[i] = v[i+1] - v[i]. Returns an empty series when fewer than two
// samples are available.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Values: []float64{}, Name: s.Name + "_diff"}
	}

	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = s.Values[i] - s.Values[i-1]
	}

	return &Series{
		Values: result,
		Name:   s.Name + "_diff",
	}
}

// Integrate reconstructs a level sequence from a base value and a difference
// sequence via running cumulative sum: levels[0] = base + diffs[0],
// levels[i] = levels[i-1] + diffs[i]. It is the inverse of Diff anchored at
// the level immediately preceding the first difference.
func Integrate(base float64, diffs []float64) []float64 {
	if len(diffs) == 0 {
		return nil
	}
	levels := floats.CumSum(make([]float64, len(diffs)), diffs)
	floats.AddConst(base, levels)
	return levels
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{
		Values: values,
		Name:   s.Name,
	}
}

// Tail returns the trailing k values of the series as a fresh slice.
// Returns nil when the series is shorter than k.
func (s *Series) Tail(k int) []float64 {
	if k <= 0 || k > len(s.Values) {
		return nil
	}
	values := make([]float64, k)
	copy(values, s.Values[len(s.Values)-k:])
	return values
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Values: values,
		Name:   s.Name,
	}
}
