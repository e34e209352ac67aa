package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	series := NewNamed("prices", []float64{100, 102, 101, 105})
	diff := series.Diff()

	assert.Equal(t, []float64{2, -1, 4}, diff.Values)
	assert.Equal(t, "prices_diff", diff.Name)

	// Input untouched.
	assert.Equal(t, []float64{100, 102, 101, 105}, series.Values)
}

func TestDiffShortSeries(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"empty", []float64{}},
		{"single", []float64{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := New(tt.values).Diff()
			assert.Equal(t, 0, diff.Len())
		})
	}
}

func TestIntegrate(t *testing.T) {
	levels := Integrate(100, []float64{2, -1, 4})
	assert.InDeltaSlice(t, []float64{102, 101, 105}, levels, 1e-12)
}

func TestIntegrateEmpty(t *testing.T) {
	assert.Nil(t, Integrate(100, nil))
	assert.Nil(t, Integrate(100, []float64{}))
}

func TestDiffIntegrateRoundTrip(t *testing.T) {
	values := []float64{100, 102.5, 99.1, 105.7, 104.2, 110.9, 108.3}
	series := New(values)

	reconstructed := Integrate(values[0], series.Diff().Values)

	require.Len(t, reconstructed, len(values)-1)
	assert.InDeltaSlice(t, values[1:], reconstructed, 1e-9)
}

func TestStatistics(t *testing.T) {
	series := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.InDelta(t, 5.0, series.Mean(), 1e-12)
	assert.InDelta(t, 32.0/7.0, series.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), series.Std(), 1e-12)
	assert.Equal(t, 2.0, series.Min())
	assert.Equal(t, 9.0, series.Max())
	assert.Equal(t, 9.0, series.Last())
}

func TestStatisticsEmpty(t *testing.T) {
	series := New(nil)

	assert.Equal(t, 0.0, series.Mean())
	assert.Equal(t, 0.0, series.Variance())
	assert.True(t, math.IsNaN(series.Min()))
	assert.True(t, math.IsNaN(series.Max()))
	assert.True(t, math.IsNaN(series.Last()))
}

func TestSlice(t *testing.T) {
	series := NewNamed("s", []float64{1, 2, 3, 4, 5})

	sub := series.Slice(1, 4)
	assert.Equal(t, []float64{2, 3, 4}, sub.Values)
	assert.Equal(t, "s", sub.Name)

	// Out-of-range bounds are clamped.
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, series.Slice(-3, 99).Values)

	// Inverted range yields an empty series.
	assert.Equal(t, 0, series.Slice(4, 2).Len())

	// Slices are copies.
	sub.Values[0] = -1
	assert.Equal(t, 2.0, series.Values[1])
}

func TestTail(t *testing.T) {
	series := New([]float64{1, 2, 3, 4, 5})

	tail := series.Tail(3)
	assert.Equal(t, []float64{3, 4, 5}, tail)

	// Tail is a copy.
	tail[0] = -1
	assert.Equal(t, 3.0, series.Values[2])

	assert.Nil(t, series.Tail(6))
	assert.Nil(t, series.Tail(0))
}

func TestCopy(t *testing.T) {
	series := NewNamed("orig", []float64{1, 2, 3})

	cp := series.Copy()
	cp.Values[0] = 99

	assert.Equal(t, 1.0, series.Values[0])
	assert.Equal(t, "orig", cp.Name)
}
