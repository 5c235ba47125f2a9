package model

// TimeSeries is an ordered sequence of (time, value) samples on a strictly
// increasing time axis. Times are minutes, values are kW.
//
// A TimeSeries is treated as immutable once built: the generator, the
// controller and the accountants all hand out fresh slices rather than
// mutating an existing series.
type TimeSeries struct {
	Times  []float64
	Values []float64
}

// NewTimeSeries validates and wraps a time grid plus values.
func NewTimeSeries(times, values []float64) (TimeSeries, error) {
	ts := TimeSeries{Times: times, Values: values}
	if err := ts.Validate(); err != nil {
		return TimeSeries{}, err
	}
	return ts, nil
}

func (ts TimeSeries) Len() int { return len(ts.Times) }

// Validate enforces the structural preconditions every consumer relies on:
// at least two samples, equal-length axes, strictly increasing time.
func (ts TimeSeries) Validate() error {
	if len(ts.Times) != len(ts.Values) {
		return &InvalidInputError{Field: "series", Reason: "time and value lengths differ"}
	}
	if len(ts.Times) < 2 {
		return &InvalidInputError{Field: "series", Reason: "need at least 2 samples"}
	}
	for i := 1; i < len(ts.Times); i++ {
		if ts.Times[i] <= ts.Times[i-1] {
			return &InvalidInputError{Field: "series", Reason: "time grid is not strictly increasing"}
		}
	}
	return nil
}

// SameGrid reports whether two series share a time grid of equal length.
func (ts TimeSeries) SameGrid(other TimeSeries) bool {
	if len(ts.Times) != len(other.Times) {
		return false
	}
	for i := range ts.Times {
		if ts.Times[i] != other.Times[i] {
			return false
		}
	}
	return true
}

// UniformGrid builds an n-point time grid spanning [0, span] minutes.
func UniformGrid(span float64, n int) []float64 {
	grid := make([]float64, n)
	step := span / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	// Land exactly on the endpoint regardless of step rounding.
	grid[n-1] = span
	return grid
}
