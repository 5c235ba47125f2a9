package analysis

import (
	"chiller-sim/internal/model"
)

// Peak describes the first local maximum of a response trace.
type Peak struct {
	Index       int
	TimeMinutes float64
	PowerKW     float64
}

// FirstPeak locates the first sample whose slope sign drops relative to the
// slope before it (rising or flat into falling). Traces with no interior peak,
// including anything shorter than 3 samples, fall back to the last sample.
// The fallback is deliberate: "no peak yet" renders as the trace endpoint.
func FirstPeak(response model.TimeSeries) Peak {
	n := response.Len()
	if n == 0 {
		return Peak{}
	}
	v := response.Values

	for i := 1; i < n-1; i++ {
		before := sign(v[i] - v[i-1])
		after := sign(v[i+1] - v[i])
		if after < before {
			return Peak{Index: i, TimeMinutes: response.Times[i], PowerKW: v[i]}
		}
	}

	last := n - 1
	return Peak{Index: last, TimeMinutes: response.Times[last], PowerKW: v[last]}
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
