package profile

import (
	"math"
	"strconv"
	"strings"

	"chiller-sim/internal/model"
)

// DefaultSampleCount is the stock grid resolution of the synthetic profile.
const DefaultSampleCount = 100

// Breakpoints of the synthetic heat-load profile, in minutes.
const (
	rampEnd  = 15.0
	oscEnd   = 40.0
	oscCycle = 20.0
)

// Generate builds the synthetic heat-load profile on a uniform grid of
// sampleCount points over [0, timeScaleMinutes]. Three segments:
// a linear ramp to t=15, a sinusoidal plateau to t=40, exponential decay after.
// The segments are not required to join continuously in value.
func Generate(timeScaleMinutes float64, sampleCount int) (model.TimeSeries, error) {
	if timeScaleMinutes <= 0 {
		return model.TimeSeries{}, &model.InvalidInputError{Field: "time_scale_minutes", Reason: "must be > 0"}
	}
	if sampleCount < 2 {
		return model.TimeSeries{}, &model.InvalidInputError{Field: "sample_count", Reason: "must be >= 2"}
	}

	times := model.UniformGrid(timeScaleMinutes, sampleCount)
	values := make([]float64, sampleCount)
	for i, t := range times {
		values[i] = loadAt(t)
	}
	return model.NewTimeSeries(times, values)
}

func loadAt(t float64) float64 {
	switch {
	case t <= rampEnd:
		return 7 * t
	case t <= oscEnd:
		return 100 + 20*math.Sin(2*math.Pi*(t-rampEnd)/oscCycle)
	default:
		return 100 * math.Exp(-0.05*(t-oscEnd))
	}
}

// ParseCustom turns a comma-separated list of kW values into a profile placed
// on a uniform grid over [0, timeScaleMinutes]. Any non-numeric token fails
// with a ParseError; so does an input that is empty after trimming.
func ParseCustom(input string, timeScaleMinutes float64) (model.TimeSeries, error) {
	if timeScaleMinutes <= 0 {
		return model.TimeSeries{}, &model.InvalidInputError{Field: "time_scale_minutes", Reason: "must be > 0"}
	}
	if strings.TrimSpace(input) == "" {
		return model.TimeSeries{}, &model.ParseError{}
	}

	tokens := strings.Split(input, ",")
	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return model.TimeSeries{}, &model.ParseError{Token: tok, Index: i}
		}
		values = append(values, v)
	}
	if len(values) < 2 {
		return model.TimeSeries{}, &model.InvalidInputError{Field: "custom_load", Reason: "need at least 2 values"}
	}

	return model.NewTimeSeries(model.UniformGrid(timeScaleMinutes, len(values)), values)
}
