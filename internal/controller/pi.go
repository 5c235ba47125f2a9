package controller

import (
	"chiller-sim/internal/model"
)

// Controller is a discrete-time PI control law tracking a heat-load profile.
//
// The integral term accumulates over the whole horizon and is never reset or
// bounded. With a persistent error and a long horizon ki*integral can come to
// dominate the output; only the final output is clamped at zero. That matches
// the published behavior of the recurrence, so no anti-windup is applied here.
type Controller struct {
	Kp float64
	Ki float64
}

// Simulate runs the PI recurrence over the profile and returns the chiller
// response trace on the same time grid. response[0] is always 0; every later
// sample is
//
//	error[i]    = load[i] - response[i-1]
//	integral   += error[i] * (time[i] - time[i-1])
//	response[i] = max(0, kp*error[i] + ki*integral)
//
// Gains must be non-negative; negative gains are rejected rather than left to
// produce unverified output.
func (c Controller) Simulate(profile model.TimeSeries) (model.TimeSeries, error) {
	if c.Kp < 0 {
		return model.TimeSeries{}, &model.InvalidInputError{Field: "kp", Reason: "must be >= 0"}
	}
	if c.Ki < 0 {
		return model.TimeSeries{}, &model.InvalidInputError{Field: "ki", Reason: "must be >= 0"}
	}
	if err := profile.Validate(); err != nil {
		return model.TimeSeries{}, err
	}

	n := profile.Len()
	values := make([]float64, n)

	// Accumulator scoped to this invocation; the controller itself is
	// stateless across calls.
	integral := 0.0

	for i := 1; i < n; i++ {
		e := profile.Values[i] - values[i-1]
		integral += e * (profile.Times[i] - profile.Times[i-1])
		out := c.Kp*e + c.Ki*integral
		if out < 0 {
			out = 0
		}
		values[i] = out
	}

	times := make([]float64, n)
	copy(times, profile.Times)
	return model.TimeSeries{Times: times, Values: values}, nil
}
