package sim

import (
	"errors"
	"fmt"

	"chiller-sim/internal/analysis"
	"chiller-sim/internal/controller"
	"chiller-sim/internal/model"
	"chiller-sim/internal/profile"
)

// Params are the inputs to one simulation run. CustomLoad, when non-blank, is
// a comma-separated list of kW values replacing the synthetic profile.
// SampleCount only applies to the synthetic profile; zero means the default.
type Params struct {
	TimeScaleMinutes float64
	Kp               float64
	Ki               float64
	SampleCount      int
	CustomLoad       string
}

// Result bundles everything a presentation layer needs: the two traces and the
// derived scalars. Nothing in a Result is mutated after Run returns.
type Result struct {
	Profile  model.TimeSeries
	Response model.TimeSeries
	Report   analysis.EnergyReport
	Peak     analysis.Peak
}

// TraceRow is one per-sample row of combined output, the "what happened" view
// used by the CSV writer and the API trace.
type TraceRow struct {
	Index             int
	TimeMinutes       float64
	LoadKW            float64
	ResponseKW        float64
	DeficitKW         float64
	OverperformanceKW float64
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes one closed-loop simulation: build (or parse) the heat-load
// profile, run the PI controller over it, then derive the energy report and
// the first response peak. It stops at the first failing stage; no partial
// result is ever returned.
func (e *Engine) Run(p Params) (*Result, error) {
	prof, err := e.buildProfile(p)
	if err != nil {
		return nil, err
	}

	response, err := controller.Controller{Kp: p.Kp, Ki: p.Ki}.Simulate(prof)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	report, err := analysis.Account(prof, response)
	if err != nil {
		return nil, fmt.Errorf("energy accounting: %w", err)
	}

	return &Result{
		Profile:  prof,
		Response: response,
		Report:   report,
		Peak:     analysis.FirstPeak(response),
	}, nil
}

func (e *Engine) buildProfile(p Params) (model.TimeSeries, error) {
	if p.CustomLoad != "" {
		prof, err := profile.ParseCustom(p.CustomLoad, p.TimeScaleMinutes)
		var parseErr *model.ParseError
		if errors.As(err, &parseErr) {
			// Surface parse failures as a caller-input problem naming the
			// field; the underlying ParseError stays reachable via errors.As.
			return model.TimeSeries{}, &model.InvalidInputError{
				Field:  "custom_load",
				Reason: parseErr.Error(),
				Err:    parseErr,
			}
		}
		if err != nil {
			return model.TimeSeries{}, err
		}
		return prof, nil
	}

	samples := p.SampleCount
	if samples == 0 {
		samples = profile.DefaultSampleCount
	}
	return profile.Generate(p.TimeScaleMinutes, samples)
}

// Trace flattens a Result into per-sample rows.
func (r *Result) Trace() []TraceRow {
	deficit, overperformance, err := analysis.Split(r.Profile, r.Response)
	if err != nil {
		// Run already validated the pair; a Result built any other way is a
		// programming error.
		panic(err)
	}

	rows := make([]TraceRow, r.Profile.Len())
	for i := range rows {
		rows[i] = TraceRow{
			Index:             i,
			TimeMinutes:       r.Profile.Times[i],
			LoadKW:            r.Profile.Values[i],
			ResponseKW:        r.Response.Values[i],
			DeficitKW:         deficit[i],
			OverperformanceKW: overperformance[i],
		}
	}
	return rows
}
