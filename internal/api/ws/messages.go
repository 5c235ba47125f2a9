package ws

import "chiller-sim/internal/sim"

const (
	TypeResult = "result"
	TypeError  = "error"
)

// TuneMessage is one parameter update from the client.
type TuneMessage struct {
	TimeScaleMinutes float64 `json:"time_scale_minutes"`
	Kp               float64 `json:"kp"`
	Ki               float64 `json:"ki"`
	SampleCount      int     `json:"sample_count,omitempty"`
	CustomLoad       string  `json:"custom_load,omitempty"`
	IncludeTrace     bool    `json:"include_trace,omitempty"`
}

// ResultMessage carries one recomputed simulation result.
type ResultMessage struct {
	Type               string     `json:"type"`
	DeficitKWh         float64    `json:"deficit_kwh"`
	OverperformanceKWh float64    `json:"overperformance_kwh"`
	PeakIndex          int        `json:"peak_index"`
	PeakTimeMinutes    float64    `json:"peak_time_minutes"`
	PeakPowerKW        float64    `json:"peak_power_kw"`
	Trace              []TracePnt `json:"trace,omitempty"`
}

// TracePnt is one chart point: time plus both curves.
type TracePnt struct {
	TimeMinutes float64 `json:"t"`
	LoadKW      float64 `json:"load"`
	ResponseKW  float64 `json:"response"`
}

// ErrorMessage reports a rejected parameter set; the connection stays open.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewResultMessage(result *sim.Result, includeTrace bool) ResultMessage {
	msg := ResultMessage{
		Type:               TypeResult,
		DeficitKWh:         result.Report.DeficitKWh,
		OverperformanceKWh: result.Report.OverperformanceKWh,
		PeakIndex:          result.Peak.Index,
		PeakTimeMinutes:    result.Peak.TimeMinutes,
		PeakPowerKW:        result.Peak.PowerKW,
	}
	if includeTrace {
		msg.Trace = make([]TracePnt, result.Profile.Len())
		for i := range msg.Trace {
			msg.Trace[i] = TracePnt{
				TimeMinutes: result.Profile.Times[i],
				LoadKW:      result.Profile.Values[i],
				ResponseKW:  result.Response.Values[i],
			}
		}
	}
	return msg
}
