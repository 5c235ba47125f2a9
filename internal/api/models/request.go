package models

// SimulateRequest represents the request body for running a simulation.
type SimulateRequest struct {
	TimeScaleMinutes float64          `json:"time_scale_minutes" binding:"required"`
	Controller       ControllerConfig `json:"controller"`
	CustomLoad       string           `json:"custom_load,omitempty"`
	Options          SimulateOptions  `json:"options,omitempty"`
}

// ControllerConfig carries the PI gains.
type ControllerConfig struct {
	Kp float64 `json:"kp"`
	Ki float64 `json:"ki"`
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	SampleCount  int  `json:"sample_count,omitempty"` // 0 = default (synthetic profile only)
	IncludeTrace bool `json:"include_trace,omitempty"`
}

// CompareRequest runs one profile under several gain variations.
type CompareRequest struct {
	TimeScaleMinutes float64         `json:"time_scale_minutes" binding:"required"`
	CustomLoad       string          `json:"custom_load,omitempty"`
	Options          SimulateOptions `json:"options,omitempty"`
	Variations       []GainVariation `json:"variations" binding:"required"`
}

// GainVariation is one named (kp, ki) setting to compare.
type GainVariation struct {
	Name       string           `json:"name" binding:"required"`
	Controller ControllerConfig `json:"controller"`
}

// SweepRequest represents query parameters for the gain-grid sweep.
type SweepRequest struct {
	TimeScaleMinutes float64 `form:"time_scale_minutes"`
	KpMax            float64 `form:"kp_max"`
	KiMax            float64 `form:"ki_max"`
	Steps            int     `form:"steps"`
	Limit            int     `form:"limit"` // default: 10
}
