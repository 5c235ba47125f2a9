package models

// SimulateResponse represents the response from a simulation run.
type SimulateResponse struct {
	Status  string     `json:"status"`
	Summary Summary    `json:"summary"`
	Trace   []TraceRow `json:"trace,omitempty"`
}

// Summary contains the derived scalars of one run.
type Summary struct {
	DeficitKWh         float64 `json:"deficit_kwh"`
	OverperformanceKWh float64 `json:"overperformance_kwh"`
	Peak               Peak    `json:"peak"`
	TimeScaleMinutes   float64 `json:"time_scale_minutes"`
	SampleCount        int     `json:"sample_count"`
}

// Peak describes the first local maximum of the response trace.
type Peak struct {
	Index       int     `json:"index"`
	TimeMinutes float64 `json:"time_minutes"`
	PowerKW     float64 `json:"power_kw"`
}

// TraceRow is one sample of combined output.
type TraceRow struct {
	Index             int     `json:"index"`
	TimeMinutes       float64 `json:"time_min"`
	LoadKW            float64 `json:"load_kw"`
	ResponseKW        float64 `json:"response_kw"`
	DeficitKW         float64 `json:"deficit_kw"`
	OverperformanceKW float64 `json:"overperformance_kw"`
}

// CompareResponse represents the response from a gain comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name    string  `json:"name"`
	Kp      float64 `json:"kp"`
	Ki      float64 `json:"ki"`
	Summary Summary `json:"summary"`
}

// SweepResponse represents the ranked gain-grid sweep.
type SweepResponse struct {
	Rankings []SweepRanking `json:"rankings"`
}

// SweepRanking is one ranked gain setting.
type SweepRanking struct {
	Rank               int     `json:"rank"`
	Kp                 float64 `json:"kp"`
	Ki                 float64 `json:"ki"`
	DeficitKWh         float64 `json:"deficit_kwh"`
	OverperformanceKWh float64 `json:"overperformance_kwh"`
	MismatchKWh        float64 `json:"mismatch_kwh"`
	PeakKW             float64 `json:"peak_kw"`
}

// ProfileInfo describes one load-profile source.
type ProfileInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a profile parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
