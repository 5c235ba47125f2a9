package analysis

import (
	"sort"

	"chiller-sim/internal/controller"
	"chiller-sim/internal/model"
)

// GainScore is a per-(kp, ki) summary you can use for ranking gain settings
// over a fixed heat-load profile. MismatchKWh is the combined tracking error
// (deficit + overperformance), so lower is better.
type GainScore struct {
	Kp float64
	Ki float64

	DeficitKWh         float64
	OverperformanceKWh float64
	MismatchKWh        float64
	PeakKW             float64
}

// SweepGrid describes the gain grid to evaluate: Steps points per axis spaced
// evenly over [0, KpMax] x [0, KiMax], including both endpoints.
type SweepGrid struct {
	KpMax float64
	KiMax float64
	Steps int
}

// RankGains simulates every grid point against the profile and sorts ascending
// by MismatchKWh. Grid points that fail to simulate are skipped.
func RankGains(profile model.TimeSeries, grid SweepGrid) ([]GainScore, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if grid.Steps < 2 {
		return nil, &model.InvalidInputError{Field: "steps", Reason: "must be >= 2"}
	}
	if grid.KpMax < 0 || grid.KiMax < 0 {
		return nil, &model.InvalidInputError{Field: "sweep", Reason: "gain bounds must be >= 0"}
	}

	out := make([]GainScore, 0, grid.Steps*grid.Steps)
	for i := 0; i < grid.Steps; i++ {
		kp := grid.KpMax * float64(i) / float64(grid.Steps-1)
		for j := 0; j < grid.Steps; j++ {
			ki := grid.KiMax * float64(j) / float64(grid.Steps-1)

			response, err := controller.Controller{Kp: kp, Ki: ki}.Simulate(profile)
			if err != nil {
				continue
			}
			report, err := Account(profile, response)
			if err != nil {
				continue
			}

			out = append(out, GainScore{
				Kp:                 kp,
				Ki:                 ki,
				DeficitKWh:         report.DeficitKWh,
				OverperformanceKWh: report.OverperformanceKWh,
				MismatchKWh:        report.DeficitKWh + report.OverperformanceKWh,
				PeakKW:             FirstPeak(response).PowerKW,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].MismatchKWh < out[j].MismatchKWh
	})
	return out, nil
}
