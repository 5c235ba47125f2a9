package analysis

import (
	"chiller-sim/internal/model"
)

// EnergyReport totals the controller's tracking error as two energies.
// Both values are >= 0.
type EnergyReport struct {
	DeficitKWh         float64
	OverperformanceKWh float64
}

// Split computes the pointwise deficit (load above response) and
// overperformance (response above load) sequences in kW. At each sample at
// most one of the two is nonzero.
func Split(profile, response model.TimeSeries) (deficit, overperformance []float64, err error) {
	if err := profile.Validate(); err != nil {
		return nil, nil, err
	}
	if err := response.Validate(); err != nil {
		return nil, nil, err
	}
	if !profile.SameGrid(response) {
		return nil, nil, &model.InvalidInputError{Field: "response", Reason: "time grid does not match profile"}
	}

	n := profile.Len()
	deficit = make([]float64, n)
	overperformance = make([]float64, n)
	for i := 0; i < n; i++ {
		gap := profile.Values[i] - response.Values[i]
		if gap > 0 {
			deficit[i] = gap
		} else {
			overperformance[i] = -gap
		}
	}
	return deficit, overperformance, nil
}

// Account integrates the deficit and overperformance sequences over time
// (trapezoidal) and converts the kW*minute areas to kWh.
func Account(profile, response model.TimeSeries) (EnergyReport, error) {
	deficit, overperformance, err := Split(profile, response)
	if err != nil {
		return EnergyReport{}, err
	}
	return EnergyReport{
		DeficitKWh:         Trapezoid(profile.Times, deficit) / 60,
		OverperformanceKWh: Trapezoid(profile.Times, overperformance) / 60,
	}, nil
}
