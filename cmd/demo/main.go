package main

import (
	"flag"
	"fmt"

	"chiller-sim/internal/config"
	"chiller-sim/internal/sim"
)

// Demo:
// - Build the synthetic heat-load profile (or a custom one via --load)
// - Run the PI controller over it
// - Print the first trace rows and the energy summary to show how the
//   packages fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	load := flag.String("load", "", "Comma-separated custom heat load in kW (optional)")
	n := flag.Int("n", 12, "Number of trace rows to print")
	outCSV := flag.String("out", "", "Optional path to write trace CSV (e.g. results/trace.csv)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
	}

	params := cfg.ToParams()
	if *load != "" {
		params.CustomLoad = *load
	}

	engine := sim.New()
	result, err := engine.Run(params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d samples over %.1f min\n", result.Profile.Len(), params.TimeScaleMinutes)
	fmt.Printf("Gains kp=%.2f ki=%.2f\n\n", params.Kp, params.Ki)

	rows := result.Trace()
	for i := 0; i < min(*n, len(rows)); i++ {
		r := rows[i]
		fmt.Printf(
			"t=%6.2f  load=%7.2f  response=%7.2f  deficit=%7.2f  overperf=%7.2f\n",
			r.TimeMinutes,
			r.LoadKW,
			r.ResponseKW,
			r.DeficitKW,
			r.OverperformanceKW,
		)
	}

	if *outCSV != "" {
		if err := sim.WriteTraceCSV(*outCSV, result); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nEnergy Deficit (Underperformance): %.2f kWh\n", result.Report.DeficitKWh)
	fmt.Printf("Energy Overperformance: %.2f kWh\n", result.Report.OverperformanceKWh)
	fmt.Printf("First peak: %.2f kW at t=%.1f min\n", result.Peak.PowerKW, result.Peak.TimeMinutes)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
