package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chiller-sim/internal/analysis"
	"chiller-sim/internal/config"
	"chiller-sim/internal/profile"
	"chiller-sim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/trace.csv")
	fmt.Println("  cli simulate --time-scale 60 --kp 0.8 --ki 0.3")
	fmt.Println("  cli sweep --time-scale 60 --kp-max 2 --ki-max 2 --steps 5")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate runs the PI loop and reports deficit/overperformance energy + first peak")
	fmt.Println("  - sweep ranks (kp, ki) settings by combined mismatch energy over the synthetic load")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	timeScale := fs.Float64("time-scale", 0, "Simulation horizon in minutes (overrides config)")
	kp := fs.Float64("kp", -1, "Proportional gain (overrides config)")
	ki := fs.Float64("ki", -1, "Integral gain (overrides config)")
	samples := fs.Int("samples", 0, "Sample count for the synthetic profile (overrides config)")
	load := fs.String("load", "", "Comma-separated custom heat load in kW (overrides config)")
	outPath := fs.String("out", "", "Optional output CSV path for the trace")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	override := config.Config{}
	override.Simulation.TimeScaleMinutes = *timeScale
	override.Simulation.SampleCount = *samples
	override.Simulation.CustomLoad = *load
	merged := config.Merge(*cfg, override)

	params := merged.ToParams()
	// Gains go through the flag sentinel instead of Merge: zero is a
	// meaningful gain, so absence is signalled by -1.
	if *kp >= 0 {
		params.Kp = *kp
	}
	if *ki >= 0 {
		params.Ki = *ki
	}

	engine := sim.New()
	res, err := engine.Run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Simulated %d samples over %.1f min (kp=%.2f ki=%.2f)\n",
		res.Profile.Len(), params.TimeScaleMinutes, params.Kp, params.Ki)
	fmt.Printf("Energy deficit:     %.2f kWh\n", res.Report.DeficitKWh)
	fmt.Printf("Overperformance:    %.2f kWh\n", res.Report.OverperformanceKWh)
	fmt.Printf("First peak:         %.2f kW at t=%.1f min (sample %d)\n",
		res.Peak.PowerKW, res.Peak.TimeMinutes, res.Peak.Index)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "output dir: %v\n", err)
			os.Exit(1)
		}
		if err := sim.WriteTraceCSV(*outPath, res); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", res.Profile.Len(), *outPath)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	timeScale := fs.Float64("time-scale", 60, "Simulation horizon in minutes")
	kpMax := fs.Float64("kp-max", 2.0, "Upper bound of the kp axis")
	kiMax := fs.Float64("ki-max", 2.0, "Upper bound of the ki axis")
	steps := fs.Int("steps", 5, "Grid points per axis")
	limit := fs.Int("limit", 10, "Rows to print")
	_ = fs.Parse(args)

	prof, err := profile.Generate(*timeScale, profile.DefaultSampleCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", err)
		os.Exit(1)
	}

	scores, err := analysis.RankGains(prof, analysis.SweepGrid{
		KpMax: *kpMax,
		KiMax: *kiMax,
		Steps: *steps,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-4s %-6s %-6s %-12s %-12s %-12s %-10s\n",
		"rank", "kp", "ki", "deficit", "overperf", "mismatch", "peak")
	for i, s := range scores {
		if i >= *limit {
			break
		}
		fmt.Printf("%-4d %-6.2f %-6.2f %-12.2f %-12.2f %-12.2f %-10.2f\n",
			i+1, s.Kp, s.Ki, s.DeficitKWh, s.OverperformanceKWh, s.MismatchKWh, s.PeakKW)
	}
}
