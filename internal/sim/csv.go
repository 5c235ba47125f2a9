package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteTraceCSV writes the per-sample trace of a result to path.
func WriteTraceCSV(path string, result *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"time_min",
		"load_kw",
		"response_kw",
		"deficit_kw",
		"overperformance_kw",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range result.Trace() {
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.TimeMinutes),
			fmtFloat(r.LoadKW),
			fmtFloat(r.ResponseKW),
			fmtFloat(r.DeficitKW),
			fmtFloat(r.OverperformanceKW),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
