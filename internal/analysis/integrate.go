package analysis

// Trapezoid integrates values over times by summing pairwise trapezoid areas,
// left to right. Callers guarantee equal-length slices; the result carries the
// units of value*time (here kW*minute).
func Trapezoid(times, values []float64) float64 {
	total := 0.0
	for i := 1; i < len(times); i++ {
		total += (values[i] + values[i-1]) / 2 * (times[i] - times[i-1])
	}
	return total
}
