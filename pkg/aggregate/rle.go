package aggregate

// Run is one run of equal consecutive samples.
type Run struct {
	Value float64 // Sample value shared by the run
	Start int     // Index of the first sample of the run
	Count int     // Number of samples in the run
}

// RLE collapses consecutive equal samples of window into runs.
// Every sample, including a leading zero, belongs to exactly one run,
// so the counts always add up to len(window).
func RLE(window []float64) []Run {
	runs := make([]Run, 0, len(window))

	for i, v := range window {
		if n := len(runs); n > 0 && runs[n-1].Value == v {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{Value: v, Start: i, Count: 1})
	}

	return runs
}

// RunValues returns the value of every run in order.
func RunValues(runs []Run) []float64 {
	values := make([]float64, len(runs))
	for i, r := range runs {
		values[i] = r.Value
	}
	return values
}
