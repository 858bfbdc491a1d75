package aggregate

// DefaultSmoothingFactor is the EMA weight given to the newest sample.
const DefaultSmoothingFactor = 0.7

// EMA returns the exponential moving average of window:
// ema[0] = window[0], ema[i] = alpha*window[i] + (1-alpha)*ema[i-1].
func EMA(window []float64, alpha float64) []float64 {
	ema := make([]float64, len(window))
	for i, v := range window {
		if i == 0 {
			ema[i] = v
			continue
		}
		ema[i] = alpha*v + (1-alpha)*ema[i-1]
	}
	return ema
}
