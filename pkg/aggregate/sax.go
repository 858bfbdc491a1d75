package aggregate

import (
	"fmt"

	"github.com/itohio/golux/pkg/stats"
)

// Alphabet holds the SAX symbols in ascending order.
const Alphabet = "abcdef"

// Breakpoints split the standard normal distribution into len(Alphabet) equiprobable regions.
var Breakpoints = [...]float64{-0.97, -0.43, 0, 0.43, 0.97}

// Word is the SAX representation of a window.
type Word struct {
	Reduced  []float64 // Normalized, PAA-reduced values the symbols were chosen from
	Symbols  string
	Constant bool // Window had zero deviation; Symbols is the neutral word
}

// Letter maps a normalized value to its SAX symbol. The first breakpoint
// strictly greater than value selects the symbol.
func Letter(value float64) byte {
	for i, bp := range Breakpoints {
		if value < bp {
			return Alphabet[i]
		}
	}
	return Alphabet[len(Alphabet)-1]
}

// Normalize returns (x - mean) / stddev for every sample of window.
// A zero stddev yields all zeros and reports the window as constant.
func Normalize(window []float64, stddev float64) ([]float64, bool) {
	normalized := make([]float64, len(window))
	if stddev == 0 {
		return normalized, true
	}

	mean := stats.Mean(window)
	for i, v := range window {
		normalized[i] = (v - mean) / stddev
	}
	return normalized, false
}

// SAX normalizes window, reduces it to saxW segments and maps each segment to a symbol.
func SAX(window []float64, stddev float64, saxW int) (Word, error) {
	normalized, constant := Normalize(window, stddev)

	reduced, err := PAA(normalized, saxW)
	if err != nil {
		return Word{}, fmt.Errorf("sax: %w", err)
	}

	symbols := make([]byte, len(reduced))
	for i, v := range reduced {
		symbols[i] = Letter(v)
	}

	return Word{
		Reduced:  reduced,
		Symbols:  string(symbols),
		Constant: constant,
	}, nil
}
