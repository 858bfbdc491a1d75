// Package aggregate derives compressed representations from one full window of samples:
// an adaptive PAA series, a run-length encoding, a SAX word and an EMA series.
package aggregate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/itohio/golux/pkg/stats"
)

// WindowSize is the number of samples in one window.
const WindowSize = 12

var (
	// ErrWindowSize is returned when a window does not hold exactly WindowSize samples.
	ErrWindowSize = errors.New("window size mismatch")
	// ErrSegmentCount is returned when a series cannot be split into the requested number of equal segments.
	ErrSegmentCount = errors.New("invalid segment count")
)

// Result holds everything derived from one window. Slices are owned by the
// Result and must be treated as read-only by consumers.
type Result struct {
	Window []float64 // Copy of the raw window
	StdDev float64
	Tier   Tier

	W   int       // PAA segment count
	PAA []float64 // len(PAA) == W

	RLE []Run

	SaxW int
	SAX  Word

	Alpha float64
	EMA   []float64 // len(EMA) == WindowSize
}

// Process runs the aggregation pipeline over window using alpha as the EMA smoothing factor.
// The window is copied; the caller may reuse it afterwards.
func Process(window []float64, alpha float64) (*Result, error) {
	if len(window) != WindowSize {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrWindowSize, len(window), WindowSize)
	}

	w := slices.Clone(window)
	stddev := stats.StdDev(w)

	r := &Result{
		Window: w,
		StdDev: stddev,
		Tier:   ClassifyTier(stddev),
		W:      SegmentCount(stddev),
		SaxW:   SaxSegmentCount(stddev),
		Alpha:  alpha,
	}

	var err error
	if r.PAA, err = PAA(w, r.W); err != nil {
		return nil, fmt.Errorf("paa: %w", err)
	}
	if r.SAX, err = SAX(w, stddev, r.SaxW); err != nil {
		return nil, err
	}
	r.RLE = RLE(w)
	r.EMA = EMA(w, alpha)

	return r, nil
}

// CompressionRatio returns len(RLE)/len(Window); 1 means nothing was collapsed.
func (r *Result) CompressionRatio() float64 {
	if len(r.Window) == 0 {
		return 0
	}
	return float64(len(r.RLE)) / float64(len(r.Window))
}

// Aggregation describes how many raw samples were averaged into one PAA value, e.g. "4-into-1".
func (r *Result) Aggregation() string {
	if r.W <= 0 || r.W == len(r.Window) {
		return "no aggregation"
	}
	return fmt.Sprintf("%d-into-1", len(r.Window)/r.W)
}
