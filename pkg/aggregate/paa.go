package aggregate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// PAA reduces series to w values by splitting it into w contiguous,
// equal-length segments and averaging each one. Segment i covers
// series[i*size : (i+1)*size] where size = len(series)/w.
//
// len(series) must be a positive multiple of w.
func PAA(series []float64, w int) ([]float64, error) {
	if w <= 0 || len(series) == 0 || len(series)%w != 0 {
		return nil, fmt.Errorf("%w: cannot split %d values into %d segments", ErrSegmentCount, len(series), w)
	}

	size := len(series) / w
	ret := make([]float64, w)
	for i := 0; i < w; i++ {
		ret[i] = floats.Sum(series[i*size:(i+1)*size]) / float64(size)
	}
	return ret, nil
}
