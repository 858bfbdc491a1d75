package aggregate

// Standard deviation thresholds separating the resolution tiers.
// Comparisons are strict, so a value equal to a threshold belongs to the upper tier.
const (
	MediumStdDev = 10
	HighStdDev   = 100
)

// Tier is the resolution tier selected by a window's standard deviation.
type Tier int

const (
	TierLow    Tier = iota // quiet signal, heavy aggregation
	TierMedium             // moderate variation
	TierHigh               // full resolution, no aggregation
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ClassifyTier maps a standard deviation to its tier.
func ClassifyTier(stddev float64) Tier {
	switch {
	case stddev < MediumStdDev:
		return TierLow
	case stddev < HighStdDev:
		return TierMedium
	default:
		return TierHigh
	}
}

// paaSegments and saxSegments hold the segment count per tier. Every entry divides WindowSize.
var (
	paaSegments = [...]int{TierLow: 1, TierMedium: 3, TierHigh: WindowSize}
	saxSegments = [...]int{TierLow: 3, TierMedium: 6, TierHigh: WindowSize}
)

// SegmentCount returns the number of PAA segments W for a window with the given standard deviation.
func SegmentCount(stddev float64) int {
	return paaSegments[ClassifyTier(stddev)]
}

// SaxSegmentCount returns the number of SAX symbols for a window with the given standard deviation.
func SaxSegmentCount(stddev float64) int {
	return saxSegments[ClassifyTier(stddev)]
}
