package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/itohio/golux/pkg/aggregate"
)

// Console prints results in the node's plain text format:
//
//	B = [12, 15, ...]
//	StdDev = 3.28
//	Aggregation = 12-into-1
//	X = [4.83]
//
// followed by the RLE, SAX and EMA series.
type Console struct {
	w io.Writer
}

// NewConsole creates a console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Report writes r.
func (c *Console) Report(r *aggregate.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "B = %s\n", intList(r.Window))
	fmt.Fprintf(&b, "StdDev = %s\n", fixed(r.StdDev))
	fmt.Fprintf(&b, "Aggregation = %s\n", r.Aggregation())
	if r.W == len(r.Window) {
		fmt.Fprintf(&b, "X = %s\n", intList(r.PAA))
	} else {
		fmt.Fprintf(&b, "X = %s\n", fixedList(r.PAA))
	}

	b.WriteString("\nExtra features\n")
	fmt.Fprintf(&b, "RLE = %s\n", intList(aggregate.RunValues(r.RLE)))
	fmt.Fprintf(&b, "SAX_PAA = %s\n", fixedList(r.SAX.Reduced))
	fmt.Fprintf(&b, "SAX = %s\n", r.SAX.Symbols)

	fmt.Fprintf(&b, "\nSmoothing Factor = %s\n", fixed(r.Alpha))
	fmt.Fprintf(&b, "EMA = %s\n\n", fixedList(r.EMA))

	if _, err := io.WriteString(c.w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// fixed formats v as its integer part and two truncated decimals.
// Values in (-1, 0) keep their minus sign.
func fixed(v float64) string {
	whole := int(v)
	frac := int(100 * math.Abs(v-float64(whole)))

	sign := ""
	if whole == 0 && v < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, whole, frac)
}

func fixedList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fixed(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func intList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", int(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
