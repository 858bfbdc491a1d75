package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/itohio/golux/pkg/aggregate"
)

// Table renders each result as a table with one row per derived series.
type Table struct {
	w      io.Writer
	window int
}

// NewTable creates a table reporter writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// Report renders r.
func (t *Table) Report(r *aggregate.Result) error {
	t.window++

	if _, err := fmt.Fprintf(t.w, "window #%d  stddev %s  tier %s  %s\n", t.window, fixed(r.StdDev), r.Tier, r.Aggregation()); err != nil {
		return fmt.Errorf("failed to write window header: %w", err)
	}

	table := tablewriter.NewWriter(t.w)
	table.Header("series", "len", "values")
	for _, row := range rows(r) {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append %s row: %w", row[0], err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render window table: %w", err)
	}

	return nil
}

// rows lists the derived series of r in display order.
func rows(r *aggregate.Result) [][]string {
	runs := make([]float64, len(r.RLE))
	for i, run := range r.RLE {
		runs[i] = float64(run.Count)
	}

	return [][]string{
		{"B", strconv.Itoa(len(r.Window)), intList(r.Window)},
		{"X", strconv.Itoa(len(r.PAA)), fixedList(r.PAA)},
		{"RLE", strconv.Itoa(len(r.RLE)), intList(aggregate.RunValues(r.RLE))},
		{"RLE runs", strconv.Itoa(len(r.RLE)), intList(runs)},
		{"SAX_PAA", strconv.Itoa(len(r.SAX.Reduced)), fixedList(r.SAX.Reduced)},
		{"SAX", strconv.Itoa(len(r.SAX.Symbols)), r.SAX.Symbols},
		{"EMA", strconv.Itoa(len(r.EMA)), fixedList(r.EMA)},
	}
}
