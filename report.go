package chipdelta

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Header is the fixed 14-column report header. Downstream spreadsheets key
// on both the column order and the exact names, so do not reorder or rename.
var Header = []string{
	"Home", "Target", "Sample_ID", "Chip Coordinate",
	"Home L", "Home A", "Home B",
	"Tar L", "Tar A", "Tar B",
	"ΔL", "ΔA", "ΔB", "ΔE",
}

// Report writes the comparison output as CSV: the header, then per-pair data
// rows with a trailing summary block per pair, then the global summary
// blocks.
type Report struct {
	w *csv.Writer
}

func NewReport(w io.Writer) *Report {
	return &Report{w: csv.NewWriter(w)}
}

func (r *Report) WriteHeader() error {
	return r.w.Write(Header)
}

// WriteRows emits one CSV record per matched chip pair, with all numeric
// fields rendered to six decimal places.
func (r *Report) WriteRows(rows []Row) error {
	for _, row := range rows {
		record := []string{
			row.Home, row.Target, row.SampleID, row.Coordinate,
			f6(row.HomeL), f6(row.HomeA), f6(row.HomeB),
			f6(row.TarL), f6(row.TarA), f6(row.TarB),
			f6(row.DeltaL), f6(row.DeltaA), f6(row.DeltaB), f6(row.DeltaE),
		}
		if err := r.w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// WritePairSummary emits the summary block for one comparison, bracketed by
// blank rows. When ok is false the pair matched nothing and only the
// no-matching-samples marker is written.
func (r *Report) WritePairSummary(home, target string, sum PairSummary, ok bool) error {
	records := [][]string{
		{},
		{fmt.Sprintf("Summary %s vs %s", home, target)},
	}

	if ok {
		records = append(records,
			[]string{"Avg ΔL", f6(sum.AvgDeltaL), "Std ΔL", f6(sum.StdDeltaL)},
			[]string{"Avg ΔA", f6(sum.AvgDeltaA), "Std ΔA", f6(sum.StdDeltaA)},
			[]string{"Avg ΔB", f6(sum.AvgDeltaB), "Std ΔB", f6(sum.StdDeltaB)},
			[]string{"Avg ΔE", f6(sum.AvgDeltaE), "Std ΔE", f6(sum.StdDeltaE)},
			[]string{"N ΔE>3", fmt.Sprintf("%d", sum.GT3), "Pct ΔE>3", pct(sum.PctGT3())},
			[]string{"N ΔE>6", fmt.Sprintf("%d", sum.GT6), "Pct ΔE>6", pct(sum.PctGT6())},
		)
	} else {
		records = append(records, []string{"No matching samples for this pair."})
	}

	records = append(records, []string{})

	return r.writeAll(records)
}

// WriteGlobalSummary emits one category's global block: the unweighted
// average-of-averages per channel, the pair and matched-row totals, and the
// row-weighted exceedance percentages.
func (r *Report) WriteGlobalSummary(title string, g *GlobalSummary) error {
	records := [][]string{
		{},
		{title},
	}

	if l, a, b, e, ok := g.AverageOfAverages(); ok {
		records = append(records,
			[]string{"Avg ΔL", f6(l)},
			[]string{"Avg ΔA", f6(a)},
			[]string{"Avg ΔB", f6(b)},
			[]string{"Avg ΔE", f6(e)},
			[]string{"Pairs", fmt.Sprintf("%d", g.Pairs), "Matched samples", fmt.Sprintf("%d", g.Matched)},
			[]string{"Pct ΔE>3", pct(g.PctGT3()), "Pct ΔE>6", pct(g.PctGT6())},
		)
	} else {
		records = append(records, []string{"No comparisons made."})
	}

	return r.writeAll(records)
}

// Flush drains the underlying csv.Writer and reports any write error it
// accumulated. Callers must check this; data errors surface here.
func (r *Report) Flush() error {
	r.w.Flush()
	return r.w.Error()
}

func (r *Report) writeAll(records [][]string) error {
	for _, record := range records {
		if err := r.w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func f6(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
