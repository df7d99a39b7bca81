package chipdelta

import (
	"github.com/montanaflynn/stats"
)

// ΔE thresholds. Above 3, a color difference is generally noticeable to an
// untrained observer; above 6 it is considered severe for proofing work.
const (
	NoticeableDeltaE = 3
	SevereDeltaE     = 6
)

// PairSummary aggregates all matched rows of one home/target comparison:
// per-channel arithmetic means and population standard deviations, plus
// strict threshold-exceedance counts.
type PairSummary struct {
	Home   string
	Target string

	AvgDeltaL, AvgDeltaA, AvgDeltaB, AvgDeltaE float64
	StdDeltaL, StdDeltaA, StdDeltaB, StdDeltaE float64

	GT3 int // rows with ΔE strictly greater than 3
	GT6 int // rows with ΔE strictly greater than 6
	N   int // matched rows
}

// PctGT3 is the percentage of this pair's matched rows with ΔE > 3.
func (p PairSummary) PctGT3() float64 {
	if p.N == 0 {
		return 0
	}
	return 100 * float64(p.GT3) / float64(p.N)
}

// PctGT6 is the percentage of this pair's matched rows with ΔE > 6.
func (p PairSummary) PctGT6() float64 {
	if p.N == 0 {
		return 0
	}
	return 100 * float64(p.GT6) / float64(p.N)
}

// SummarizePair computes the PairSummary for one comparison's rows. The
// second return is false when no chips matched, in which case the pair must
// not contribute to any global aggregate.
func SummarizePair(rows []Row) (PairSummary, bool) {
	if len(rows) == 0 {
		return PairSummary{}, false
	}

	dL := make([]float64, 0, len(rows))
	dA := make([]float64, 0, len(rows))
	dB := make([]float64, 0, len(rows))
	dE := make([]float64, 0, len(rows))

	sum := PairSummary{
		Home:   rows[0].Home,
		Target: rows[0].Target,
		N:      len(rows),
	}

	for _, r := range rows {
		dL = append(dL, r.DeltaL)
		dA = append(dA, r.DeltaA)
		dB = append(dB, r.DeltaB)
		dE = append(dE, r.DeltaE)

		if r.DeltaE > NoticeableDeltaE {
			sum.GT3++
		}
		if r.DeltaE > SevereDeltaE {
			sum.GT6++
		}
	}

	sum.AvgDeltaL, sum.StdDeltaL = meanStd(dL)
	sum.AvgDeltaA, sum.StdDeltaA = meanStd(dA)
	sum.AvgDeltaB, sum.StdDeltaB = meanStd(dB)
	sum.AvgDeltaE, sum.StdDeltaE = meanStd(dE)

	return sum, true
}

// meanStd assumes non-empty input; stats only errors on empty slices.
func meanStd(values []float64) (mean, std float64) {
	mean, _ = stats.Mean(values)
	std, _ = stats.StandardDeviationPopulation(values)
	return mean, std
}

// GlobalSummary accumulates the pair summaries of one comparison category
// (target-vs-target or home-vs-target). The per-channel averages it reports
// are unweighted means of the per-pair averages, while the exceedance
// percentages are weighted by matched-row counts. Both policies are
// intentional and must not be unified.
type GlobalSummary struct {
	avgL []float64
	avgA []float64
	avgB []float64
	avgE []float64

	GT3     int
	GT6     int
	Matched int
	Pairs   int
}

// Add folds one contributing pair into the accumulator. Pairs with zero
// matched rows never reach Add; they are excluded rather than counted as
// zero.
func (g *GlobalSummary) Add(p PairSummary) {
	g.avgL = append(g.avgL, p.AvgDeltaL)
	g.avgA = append(g.avgA, p.AvgDeltaA)
	g.avgB = append(g.avgB, p.AvgDeltaB)
	g.avgE = append(g.avgE, p.AvgDeltaE)

	g.GT3 += p.GT3
	g.GT6 += p.GT6
	g.Matched += p.N
	g.Pairs++
}

// AverageOfAverages returns the per-channel mean over each contributing
// pair's own average, giving every pair equal weight regardless of how many
// chips it matched. The final return is false when no pair contributed.
func (g *GlobalSummary) AverageOfAverages() (l, a, b, e float64, ok bool) {
	if g.Pairs == 0 {
		return 0, 0, 0, 0, false
	}

	l, _ = meanStd(g.avgL)
	a, _ = meanStd(g.avgA)
	b, _ = meanStd(g.avgB)
	e, _ = meanStd(g.avgE)

	return l, a, b, e, true
}

// PctGT3 is the row-weighted percentage of all matched rows in this category
// with ΔE > 3. Zero when nothing matched; no division is performed.
func (g *GlobalSummary) PctGT3() float64 {
	if g.Matched == 0 {
		return 0
	}
	return 100 * float64(g.GT3) / float64(g.Matched)
}

// PctGT6 is the row-weighted percentage of all matched rows in this category
// with ΔE > 6.
func (g *GlobalSummary) PctGT6() float64 {
	if g.Matched == 0 {
		return 0
	}
	return 100 * float64(g.GT6) / float64(g.Matched)
}
