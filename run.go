package chipdelta

import (
	"io"
	"log"
	"path/filepath"

	"github.com/carbocation/chipdelta/labfile"
	"github.com/carbocation/pfx"
)

// RunResult carries the finalized accumulators of one pipeline run, plus
// every ΔE value observed across all comparisons (in emission order) for
// optional downstream rendering such as histograms.
type RunResult struct {
	TargetPairs GlobalSummary
	HomePairs   GlobalSummary
	DeltaE      []float64
}

// Run executes the whole comparison pipeline against out: it parses the home
// sheet and every target sheet once, compares every unordered pair of
// targets (C(n,2), in list order), then compares home against each target in
// list order, and finally writes the two global summary blocks. Rows are
// written incrementally as each comparison completes. All input files are
// read before any output row is produced, so a missing file aborts the run
// before partial output accumulates for it.
func Run(home string, targets []string, out io.Writer) (*RunResult, error) {
	homeSamples, err := labfile.Parse(home)
	if err != nil {
		return nil, err
	}
	log.Println("Loaded", home, "with", len(homeSamples), "samples")

	targetSamples := make([][]labfile.Sample, len(targets))
	for i, path := range targets {
		samples, err := labfile.Parse(path)
		if err != nil {
			return nil, err
		}
		targetSamples[i] = samples
		log.Println("Loaded", path, "with", len(samples), "samples")
	}

	rep := NewReport(out)
	if err := rep.WriteHeader(); err != nil {
		return nil, pfx.Err(err)
	}

	res := &RunResult{}

	// Every unordered pair of targets.
	for i := range targets {
		for j := i + 1; j < len(targets); j++ {
			err := res.compareOne(rep, &res.TargetPairs,
				targets[i], targets[j], targetSamples[i], targetSamples[j])
			if err != nil {
				return nil, err
			}
		}
	}

	// Home against each target, in target order.
	for i := range targets {
		err := res.compareOne(rep, &res.HomePairs,
			home, targets[i], homeSamples, targetSamples[i])
		if err != nil {
			return nil, err
		}
	}

	if err := rep.WriteGlobalSummary("Overall Summary (target vs target)", &res.TargetPairs); err != nil {
		return nil, pfx.Err(err)
	}
	if err := rep.WriteGlobalSummary("Overall Summary (home vs target)", &res.HomePairs); err != nil {
		return nil, pfx.Err(err)
	}

	if err := rep.Flush(); err != nil {
		return nil, pfx.Err(err)
	}

	return res, nil
}

func (res *RunResult) compareOne(rep *Report, g *GlobalSummary, homePath, targetPath string, home, target []labfile.Sample) error {
	homeName := filepath.Base(homePath)
	targetName := filepath.Base(targetPath)

	rows := Compare(homeName, targetName, home, target)
	if err := rep.WriteRows(rows); err != nil {
		return pfx.Err(err)
	}

	sum, ok := SummarizePair(rows)
	if ok {
		g.Add(sum)
	}

	for _, r := range rows {
		res.DeltaE = append(res.DeltaE, r.DeltaE)
	}

	if err := rep.WritePairSummary(homeName, targetName, sum, ok); err != nil {
		return pfx.Err(err)
	}

	return nil
}
