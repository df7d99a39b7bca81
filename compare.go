// Package chipdelta computes pairwise CIE Lab color differences between
// Barbieri chip measurement sheets and summarizes them at the pair and run
// level.
package chipdelta

import (
	"math"

	"github.com/carbocation/chipdelta/labfile"
)

// Row is one matched chip pair between a home file and a target file, with
// per-channel deltas (target minus home) and the Euclidean ΔE.
type Row struct {
	Home       string
	Target     string
	SampleID   string
	Coordinate string

	HomeL, HomeA, HomeB float64
	TarL, TarA, TarB    float64

	DeltaL, DeltaA, DeltaB float64
	DeltaE                 float64
}

// Compare joins two parsed measurement sheets on the (sample_id, coordinate)
// key and emits one Row per chip present in both. Rows come out in home
// order. Chips found in only one of the two sheets produce nothing. When the
// target sheet repeats a key, the last occurrence wins.
func Compare(homeName, targetName string, home, target []labfile.Sample) []Row {
	lookup := make(map[labfile.Key]labfile.Sample, len(target))
	for _, s := range target {
		lookup[s.Key()] = s
	}

	out := make([]Row, 0, len(home))
	for _, h := range home {
		t, ok := lookup[h.Key()]
		if !ok {
			continue
		}

		dL := t.Color.L() - h.Color.L()
		dA := t.Color.A() - h.Color.A()
		dB := t.Color.B() - h.Color.B()

		out = append(out, Row{
			Home:       homeName,
			Target:     targetName,
			SampleID:   h.SampleID,
			Coordinate: h.Coordinate,
			HomeL:      h.Color.L(),
			HomeA:      h.Color.A(),
			HomeB:      h.Color.B(),
			TarL:       t.Color.L(),
			TarA:       t.Color.A(),
			TarB:       t.Color.B(),
			DeltaL:     dL,
			DeltaA:     dA,
			DeltaB:     dB,
			DeltaE:     math.Sqrt(dL*dL + dA*dA + dB*dB),
		})
	}

	return out
}
