package labfile

import (
	"strings"

	"github.com/jkl1337/go-chromath"
)

// Sample is one measured chip from a Barbieri .lab/.txt export: the
// instrument's sample identifier, the derived chip coordinate key, and the
// measured Lab color.
type Sample struct {
	SampleID   string
	Coordinate string
	Color      chromath.Lab
}

// Key uniquely identifies a chip position within one measurement sheet. Two
// files describe the same physical chip when their keys are identical.
type Key struct {
	SampleID   string
	Coordinate string
}

func (s Sample) Key() Key {
	return Key{SampleID: s.SampleID, Coordinate: s.Coordinate}
}

// CoordinateKey converts a chip position label into the comma-delimited
// per-character coordinate key used to join samples across files (e.g., "AB"
// becomes "A,B"). The instrument encodes one coordinate axis per character,
// so the key must reproduce the label's characters in order.
func CoordinateKey(label string) string {
	return strings.Join(strings.Split(label, ""), ",")
}
