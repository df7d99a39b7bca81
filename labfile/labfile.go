// Package labfile parses the measurement sheets exported by Barbieri
// spectrophotometers: line-oriented text files whose sample rows sit between
// BEGIN_DATA and END_DATA markers.
package labfile

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jkl1337/go-chromath"
)

const (
	beginData = "BEGIN_DATA"
	endData   = "END_DATA"
)

// Parse reads the measurement sheet at path and returns its samples in file
// order. Duplicated chips are returned as-is, without deduplication. A file
// with no BEGIN_DATA marker yields zero samples and no error; a missing file
// is an error.
func Parse(path string) ([]Sample, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("file not found: %s", path))
	}
	if !info.Mode().IsRegular() {
		return nil, pfx.Err(fmt.Errorf("not a regular file: %s", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ParseReader(f, path), nil
}

// ParseReader scans r for a BEGIN_DATA/END_DATA region and extracts one
// Sample per well-formed data line. Scanning stops at END_DATA; anything
// after it is ignored. Data lines are whitespace-delimited with at least 5
// fields (sample_id, chip_label, L, A, B; extra fields ignored). Lines with
// fewer fields are skipped silently; lines whose L/A/B fields are not
// numeric are skipped with a warning on the log stream. The name argument
// only labels those warnings.
func ParseReader(r io.Reader, name string) []Sample {
	out := []Sample{}

	inData := false
	lineNum := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == beginData {
			inData = true
			continue
		}
		if line == endData {
			break
		}
		if !inData || line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		l, errL := strconv.ParseFloat(fields[2], 64)
		a, errA := strconv.ParseFloat(fields[3], 64)
		b, errB := strconv.ParseFloat(fields[4], 64)
		if errL != nil || errA != nil || errB != nil {
			log.Printf("%s line %d: skipping sample %s with non-numeric L/A/B values", name, lineNum, fields[0])
			continue
		}

		out = append(out, Sample{
			SampleID:   fields[0],
			Coordinate: CoordinateKey(fields[1]),
			Color:      chromath.Lab{l, a, b},
		})
	}

	return out
}
