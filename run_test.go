package chipdelta

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSheet(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	content := "BEGIN_DATA\n" + strings.Join(lines, "\n") + "\nEND_DATA\n"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	home := writeSheet(t, dir, "home.lab",
		"S1 AB 10 0 0",
		"S2 CD 20 0 0",
	)
	t1 := writeSheet(t, dir, "t1.lab",
		"S1 AB 13 4 0",
		"S2 CD 20 0 0",
	)
	t2 := writeSheet(t, dir, "t2.lab",
		"S1 AB 10 0 0",
	)

	var buf bytes.Buffer
	res, err := Run(home, []string{t1, t2}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	// One target pair (C(2,2) = 1) and two home comparisons.
	if res.TargetPairs.Pairs != 1 {
		t.Errorf("Expected 1 contributing target pair, got %d", res.TargetPairs.Pairs)
	}
	if res.HomePairs.Pairs != 2 {
		t.Errorf("Expected 2 contributing home pairs, got %d", res.HomePairs.Pairs)
	}

	// t1 vs t2 matches S1 only; home vs t1 matches both; home vs t2 matches S1.
	if res.TargetPairs.Matched != 1 {
		t.Errorf("Expected 1 matched sample among targets, got %d", res.TargetPairs.Matched)
	}
	if res.HomePairs.Matched != 3 {
		t.Errorf("Expected 3 matched samples vs home, got %d", res.HomePairs.Matched)
	}
	if len(res.DeltaE) != 4 {
		t.Errorf("Expected 4 ΔE values collected, got %d", len(res.DeltaE))
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Home,Target,") {
		t.Errorf("Expected output to begin with the header, got:\n%s", out)
	}
	for _, want := range []string{
		"Summary t1.lab vs t2.lab",
		"Summary home.lab vs t1.lab",
		"Summary home.lab vs t2.lab",
		"Overall Summary (target vs target)",
		"Overall Summary (home vs target)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}

	// Target pairs come first, then home comparisons, then the two global
	// blocks, target-vs-target first.
	order := []string{
		"Summary t1.lab vs t2.lab",
		"Summary home.lab vs t1.lab",
		"Summary home.lab vs t2.lab",
		"Overall Summary (target vs target)",
		"Overall Summary (home vs target)",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		if idx <= last {
			t.Errorf("Expected %q after previous block (index %d vs %d)", marker, idx, last)
		}
		last = idx
	}
}

func TestRunPairEnumeration(t *testing.T) {
	dir := t.TempDir()
	home := writeSheet(t, dir, "home.lab", "S1 AB 0 0 0")

	targets := make([]string, 4)
	for i := range targets {
		targets[i] = writeSheet(t, dir, fmt.Sprintf("t%d.lab", i), "S1 AB 1 0 0")
	}

	var buf bytes.Buffer
	res, err := Run(home, targets, &buf)
	if err != nil {
		t.Fatal(err)
	}

	// C(4,2) = 6 unordered target pairs.
	if res.TargetPairs.Pairs != 6 {
		t.Errorf("Expected 6 target pairs, got %d", res.TargetPairs.Pairs)
	}
	if res.HomePairs.Pairs != 4 {
		t.Errorf("Expected 4 home comparisons, got %d", res.HomePairs.Pairs)
	}
}

func TestRunDisjointSheets(t *testing.T) {
	dir := t.TempDir()
	home := writeSheet(t, dir, "home.lab", "S1 AB 10 0 0")
	t1 := writeSheet(t, dir, "t1.lab", "S9 ZZ 10 0 0")

	var buf bytes.Buffer
	res, err := Run(home, []string{t1}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	if res.TargetPairs.Pairs != 0 || res.HomePairs.Pairs != 0 {
		t.Errorf("Expected no contributing pairs, got %d / %d", res.TargetPairs.Pairs, res.HomePairs.Pairs)
	}

	out := buf.String()
	if !strings.Contains(out, "No matching samples for this pair.") {
		t.Error("Expected the per-pair no-matching-samples marker")
	}
	if strings.Count(out, "No comparisons made.") != 2 {
		t.Errorf("Expected both global blocks to carry the no-comparisons marker:\n%s", out)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	home := writeSheet(t, dir, "home.lab", "S1 AB 10 0 0")

	var buf bytes.Buffer
	if _, err := Run(home, []string{filepath.Join(dir, "absent.lab")}, &buf); err == nil {
		t.Fatal("Expected an error for a missing target sheet")
	}
}
