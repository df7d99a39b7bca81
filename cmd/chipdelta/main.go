// chipdelta compares Barbieri chip measurement sheets in CIE Lab space. It
// takes one "home" (reference) sheet and two or more target sheets, compares
// every unordered pair of targets and then the home sheet against each
// target, and writes a single CSV report with per-chip deltas, per-pair
// summaries, and two global summary blocks.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/chipdelta"
	_ "github.com/carbocation/chipdelta/compileinfoprint"
	"github.com/carbocation/pfx"
)

func main() {
	var home, output string
	var showHist bool

	flag.StringVar(&home, "home", "", "Path to the home (reference) measurement sheet. Compared against every target.")
	flag.StringVar(&output, "output", "", "Path to the output CSV report.")
	flag.BoolVar(&showHist, "hist", false, "After the run, print a histogram of all observed ΔE values to stderr.")
	flag.Parse()

	if home == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -home")
	}

	if output == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -output")
	}

	targets := flag.Args()
	if len(targets) < 1 {
		flag.PrintDefaults()
		log.Fatalln("Please provide at least one target measurement sheet as a positional argument")
	}

	home = chipdelta.ExpandHome(home)
	output = chipdelta.ExpandHome(output)
	for i, t := range targets {
		targets[i] = chipdelta.ExpandHome(t)
	}

	// Missing inputs are fatal and must be caught before any output exists.
	for _, path := range append([]string{home}, targets...) {
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			log.Fatalln(pfx.Err(fmt.Errorf("file not found: %s", path)))
		}
	}

	log.Println("Launched chipdelta with", len(targets), "target sheets")

	res, err := runToFile(home, targets, output)
	if err != nil {
		// The inputs were validated above, so a failure here is an output
		// problem. Ask for one alternate destination and re-run the whole
		// pipeline against it; a second failure is fatal.
		log.Println("Could not write to", output+":", err)
		alternate := promptPath()
		if res, err = runToFile(home, targets, alternate); err != nil {
			log.Fatalln(pfx.Err(err))
		}
		output = alternate
	}

	log.Println("Wrote", output)
	log.Println("Target pairs:", res.TargetPairs.Pairs, "with", res.TargetPairs.Matched, "matched samples")
	log.Println("Home comparisons:", res.HomePairs.Pairs, "with", res.HomePairs.Matched, "matched samples")

	if showHist && len(res.DeltaE) > 0 {
		hist := histogram.Hist(10, res.DeltaE)
		if err := histogram.Fprint(os.Stderr, hist, histogram.Linear(40)); err != nil {
			log.Println("Could not render ΔE histogram:", err)
		}
	}
}

func runToFile(home string, targets []string, output string) (*chipdelta.RunResult, error) {
	f, err := os.Create(output)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := chipdelta.Run(home, targets, f)
	if err != nil {
		return nil, err
	}

	return res, f.Close()
}

func promptPath() string {
	fmt.Fprint(os.Stderr, "Enter an alternate output CSV path: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	path := strings.TrimSpace(line)
	if path == "" {
		log.Fatalln("No alternate output path provided")
	}

	return chipdelta.ExpandHome(path)
}
