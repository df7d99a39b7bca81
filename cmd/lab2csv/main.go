// lab2csv converts one Barbieri .lab/.txt measurement sheet into a plain CSV
// grid (sample_id, chip_coordinate, L, A, B), for spot-checking what the
// comparison tools will actually see after parsing.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/carbocation/chipdelta"
	_ "github.com/carbocation/chipdelta/compileinfoprint"
	"github.com/carbocation/chipdelta/labfile"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type outputRow struct {
	SampleID   string  `csv:"sample_id"`
	Coordinate string  `csv:"chip_coordinate"`
	L          float64 `csv:"L"`
	A          float64 `csv:"A"`
	B          float64 `csv:"B"`
}

func main() {
	var input string

	flag.StringVar(&input, "input", "", "Path to the .lab/.txt measurement sheet to convert. Output goes to stdout.")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -input")
	}

	samples, err := labfile.Parse(chipdelta.ExpandHome(input))
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Parsed", len(samples), "samples from", input)

	rows := make([]outputRow, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, outputRow{
			SampleID:   s.SampleID,
			Coordinate: s.Coordinate,
			L:          s.Color.L(),
			A:          s.Color.A(),
			B:          s.Color.B(),
		})
	}

	if err := gocsv.Marshal(&rows, os.Stdout); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}
