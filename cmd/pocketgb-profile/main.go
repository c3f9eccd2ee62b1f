// Command pocketgb-profile runs a cartridge headlessly for a fixed
// number of frames and plots a histogram of which PPU mode the
// display happened to be in at each frame boundary, useful when
// checking that StepFrame's 69,905-cycle bound lands where expected
// relative to the OAM/Transfer/HBlank/VBlank sequence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"pocketgb/internal/gameboy"
	"pocketgb/pkg/romloader"
)

func main() {
	romPath := flag.String("rom", "", "path to the cartridge ROM to profile")
	frames := flag.Int("frames", 600, "number of frames to step before plotting")
	out := flag.String("out", "profile.png", "output PNG path")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "pocketgb-profile: -rom is required")
		os.Exit(1)
	}

	rom, err := romloader.Load(*romPath)
	if err != nil {
		log.Fatalf("pocketgb-profile: loading rom: %v", err)
	}

	gb, err := gameboy.New(nil, rom)
	if err != nil {
		log.Fatalf("pocketgb-profile: %v", err)
	}

	modeCounts := make([]float64, 4) // HBlank, VBlank, OAM, Transfer

	for f := 0; f < *frames; f++ {
		gb.StepFrame()
		modeCounts[gb.PPU.Mode()]++
	}

	if err := plotModeHistogram(modeCounts, *out); err != nil {
		log.Fatalf("pocketgb-profile: plotting: %v", err)
	}
	fmt.Printf("pocketgb-profile: wrote %s after %d frames of %s\n", *out, *frames, gb.Title())
}

// plotModeHistogram renders the PPU mode sample counts as a bar chart
// and writes it to path as a PNG.
func plotModeHistogram(counts []float64, path string) error {
	p := plot.New()
	p.Title.Text = "PPU mode at frame boundary"
	p.Y.Label.Text = "frames ending in mode"

	values := make(plotter.Values, len(counts))
	copy(values, counts)

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX("HBlank", "VBlank", "OAM", "Transfer")

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
